package domain

import "time"

// Event is an engagement planned under a signed contract. AssigneeID is the
// support principal responsible for it; zero means not yet assigned.
type Event struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContractID    int64     `json:"contract_id"`
	ClientID      int64     `json:"client_id"`
	AssigneeID    int64     `json:"assignee_id,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Location      string    `json:"location,omitempty"`
	AttendeeCount int       `json:"attendee_count,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
