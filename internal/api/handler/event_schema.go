package handler

import (
	"time"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

type createEventRequest struct {
	Name          string    `json:"name"           validate:"required"`
	ContractID    int64     `json:"contract_id"    validate:"required,gt=0"`
	ClientID      int64     `json:"client_id"      validate:"required,gt=0"`
	AssigneeID    int64     `json:"assignee_id"    validate:"omitempty,gt=0"`
	StartTime     time.Time `json:"start_time"     validate:"required"`
	EndTime       time.Time `json:"end_time"       validate:"required,gtfield=StartTime"`
	Location      string    `json:"location"`
	AttendeeCount int       `json:"attendee_count" validate:"gte=0"`
	Notes         string    `json:"notes"`
}

func (r createEventRequest) input() ports.CreateEventInput {
	return ports.CreateEventInput{
		Name:          r.Name,
		ContractID:    r.ContractID,
		ClientID:      r.ClientID,
		AssigneeID:    r.AssigneeID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Location:      r.Location,
		AttendeeCount: r.AttendeeCount,
		Notes:         r.Notes,
	}
}

// updateEventRequest is a sparse patch: absent fields are left unchanged.
type updateEventRequest struct {
	Name          *string    `json:"name"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Location      *string    `json:"location"`
	AttendeeCount *int       `json:"attendee_count" validate:"omitempty,gte=0"`
	Notes         *string    `json:"notes"`
	AssigneeID    *int64     `json:"assignee_id"    validate:"omitempty,gt=0"`
}

func (r updateEventRequest) patch() ports.EventPatch {
	return ports.EventPatch{
		Name:          r.Name,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Location:      r.Location,
		AttendeeCount: r.AttendeeCount,
		Notes:         r.Notes,
		AssigneeID:    r.AssigneeID,
	}
}
