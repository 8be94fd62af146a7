package domain

import "time"

// Contract binds a client to a sales owner with a negotiated amount.
type Contract struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	OwnerID     int64     `json:"owner_id"`
	TotalAmount float64   `json:"total_amount"`
	AmountDue   float64   `json:"amount_due"`
	IsSigned    bool      `json:"is_signed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
