package domain

import "time"

// StaffUser models a back-office employee able to authenticate.
type StaffUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity acting on a request. It is built
// fresh from the staff store on every call and never cached across requests.
type Principal struct {
	ID       int64
	Username string
	Role     Role
}

// PrincipalOf derives the acting identity from a staff record.
func PrincipalOf(u *StaffUser) *Principal {
	return &Principal{ID: u.ID, Username: u.Username, Role: u.Role}
}
