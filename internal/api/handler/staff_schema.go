package handler

import (
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

type createStaffRequest struct {
	Username  string `json:"username"   validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=management sales support"`
}

func (r createStaffRequest) input() ports.CreateStaffInput {
	return ports.CreateStaffInput{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      domain.Role(r.Role),
	}
}

// updateStaffRequest is a sparse patch: absent fields are left unchanged.
// The login username is immutable.
type updateStaffRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"    validate:"omitempty,email"`
	Role      *string `json:"role"     validate:"omitempty,oneof=management sales support"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

func (r updateStaffRequest) patch() ports.StaffPatch {
	p := ports.StaffPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		p.Role = &role
	}
	return p
}
