package handler

import "github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"

type createClientRequest struct {
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

func (r createClientRequest) input() ports.CreateClientInput {
	return ports.CreateClientInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
	}
}

// updateClientRequest is a sparse patch: absent fields are left unchanged.
type updateClientRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"    validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	OwnerID     *int64  `json:"owner_id" validate:"omitempty,gt=0"`
}

func (r updateClientRequest) patch() ports.ClientPatch {
	return ports.ClientPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		OwnerID:     r.OwnerID,
	}
}
