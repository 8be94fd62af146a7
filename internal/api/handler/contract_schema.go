package handler

import "github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"

type createContractRequest struct {
	ClientID    int64   `json:"client_id"    validate:"required,gt=0"`
	OwnerID     int64   `json:"owner_id"     validate:"omitempty,gt=0"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
	AmountDue   float64 `json:"amount_due"   validate:"gte=0"`
	IsSigned    bool    `json:"is_signed"`
}

func (r createContractRequest) input() ports.CreateContractInput {
	return ports.CreateContractInput{
		ClientID:    r.ClientID,
		OwnerID:     r.OwnerID,
		TotalAmount: r.TotalAmount,
		AmountDue:   r.AmountDue,
		IsSigned:    r.IsSigned,
	}
}

// updateContractRequest is a sparse patch: absent fields are left unchanged.
type updateContractRequest struct {
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gt=0"`
	AmountDue   *float64 `json:"amount_due"   validate:"omitempty,gte=0"`
	IsSigned    *bool    `json:"is_signed"`
	OwnerID     *int64   `json:"owner_id"     validate:"omitempty,gt=0"`
}

func (r updateContractRequest) patch() ports.ContractPatch {
	return ports.ContractPatch{
		TotalAmount: r.TotalAmount,
		AmountDue:   r.AmountDue,
		IsSigned:    r.IsSigned,
		OwnerID:     r.OwnerID,
	}
}
