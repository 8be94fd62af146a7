package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// CreateContractInput carries all data needed to create a contract. OwnerID
// is honoured only for management callers; a sales caller always becomes the
// owner of the contracts it creates.
type CreateContractInput struct {
	ClientID    int64
	OwnerID     int64
	TotalAmount float64
	AmountDue   float64
	IsSigned    bool
}

// ContractPatch is a sparse contract update. Nil pointers mean "leave
// unchanged".
type ContractPatch struct {
	TotalAmount *float64
	AmountDue   *float64
	IsSigned    *bool
	OwnerID     *int64
}

// Fields lists the names of the fields the patch sets, in declaration order.
func (p ContractPatch) Fields() []string {
	var fields []string
	if p.TotalAmount != nil {
		fields = append(fields, "total_amount")
	}
	if p.AmountDue != nil {
		fields = append(fields, "amount_due")
	}
	if p.IsSigned != nil {
		fields = append(fields, "is_signed")
	}
	if p.OwnerID != nil {
		fields = append(fields, "owner_id")
	}
	return fields
}

// ContractService defines use-case operations for contracts.
type ContractService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateContractInput) (*domain.Contract, error)
	Update(ctx context.Context, p *domain.Principal, id int64, patch ContractPatch) (*domain.Contract, error)
	Get(ctx context.Context, id int64) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
}
