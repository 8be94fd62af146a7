package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// CreateClientInput carries all data needed to create a client. Ownership is
// not an input: the creating sales principal becomes the owner.
type CreateClientInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CompanyName string
}

// ClientPatch is a sparse client update. Nil pointers mean "leave unchanged".
type ClientPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	CompanyName *string
	OwnerID     *int64
}

// Fields lists the names of the fields the patch sets, in declaration order.
func (p ClientPatch) Fields() []string {
	var fields []string
	if p.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if p.LastName != nil {
		fields = append(fields, "last_name")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.CompanyName != nil {
		fields = append(fields, "company_name")
	}
	if p.OwnerID != nil {
		fields = append(fields, "owner_id")
	}
	return fields
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, p *domain.Principal, id int64, patch ClientPatch) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}
