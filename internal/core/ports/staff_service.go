package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// CreateStaffInput carries all data needed to create a staff user.
type CreateStaffInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
}

// StaffPatch is a sparse staff update. Nil pointers mean "leave unchanged";
// there is no way to clear a field to empty.
type StaffPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *domain.Role
	Password  *string
}

// Fields lists the names of the fields the patch sets, in declaration order.
func (p StaffPatch) Fields() []string {
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
	if p.Role != nil {
		fields = append(fields, "role")
	}
	if p.Password != nil {
		fields = append(fields, "password")
	}
	return fields
}

// StaffService defines use-case operations for staff users.
type StaffService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateStaffInput) (*domain.StaffUser, error)
	Update(ctx context.Context, p *domain.Principal, id int64, patch StaffPatch) (*domain.StaffUser, error)
	Delete(ctx context.Context, p *domain.Principal, id int64) error
	Get(ctx context.Context, id int64) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
}
