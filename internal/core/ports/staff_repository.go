package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// StaffRepository persists staff users. It doubles as the identity store for
// session resolution. Lookups return *domain.NotFoundError when no record
// matches; value lookups report ID 0 in that error.
type StaffRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.StaffUser, error)
	// FindByLogin matches either the username or the contact email.
	FindByLogin(ctx context.Context, login string) (*domain.StaffUser, error)
	FindByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	Insert(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error)
	Update(ctx context.Context, user *domain.StaffUser) error
	Delete(ctx context.Context, id int64) error
}
