package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// ClientRepository persists client records.
type ClientRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}
