package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// ContractRepository persists contract records.
type ContractRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	Insert(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
}
