package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/access"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// ClientService orchestrates client mutations: role gate, ownership scope,
// field policy, then the merger, all inside one transaction.
type ClientService struct {
	clients ports.ClientRepository
	staff   ports.StaffRepository
	uow     ports.UnitOfWork
	log     zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, staff ports.StaffRepository, uow ports.UnitOfWork, log zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, staff: staff, uow: uow, log: log}
}

// Create makes the acting sales principal the owner of the new client.
func (s *ClientService) Create(ctx context.Context, p *domain.Principal, in ports.CreateClientInput) (*domain.Client, error) {
	if err := access.Require(p, domain.RoleSales); err != nil {
		return nil, err
	}

	var created *domain.Client
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := checkUnique(ctx, "email", in.Email, 0, s.clientIDByEmail); err != nil {
			return err
		}

		now := time.Now().UTC()
		client := &domain.Client{
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Email:       in.Email,
			Phone:       in.Phone,
			CompanyName: in.CompanyName,
			OwnerID:     p.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		var err error
		created, err = s.clients.Insert(ctx, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("client_id", created.ID).Int64("owner_id", p.ID).Msg("client created")
	return created, nil
}

// Update applies a sparse patch to a client after the role, ownership and
// field gates pass. A uniqueness conflict on email aborts before any field
// is touched.
func (s *ClientService) Update(ctx context.Context, p *domain.Principal, id int64, patch ports.ClientPatch) (*domain.Client, error) {
	if err := access.Require(p, domain.RoleManagement, domain.RoleSales); err != nil {
		return nil, err
	}

	var updated *domain.Client
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.clients.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.RequireMutate(p, client); err != nil {
			return err
		}
		if err := access.CheckPatch(domain.KindClient, p.Role, patch); err != nil {
			return err
		}

		if patch.Email != nil && *patch.Email != client.Email {
			if err := checkUnique(ctx, "email", *patch.Email, client.ID, s.clientIDByEmail); err != nil {
				return err
			}
		}
		if patch.OwnerID != nil {
			if err := s.requireSalesOwner(ctx, *patch.OwnerID); err != nil {
				return err
			}
		}

		applyClientPatch(client, patch)
		client.UpdatedAt = time.Now().UTC()

		if err := s.clients.Update(ctx, client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("client_id", updated.ID).Int64("actor_id", p.ID).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) clientIDByEmail(ctx context.Context, email string) (int64, error) {
	c, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

// requireSalesOwner validates an ownership reassignment target.
func (s *ClientService) requireSalesOwner(ctx context.Context, ownerID int64) error {
	owner, err := s.staff.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner.Role != domain.RoleSales {
		return &domain.ValidationError{Reason: "owner must hold the sales role"}
	}
	return nil
}
