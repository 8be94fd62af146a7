package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/access"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// ContractService orchestrates contract mutations.
type ContractService struct {
	contracts ports.ContractRepository
	clients   ports.ClientRepository
	staff     ports.StaffRepository
	uow       ports.UnitOfWork
	log       zerolog.Logger
}

func NewContractService(contracts ports.ContractRepository, clients ports.ClientRepository, staff ports.StaffRepository, uow ports.UnitOfWork, log zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, clients: clients, staff: staff, uow: uow, log: log}
}

// Create validates the referenced client and sales owner. A sales caller
// always becomes the owner; management must name one explicitly.
func (s *ContractService) Create(ctx context.Context, p *domain.Principal, in ports.CreateContractInput) (*domain.Contract, error) {
	if err := access.Require(p, domain.RoleManagement, domain.RoleSales); err != nil {
		return nil, err
	}

	ownerID := in.OwnerID
	if p.Role == domain.RoleSales {
		ownerID = p.ID
	}

	var created *domain.Contract
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
			return err
		}

		owner, err := s.staff.FindByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if owner.Role != domain.RoleSales {
			return &domain.ValidationError{Reason: "contract owner must hold the sales role"}
		}

		now := time.Now().UTC()
		contract := &domain.Contract{
			ClientID:    in.ClientID,
			OwnerID:     ownerID,
			TotalAmount: in.TotalAmount,
			AmountDue:   in.AmountDue,
			IsSigned:    in.IsSigned,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		created, err = s.contracts.Insert(ctx, contract)
		return err
	})
	if err != nil {
		return nil, err
	}

	if created.IsSigned {
		s.log.Info().Int64("contract_id", created.ID).Int64("client_id", created.ClientID).Msg("contract signed at creation")
	}
	s.log.Info().Int64("contract_id", created.ID).Int64("owner_id", ownerID).Msg("contract created")
	return created, nil
}

// Update applies a sparse patch to a contract. Setting is_signed is a
// business signal worth a dedicated log line.
func (s *ContractService) Update(ctx context.Context, p *domain.Principal, id int64, patch ports.ContractPatch) (*domain.Contract, error) {
	if err := access.Require(p, domain.RoleManagement, domain.RoleSales); err != nil {
		return nil, err
	}

	var updated *domain.Contract
	var newlySigned bool
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		contract, err := s.contracts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.RequireMutate(p, contract); err != nil {
			return err
		}
		if err := access.CheckPatch(domain.KindContract, p.Role, patch); err != nil {
			return err
		}

		if patch.OwnerID != nil {
			owner, err := s.staff.FindByID(ctx, *patch.OwnerID)
			if err != nil {
				return err
			}
			if owner.Role != domain.RoleSales {
				return &domain.ValidationError{Reason: "contract owner must hold the sales role"}
			}
		}

		newlySigned = patch.IsSigned != nil && *patch.IsSigned && !contract.IsSigned

		applyContractPatch(contract, patch)
		contract.UpdatedAt = time.Now().UTC()

		if err := s.contracts.Update(ctx, contract); err != nil {
			return err
		}
		updated = contract
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newlySigned {
		s.log.Info().Int64("contract_id", updated.ID).Int64("client_id", updated.ClientID).Int64("signed_by", p.ID).Msg("contract signed")
	}
	return updated, nil
}

func (s *ContractService) Get(ctx context.Context, id int64) (*domain.Contract, error) {
	return s.contracts.FindByID(ctx, id)
}

func (s *ContractService) List(ctx context.Context) ([]domain.Contract, error) {
	return s.contracts.List(ctx)
}
