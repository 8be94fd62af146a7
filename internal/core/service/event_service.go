package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/access"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// EventService orchestrates event mutations.
type EventService struct {
	events    ports.EventRepository
	contracts ports.ContractRepository
	clients   ports.ClientRepository
	staff     ports.StaffRepository
	uow       ports.UnitOfWork
	log       zerolog.Logger
}

func NewEventService(events ports.EventRepository, contracts ports.ContractRepository, clients ports.ClientRepository, staff ports.StaffRepository, uow ports.UnitOfWork, log zerolog.Logger) *EventService {
	return &EventService{events: events, contracts: contracts, clients: clients, staff: staff, uow: uow, log: log}
}

// Create validates the referenced client and contract, requires the contract
// to be signed, and validates the optional support assignee. The signed-state
// rule is enforced at create time only.
func (s *EventService) Create(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*domain.Event, error) {
	if err := access.Require(p, domain.RoleSales); err != nil {
		return nil, err
	}

	var created *domain.Event
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
			return err
		}

		contract, err := s.contracts.FindByID(ctx, in.ContractID)
		if err != nil {
			return err
		}
		if !contract.IsSigned {
			return &domain.ValidationError{Reason: fmt.Sprintf("contract %d is not signed", contract.ID)}
		}

		if in.AssigneeID != 0 {
			if err := s.requireSupportAssignee(ctx, in.AssigneeID); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		event := &domain.Event{
			Name:          in.Name,
			ContractID:    in.ContractID,
			ClientID:      in.ClientID,
			AssigneeID:    in.AssigneeID,
			StartTime:     in.StartTime,
			EndTime:       in.EndTime,
			Location:      in.Location,
			AttendeeCount: in.AttendeeCount,
			Notes:         in.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		created, err = s.events.Insert(ctx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("event_id", created.ID).Int64("contract_id", created.ContractID).Msg("event created")
	return created, nil
}

// Update applies a sparse patch to an event. Management may only reassign
// the support contact; support may edit the event body of its own events.
func (s *EventService) Update(ctx context.Context, p *domain.Principal, id int64, patch ports.EventPatch) (*domain.Event, error) {
	if err := access.Require(p, domain.RoleManagement, domain.RoleSupport); err != nil {
		return nil, err
	}

	var updated *domain.Event
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		event, err := s.events.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.RequireMutate(p, event); err != nil {
			return err
		}
		if err := access.CheckPatch(domain.KindEvent, p.Role, patch); err != nil {
			return err
		}

		if patch.AssigneeID != nil && *patch.AssigneeID != 0 {
			if err := s.requireSupportAssignee(ctx, *patch.AssigneeID); err != nil {
				return err
			}
		}

		applyEventPatch(event, patch)
		event.UpdatedAt = time.Now().UTC()

		if err := s.events.Update(ctx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("event_id", updated.ID).Int64("actor_id", p.ID).Msg("event updated")
	return updated, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) requireSupportAssignee(ctx context.Context, assigneeID int64) error {
	assignee, err := s.staff.FindByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if assignee.Role != domain.RoleSupport {
		return &domain.ValidationError{Reason: "assignee must hold the support role"}
	}
	return nil
}
