package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/access"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/auth"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// StaffService orchestrates staff mutations. Every write is management-only.
type StaffService struct {
	staff    ports.StaffRepository
	denylist auth.Denylist
	uow      ports.UnitOfWork
	log      zerolog.Logger
}

func NewStaffService(staff ports.StaffRepository, denylist auth.Denylist, uow ports.UnitOfWork, log zerolog.Logger) *StaffService {
	return &StaffService{staff: staff, denylist: denylist, uow: uow, log: log}
}

// Create registers a staff user with a hashed password. Username and email
// must be unique across staff.
func (s *StaffService) Create(ctx context.Context, p *domain.Principal, in ports.CreateStaffInput) (*domain.StaffUser, error) {
	if err := access.Require(p, domain.RoleManagement); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Password == "" {
		return nil, &domain.ValidationError{Reason: "username and password are required"}
	}
	if !in.Role.Valid() {
		return nil, &domain.ValidationError{Reason: "unknown role " + string(in.Role)}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var created *domain.StaffUser
	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := checkUnique(ctx, "username", in.Username, 0, s.staffIDByUsername); err != nil {
			return err
		}
		if err := checkUnique(ctx, "email", in.Email, 0, s.staffIDByEmail); err != nil {
			return err
		}

		now := time.Now().UTC()
		user := &domain.StaffUser{
			Username:     in.Username,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		created, err = s.staff.Insert(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("staff_id", created.ID).Str("role", string(created.Role)).Int64("created_by", p.ID).Msg("staff user created")
	return created, nil
}

// Update applies a sparse patch to a staff user. Email stays unique; a new
// password is hashed before storage; the login username is immutable.
func (s *StaffService) Update(ctx context.Context, p *domain.Principal, id int64, patch ports.StaffPatch) (*domain.StaffUser, error) {
	if err := access.Require(p, domain.RoleManagement); err != nil {
		return nil, err
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, &domain.ValidationError{Reason: "unknown role " + string(*patch.Role)}
	}

	var updated *domain.StaffUser
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.staff.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := access.CheckPatch(domain.KindStaff, p.Role, patch); err != nil {
			return err
		}

		if patch.Email != nil && *patch.Email != user.Email {
			if err := checkUnique(ctx, "email", *patch.Email, user.ID, s.staffIDByEmail); err != nil {
				return err
			}
		}

		applyStaffPatch(user, patch)
		if patch.Password != nil {
			hash, err := auth.HashPassword(*patch.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		user.UpdatedAt = time.Now().UTC()

		if err := s.staff.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("staff_id", updated.ID).Int64("actor_id", p.ID).Msg("staff user updated")
	return updated, nil
}

// Delete removes a staff user and revokes its outstanding credentials, so a
// deleted identity cannot keep acting until its tokens expire.
func (s *StaffService) Delete(ctx context.Context, p *domain.Principal, id int64) error {
	if err := access.Require(p, domain.RoleManagement); err != nil {
		return err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.staff.FindByID(ctx, id); err != nil {
			return err
		}
		return s.staff.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.denylist.Revoke(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("staff_id", id).Msg("failed to revoke credentials of deleted staff user")
	}

	s.log.Info().Int64("staff_id", id).Int64("deleted_by", p.ID).Msg("staff user deleted")
	return nil
}

func (s *StaffService) Get(ctx context.Context, id int64) (*domain.StaffUser, error) {
	return s.staff.FindByID(ctx, id)
}

func (s *StaffService) List(ctx context.Context) ([]domain.StaffUser, error) {
	return s.staff.List(ctx)
}

func (s *StaffService) staffIDByUsername(ctx context.Context, username string) (int64, error) {
	u, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *StaffService) staffIDByEmail(ctx context.Context, email string) (int64, error) {
	u, err := s.staff.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}
