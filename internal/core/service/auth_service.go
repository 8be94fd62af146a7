package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/access"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/auth"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// AuthService implements login and credential revocation.
type AuthService struct {
	staff    ports.StaffRepository
	codec    *auth.TokenCodec
	denylist auth.Denylist
	log      zerolog.Logger
}

func NewAuthService(staff ports.StaffRepository, codec *auth.TokenCodec, denylist auth.Denylist, log zerolog.Logger) *AuthService {
	return &AuthService{staff: staff, codec: codec, denylist: denylist, log: log}
}

// Login authenticates by username or email. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.StaffUser, error) {
	if login == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.staff.FindByLogin(ctx, login)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(domain.PrincipalOf(user))
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("staff_id", user.ID).Str("role", string(user.Role)).Msg("staff logged in")
	return token, user, nil
}

// Revoke denylists a subject so its outstanding bearer credentials stop
// resolving before natural expiry. Management only.
func (s *AuthService) Revoke(ctx context.Context, p *domain.Principal, subjectID int64) error {
	if err := access.Require(p, domain.RoleManagement); err != nil {
		return err
	}

	if _, err := s.staff.FindByID(ctx, subjectID); err != nil {
		return err
	}

	if err := s.denylist.Revoke(ctx, subjectID); err != nil {
		return err
	}

	s.log.Info().Int64("subject_id", subjectID).Int64("revoked_by", p.ID).Msg("credentials revoked")
	return nil
}
