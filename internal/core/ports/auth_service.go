package ports

import (
	"context"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// AuthService authenticates staff and manages credential revocation.
type AuthService interface {
	// Login verifies the secret for a username-or-email login identifier and
	// returns a signed bearer credential plus the authenticated user.
	Login(ctx context.Context, login, password string) (string, *domain.StaffUser, error)
	// Revoke denylists every outstanding credential of the subject until the
	// tokens would have expired on their own. Management only.
	Revoke(ctx context.Context, p *domain.Principal, subjectID int64) error
}
