package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// IdentityStore looks up a staff user by id. Satisfied by ports.StaffRepository.
type IdentityStore interface {
	FindByID(ctx context.Context, id int64) (*domain.StaffUser, error)
}

// Denylist answers whether a subject's outstanding credentials have been
// revoked. Bearer tokens are otherwise valid until natural expiry, so this is
// the only early-invalidation mechanism.
type Denylist interface {
	IsRevoked(ctx context.Context, subjectID int64) (bool, error)
	Revoke(ctx context.Context, subjectID int64) error
}

// SessionResolver turns a stored bearer credential into a live principal.
// It is the single place where "am I logged in" is decided; every protected
// call goes through it and sees the latest identity and role data.
type SessionResolver struct {
	codec    *TokenCodec
	store    IdentityStore
	denylist Denylist
	log      zerolog.Logger
}

func NewSessionResolver(codec *TokenCodec, store IdentityStore, denylist Denylist, log zerolog.Logger) *SessionResolver {
	return &SessionResolver{codec: codec, store: store, denylist: denylist, log: log}
}

// Resolve verifies the credential and loads the principal fresh from the
// identity store. Every failure path yields a "not authenticated" outcome:
// domain.ErrExpiredCredential and domain.ErrInvalidCredential are surfaced
// as-is for diagnostics, a revoked subject or a deleted identity returns
// domain.ErrNotAuthenticated. An empty credential means "no session stored".
func (r *SessionResolver) Resolve(ctx context.Context, credential string) (*domain.Principal, error) {
	if credential == "" {
		return nil, domain.ErrNotAuthenticated
	}

	claims, err := r.codec.Parse(credential)
	if err != nil {
		return nil, err
	}

	if r.denylist != nil {
		revoked, err := r.denylist.IsRevoked(ctx, claims.SubjectID)
		if err != nil {
			r.log.Warn().Err(err).Int64("subject_id", claims.SubjectID).Msg("denylist check failed, treating credential as valid")
		} else if revoked {
			return nil, domain.ErrNotAuthenticated
		}
	}

	user, err := r.store.FindByID(ctx, claims.SubjectID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			// Identity deleted between issuance and use.
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	return domain.PrincipalOf(user), nil
}
