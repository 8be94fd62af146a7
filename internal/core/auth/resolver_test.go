package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

type stubIdentityStore struct {
	users map[int64]*domain.StaffUser
}

func (s *stubIdentityStore) FindByID(_ context.Context, id int64) (*domain.StaffUser, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: domain.KindStaff, ID: id}
	}
	clone := *u
	return &clone, nil
}

type stubDenylist struct {
	revoked map[int64]bool
	err     error
}

func (d *stubDenylist) IsRevoked(_ context.Context, subjectID int64) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[subjectID], nil
}

func (d *stubDenylist) Revoke(_ context.Context, subjectID int64) error {
	if d.revoked == nil {
		d.revoked = make(map[int64]bool)
	}
	d.revoked[subjectID] = true
	return nil
}

func newTestResolver(store *stubIdentityStore, denylist Denylist) (*SessionResolver, *TokenCodec) {
	codec := NewTokenCodec("secret", time.Hour)
	return NewSessionResolver(codec, store, denylist, zerolog.Nop()), codec
}

func TestSessionResolver_Success(t *testing.T) {
	store := &stubIdentityStore{users: map[int64]*domain.StaffUser{
		7: {ID: 7, Username: "alice", Role: domain.RoleSales},
	}}
	resolver, codec := newTestResolver(store, &stubDenylist{})

	token, err := codec.Issue(&domain.Principal{ID: 7, Username: "alice", Role: domain.RoleSales})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.ID != 7 || p.Username != "alice" || p.Role != domain.RoleSales {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestSessionResolver_EmptyCredential(t *testing.T) {
	resolver, _ := newTestResolver(&stubIdentityStore{}, &stubDenylist{})

	if _, err := resolver.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionResolver_InvalidCredential(t *testing.T) {
	resolver, _ := newTestResolver(&stubIdentityStore{}, &stubDenylist{})

	if _, err := resolver.Resolve(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestSessionResolver_DeletedIdentity(t *testing.T) {
	resolver, codec := newTestResolver(&stubIdentityStore{users: map[int64]*domain.StaffUser{}}, &stubDenylist{})

	token, err := codec.Issue(&domain.Principal{ID: 42, Username: "ghost", Role: domain.RoleSupport})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := resolver.Resolve(context.Background(), token); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionResolver_RevokedSubject(t *testing.T) {
	store := &stubIdentityStore{users: map[int64]*domain.StaffUser{
		7: {ID: 7, Username: "alice", Role: domain.RoleSales},
	}}
	denylist := &stubDenylist{revoked: map[int64]bool{7: true}}
	resolver, codec := newTestResolver(store, denylist)

	token, err := codec.Issue(&domain.Principal{ID: 7, Username: "alice", Role: domain.RoleSales})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := resolver.Resolve(context.Background(), token); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionResolver_DenylistUnavailable(t *testing.T) {
	// A denylist outage must not lock every staff user out.
	store := &stubIdentityStore{users: map[int64]*domain.StaffUser{
		7: {ID: 7, Username: "alice", Role: domain.RoleSales},
	}}
	denylist := &stubDenylist{err: errors.New("connection refused")}
	resolver, codec := newTestResolver(store, denylist)

	token, err := codec.Issue(&domain.Principal{ID: 7, Username: "alice", Role: domain.RoleSales})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestSessionResolver_FreshRole(t *testing.T) {
	// The principal reflects the stored role, not the role baked into the
	// credential at issuance.
	store := &stubIdentityStore{users: map[int64]*domain.StaffUser{
		7: {ID: 7, Username: "alice", Role: domain.RoleManagement},
	}}
	resolver, codec := newTestResolver(store, &stubDenylist{})

	token, err := codec.Issue(&domain.Principal{ID: 7, Username: "alice", Role: domain.RoleSales})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Role != domain.RoleManagement {
		t.Fatalf("expected stored role management, got %s", p.Role)
	}
}
