package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/auth"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

func newTestAuthService(staff *stubStaffRepo, denylist *stubDenylist) *AuthService {
	codec := auth.NewTokenCodec("secret", time.Hour)
	return NewAuthService(staff, codec, denylist, zerolog.Nop())
}

func seedStaff(t *testing.T, repo *stubStaffRepo, username, email, password string, role domain.Role) *domain.StaffUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return repo.seed(&domain.StaffUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

func TestAuthService_Login_ByUsername(t *testing.T) {
	repo := newStubStaffRepo()
	seedStaff(t, repo, "carol", "carol@example.com", "s3cret", domain.RoleManagement)
	svc := newTestAuthService(repo, &stubDenylist{})

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "carol" || user.Role != domain.RoleManagement {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	repo := newStubStaffRepo()
	seedStaff(t, repo, "carol", "carol@example.com", "s3cret", domain.RoleManagement)
	svc := newTestAuthService(repo, &stubDenylist{})

	if _, _, err := svc.Login(context.Background(), "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubStaffRepo()
	seedStaff(t, repo, "carol", "carol@example.com", "s3cret", domain.RoleManagement)
	svc := newTestAuthService(repo, &stubDenylist{})

	if _, _, err := svc.Login(context.Background(), "carol", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubStaffRepo(), &stubDenylist{})

	// Indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newStubStaffRepo(), &stubDenylist{})

	if _, _, err := svc.Login(context.Background(), "", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty login, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "carol", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Revoke(t *testing.T) {
	repo := newStubStaffRepo()
	target := seedStaff(t, repo, "bob", "bob@example.com", "pw", domain.RoleSales)
	denylist := &stubDenylist{}
	svc := newTestAuthService(repo, denylist)

	if err := svc.Revoke(context.Background(), principal(1, domain.RoleManagement), target.ID); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if !denylist.revoked[target.ID] {
		t.Fatalf("expected subject %d on the denylist", target.ID)
	}
}

func TestAuthService_Revoke_ManagementOnly(t *testing.T) {
	repo := newStubStaffRepo()
	target := seedStaff(t, repo, "bob", "bob@example.com", "pw", domain.RoleSales)
	svc := newTestAuthService(repo, &stubDenylist{})

	if err := svc.Revoke(context.Background(), principal(2, domain.RoleSales), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthService_Revoke_UnknownSubject(t *testing.T) {
	svc := newTestAuthService(newStubStaffRepo(), &stubDenylist{})

	err := svc.Revoke(context.Background(), principal(1, domain.RoleManagement), 42)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
