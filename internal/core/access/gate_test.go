package access

import (
	"errors"
	"testing"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

func TestRequire_Allowed(t *testing.T) {
	p := &domain.Principal{ID: 1, Role: domain.RoleSales}

	if err := Require(p, domain.RoleSales); err != nil {
		t.Fatalf("expected sales to pass, got %v", err)
	}
	if err := Require(p, domain.RoleManagement, domain.RoleSales); err != nil {
		t.Fatalf("expected sales in multi-role gate to pass, got %v", err)
	}
}

func TestRequire_Forbidden(t *testing.T) {
	p := &domain.Principal{ID: 1, Role: domain.RoleSupport}

	err := Require(p, domain.RoleManagement, domain.RoleSales)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	var fe *domain.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *ForbiddenError, got %T", err)
	}
	if fe.Gate != domain.GateRole {
		t.Fatalf("expected role gate, got %s", fe.Gate)
	}
	if fe.Actual != domain.RoleSupport {
		t.Fatalf("expected actual role support, got %s", fe.Actual)
	}
}

func TestRequire_NilPrincipal(t *testing.T) {
	// Authentication is decided before authorization: an anonymous caller is
	// never told it has the wrong role.
	err := Require(nil, domain.RoleManagement)
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("nil principal must not map to Forbidden")
	}
}
