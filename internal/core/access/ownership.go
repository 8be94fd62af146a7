package access

import (
	"fmt"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// MayMutate is the ownership scope: it decides whether a principal may act on
// a specific record instance. Management may act on everything; sales only on
// clients and contracts it owns; support only on events assigned to it.
// Creation is not checked here (ownership is assigned at create, not tested).
func MayMutate(p *domain.Principal, entity any) bool {
	if p == nil {
		return false
	}
	if p.Role == domain.RoleManagement {
		return true
	}
	switch e := entity.(type) {
	case *domain.Client:
		return p.Role == domain.RoleSales && e.OwnerID == p.ID
	case *domain.Contract:
		return p.Role == domain.RoleSales && e.OwnerID == p.ID
	case *domain.Event:
		return p.Role == domain.RoleSupport && e.AssigneeID == p.ID
	}
	return false
}

// RequireMutate converts a failed ownership check into the typed Forbidden
// outcome, naming the rejecting gate.
func RequireMutate(p *domain.Principal, entity any) error {
	if p == nil {
		return domain.ErrNotAuthenticated
	}
	if MayMutate(p, entity) {
		return nil
	}
	kind, id := describe(entity)
	return &domain.ForbiddenError{
		Gate:   domain.GateOwnership,
		Actual: p.Role,
		Reason: fmt.Sprintf("%s principal %d may not act on %s %d", p.Role, p.ID, kind, id),
	}
}

func describe(entity any) (domain.EntityKind, int64) {
	switch e := entity.(type) {
	case *domain.Client:
		return domain.KindClient, e.ID
	case *domain.Contract:
		return domain.KindContract, e.ID
	case *domain.Event:
		return domain.KindEvent, e.ID
	case *domain.StaffUser:
		return domain.KindStaff, e.ID
	}
	return "", 0
}
