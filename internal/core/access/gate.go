// Package access centralizes the mutation rules: the role gate, the
// per-instance ownership scope, and the per-field update policy. Every
// (entity, role) rule lives here and nowhere else.
package access

import "github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"

// Require is the role gate. Authentication is always evaluated first: a nil
// principal fails with ErrNotAuthenticated, never Forbidden. The check has no
// side effects.
func Require(p *domain.Principal, allowed ...domain.Role) error {
	if p == nil {
		return domain.ErrNotAuthenticated
	}
	for _, r := range allowed {
		if p.Role == r {
			return nil
		}
	}
	return &domain.ForbiddenError{Gate: domain.GateRole, Required: allowed, Actual: p.Role}
}
