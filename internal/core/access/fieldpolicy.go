package access

import "github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"

// Patch is any sparse update that can name the fields it sets.
type Patch interface {
	Fields() []string
}

type fieldSet map[string]struct{}

func fields(names ...string) fieldSet {
	s := make(fieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// allowedFields is the field policy: for each entity kind and role, the set
// of fields that role may set via update. A pair absent from the table
// rejects every field. Ownership references (owner_id, assignee_id) may only
// be reassigned by management.
var allowedFields = map[domain.EntityKind]map[domain.Role]fieldSet{
	domain.KindClient: {
		domain.RoleSales:      fields("first_name", "last_name", "email", "phone", "company_name"),
		domain.RoleManagement: fields("first_name", "last_name", "email", "phone", "company_name", "owner_id"),
	},
	domain.KindContract: {
		domain.RoleSales:      fields("total_amount", "amount_due", "is_signed"),
		domain.RoleManagement: fields("total_amount", "amount_due", "is_signed", "owner_id"),
	},
	domain.KindEvent: {
		domain.RoleManagement: fields("assignee_id"),
		domain.RoleSupport:    fields("name", "start_time", "end_time", "location", "attendee_count", "notes"),
	},
	domain.KindStaff: {
		domain.RoleManagement: fields("first_name", "last_name", "email", "role", "password"),
	},
}

// CheckPatch rejects the whole patch on the first field the role may not set.
// Nothing is silently dropped: the caller either applies every submitted
// field or none of them.
func CheckPatch(kind domain.EntityKind, role domain.Role, patch Patch) error {
	allowed := allowedFields[kind][role]
	for _, f := range patch.Fields() {
		if _, ok := allowed[f]; !ok {
			return &domain.FieldNotAllowedError{Field: f, Role: role}
		}
	}
	return nil
}
