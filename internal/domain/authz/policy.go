package authz

import (
	"studio-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Operation is the fixed catalog of privileged actions.
type Operation string

const (
	OpViewCatalog        Operation = "catalog.view"
	OpManageCatalog      Operation = "catalog.manage"
	OpViewAvailableSlots Operation = "slots.view_available"
	OpViewAllSlots       Operation = "slots.view_all"
	OpViewOwnSlots       Operation = "slots.view_own"
	OpClaimSlot          Operation = "slots.claim"
	OpManageSlots        Operation = "slots.manage"
)

// Viewer is the caller identity resolved once per request by the auth
// middleware and threaded explicitly through every workflow call.
// An unauthenticated request is the zero Viewer (guest).
type Viewer struct {
	ID            uuid.UUID
	Role          user.Role
	Authenticated bool
}

func Guest() Viewer {
	return Viewer{}
}

func NewViewer(id uuid.UUID, role user.Role) Viewer {
	return Viewer{ID: id, Role: role, Authenticated: true}
}

func (v Viewer) IsAdmin() bool {
	return v.Authenticated && v.Role == user.RoleAdmin
}

// Allow is a pure function over (viewer, operation). Anything not in the
// table is denied.
func Allow(v Viewer, op Operation) bool {
	switch op {
	case OpViewCatalog, OpViewAvailableSlots:
		return true
	case OpViewOwnSlots, OpClaimSlot:
		return v.Authenticated
	case OpViewAllSlots, OpManageSlots, OpManageCatalog:
		return v.IsAdmin()
	default:
		return false
	}
}
