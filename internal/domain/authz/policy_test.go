//go:build unit

package authz_test

import (
	"testing"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	guest := authz.Guest()
	client := authz.NewViewer(uuid.New(), user.RoleClient)
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	// Full decision table: every operation for every caller kind.
	cases := []struct {
		name   string
		viewer authz.Viewer
		op     authz.Operation
		want   bool
	}{
		{"guest views catalog", guest, authz.OpViewCatalog, true},
		{"client views catalog", client, authz.OpViewCatalog, true},
		{"admin views catalog", admin, authz.OpViewCatalog, true},

		{"guest manages catalog", guest, authz.OpManageCatalog, false},
		{"client manages catalog", client, authz.OpManageCatalog, false},
		{"admin manages catalog", admin, authz.OpManageCatalog, true},

		{"guest views available slots", guest, authz.OpViewAvailableSlots, true},
		{"client views available slots", client, authz.OpViewAvailableSlots, true},
		{"admin views available slots", admin, authz.OpViewAvailableSlots, true},

		{"guest views all slots", guest, authz.OpViewAllSlots, false},
		{"client views all slots", client, authz.OpViewAllSlots, false},
		{"admin views all slots", admin, authz.OpViewAllSlots, true},

		{"guest views own slots", guest, authz.OpViewOwnSlots, false},
		{"client views own slots", client, authz.OpViewOwnSlots, true},
		{"admin views own slots", admin, authz.OpViewOwnSlots, true},

		{"guest claims slot", guest, authz.OpClaimSlot, false},
		{"client claims slot", client, authz.OpClaimSlot, true},
		{"admin claims slot", admin, authz.OpClaimSlot, true},

		{"guest manages slots", guest, authz.OpManageSlots, false},
		{"client manages slots", client, authz.OpManageSlots, false},
		{"admin manages slots", admin, authz.OpManageSlots, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, authz.Allow(c.viewer, c.op))
		})
	}
}

func TestAllowUnknownOperation(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)
	assert.False(t, authz.Allow(admin, authz.Operation("slots.release")))
}

func TestViewer(t *testing.T) {
	t.Run("guest is the zero value", func(t *testing.T) {
		assert.Equal(t, authz.Viewer{}, authz.Guest())
		assert.False(t, authz.Guest().IsAdmin())
	})

	t.Run("forged role without authentication is not admin", func(t *testing.T) {
		v := authz.Viewer{Role: user.RoleAdmin}
		assert.False(t, v.IsAdmin())
	})
}
