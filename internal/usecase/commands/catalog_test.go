//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/user"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	services map[uuid.UUID]*queries.ServiceView

	// dropBeforeUpdate simulates a concurrent delete between the read
	// and the write of an update.
	dropBeforeUpdate bool
}

func newFakeServiceRepo(views ...*queries.ServiceView) *fakeServiceRepo {
	m := make(map[uuid.UUID]*queries.ServiceView, len(views))
	for _, v := range views {
		m[v.ID] = v
	}
	return &fakeServiceRepo{services: m}
}

func (f *fakeServiceRepo) Create(_ context.Context, s *catalog.Service) error {
	now := time.Now()
	f.services[s.ID()] = &queries.ServiceView{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		PriceCents:  s.PriceCents(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *catalog.Service) error {
	if f.dropBeforeUpdate {
		delete(f.services, s.ID())
	}
	v, ok := f.services[s.ID()]
	if !ok {
		return infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
	}
	v.Name = s.Name()
	v.Description = s.Description()
	v.PriceCents = s.PriceCents()
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.services[id]; !ok {
		return infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	v, ok := f.services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

func TestCreateService(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	t.Run("admin creates a service", func(t *testing.T) {
		repo := newFakeServiceRepo()
		cmds := commands.NewCatalogCommands(repo, repo)

		view, err := cmds.CreateService(context.Background(), admin, "Aroma Massage", "Relaxing aromatherapy session", 7000)
		require.NoError(t, err)
		assert.Equal(t, "Aroma Massage", view.Name)
		assert.Equal(t, int64(7000), view.PriceCents)
	})

	t.Run("permission checks", func(t *testing.T) {
		repo := newFakeServiceRepo()
		cmds := commands.NewCatalogCommands(repo, repo)

		_, err := cmds.CreateService(context.Background(), authz.Guest(), "X", "Y", 1)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)

		client := authz.NewViewer(uuid.New(), user.RoleClient)
		_, err = cmds.CreateService(context.Background(), client, "X", "Y", 1)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("validation failures", func(t *testing.T) {
		repo := newFakeServiceRepo()
		cmds := commands.NewCatalogCommands(repo, repo)

		for _, c := range []struct {
			name        string
			svcName     string
			description string
			priceCents  int64
		}{
			{"empty name", "", "desc", 100},
			{"empty description", "name", "", 100},
			{"negative price", "name", "desc", -1},
		} {
			t.Run(c.name, func(t *testing.T) {
				_, err := cmds.CreateService(context.Background(), admin, c.svcName, c.description, c.priceCents)
				require.ErrorIs(t, err, commands.ErrServiceValidation)
			})
		}
	})
}

func TestUpdateService(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	t.Run("successful update", func(t *testing.T) {
		existing := builder.NewServiceBuilder().BuildView()
		repo := newFakeServiceRepo(existing)
		cmds := commands.NewCatalogCommands(repo, repo)

		view, err := cmds.UpdateService(context.Background(), admin, existing.ID, "Hot Stone Massage", "90 minute session", 12000)
		require.NoError(t, err)
		assert.Equal(t, "Hot Stone Massage", view.Name)
		assert.Equal(t, int64(12000), view.PriceCents)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := newFakeServiceRepo()
		cmds := commands.NewCatalogCommands(repo, repo)

		_, err := cmds.UpdateService(context.Background(), admin, uuid.New(), "X", "Y", 1)
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("validation failure leaves the row untouched", func(t *testing.T) {
		existing := builder.NewServiceBuilder().BuildView()
		repo := newFakeServiceRepo(existing)
		cmds := commands.NewCatalogCommands(repo, repo)

		_, err := cmds.UpdateService(context.Background(), admin, existing.ID, "", "Y", 1)
		require.ErrorIs(t, err, commands.ErrServiceValidation)

		current, err := repo.FindByID(context.Background(), existing.ID)
		require.NoError(t, err)
		assert.Equal(t, existing.Name, current.Name)
	})

	t.Run("concurrent delete surfaces as conflict", func(t *testing.T) {
		existing := builder.NewServiceBuilder().BuildView()
		repo := newFakeServiceRepo(existing)
		repo.dropBeforeUpdate = true
		cmds := commands.NewCatalogCommands(repo, repo)

		_, err := cmds.UpdateService(context.Background(), admin, existing.ID, "X", "Y", 1)
		require.ErrorIs(t, err, commands.ErrServiceConflict)
	})
}

func TestDeleteService(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	t.Run("delete existing", func(t *testing.T) {
		existing := builder.NewServiceBuilder().BuildView()
		repo := newFakeServiceRepo(existing)
		cmds := commands.NewCatalogCommands(repo, repo)

		require.NoError(t, cmds.DeleteService(context.Background(), admin, existing.ID))

		_, err := repo.FindByID(context.Background(), existing.ID)
		require.Error(t, err)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := newFakeServiceRepo()
		cmds := commands.NewCatalogCommands(repo, repo)

		err := cmds.DeleteService(context.Background(), admin, uuid.New())
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		existing := builder.NewServiceBuilder().BuildView()
		repo := newFakeServiceRepo(existing)
		cmds := commands.NewCatalogCommands(repo, repo)

		client := authz.NewViewer(uuid.New(), user.RoleClient)
		err := cmds.DeleteService(context.Background(), client, existing.ID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
