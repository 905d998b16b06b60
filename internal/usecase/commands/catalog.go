package commands

import (
	"context"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound   = errs.New("service not found")
	ErrServiceConflict   = errs.New("service modified concurrently")
	ErrServiceValidation = errs.New("service validation failed")
)

type ServiceWriteRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceSnapshotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error)
}

type CatalogCommands interface {
	CreateService(ctx context.Context, viewer authz.Viewer, name, description string, priceCents int64) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, viewer authz.Viewer, id uuid.UUID, name, description string, priceCents int64) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, viewer authz.Viewer, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	repo      ServiceWriteRepository
	readStore ServiceSnapshotReadStore
}

func NewCatalogCommands(repo ServiceWriteRepository, readStore ServiceSnapshotReadStore) CatalogCommands {
	return &catalogCommandsImpl{
		repo:      repo,
		readStore: readStore,
	}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, viewer authz.Viewer, name, description string, priceCents int64) (*queries.ServiceView, error) {
	if err := requireOperation(viewer, authz.OpManageCatalog); err != nil {
		return nil, err
	}

	entity, err := catalog.NewService(name, description, priceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, viewer authz.Viewer, id uuid.UUID, name, description string, priceCents int64) (*queries.ServiceView, error) {
	if err := requireOperation(viewer, authz.OpManageCatalog); err != nil {
		return nil, err
	}

	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := catalog.ReconstructService(current.ID, current.Name, current.Description, current.PriceCents, current.CreatedAt, current.UpdatedAt)
	if err := entity.Update(name, description, priceCents); err != nil {
		return nil, errs.Mark(err, ErrServiceValidation)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		// The row existed a moment ago; losing it now is a concurrent
		// delete, surfaced as a conflict rather than swallowed.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, viewer authz.Viewer, id uuid.UUID) error {
	if err := requireOperation(viewer, authz.OpManageCatalog); err != nil {
		return err
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
