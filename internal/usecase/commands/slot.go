package commands

import (
	"context"
	"time"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/slot"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotAlreadyClaimed      = errs.New("slot already claimed")
	ErrSlotValidation          = errs.New("slot validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SlotWriteRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	Update(ctx context.Context, id uuid.UUID, startTime time.Time, durationMin int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Claim(ctx context.Context, id uuid.UUID, contact slot.Contact, claimedBy uuid.UUID) error
}

type SlotSnapshotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error)
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, viewer authz.Viewer, startTime time.Time, durationMin int) (*queries.SlotView, error)
	UpdateSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID, startTime time.Time, durationMin int) (*queries.SlotView, error)
	DeleteSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID) error
	ClaimSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID, contact slot.Contact) (*queries.SlotView, error)
}

type slotCommandsImpl struct {
	repo      SlotWriteRepository
	readStore SlotSnapshotReadStore
}

func NewSlotCommands(repo SlotWriteRepository, readStore SlotSnapshotReadStore) SlotCommands {
	return &slotCommandsImpl{
		repo:      repo,
		readStore: readStore,
	}
}

func (s *slotCommandsImpl) CreateSlot(ctx context.Context, viewer authz.Viewer, startTime time.Time, durationMin int) (*queries.SlotView, error) {
	if err := requireOperation(viewer, authz.OpManageSlots); err != nil {
		return nil, err
	}

	// Past start times are allowed; only the duration is validated.
	entity, err := slot.NewSlot(startTime, durationMin)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotValidation)
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.findView(ctx, entity.ID())
}

func (s *slotCommandsImpl) UpdateSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID, startTime time.Time, durationMin int) (*queries.SlotView, error) {
	if err := requireOperation(viewer, authz.OpManageSlots); err != nil {
		return nil, err
	}

	if durationMin <= 0 {
		return nil, errs.Mark(slot.ErrInvalidDuration, ErrSlotValidation)
	}

	if err := s.repo.Update(ctx, id, startTime, durationMin); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.findView(ctx, id)
}

func (s *slotCommandsImpl) DeleteSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID) error {
	if err := requireOperation(viewer, authz.OpManageSlots); err != nil {
		return err
	}

	// Unconditional: claimed slots are deletable too.
	if err := s.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *slotCommandsImpl) ClaimSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID, contact slot.Contact) (*queries.SlotView, error) {
	if err := requireOperation(viewer, authz.OpClaimSlot); err != nil {
		return nil, err
	}

	if err := contact.Validate(); err != nil {
		return nil, errs.Mark(err, ErrSlotValidation)
	}

	if err := s.repo.Claim(ctx, id, contact, viewer.ID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrSlotNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrSlotAlreadyClaimed
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return s.findView(ctx, id)
}

// Read-after-write: the handlers respond with the stored row, not the input.
func (s *slotCommandsImpl) findView(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	view, err := s.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func requireOperation(viewer authz.Viewer, op authz.Operation) error {
	if authz.Allow(viewer, op) {
		return nil
	}
	if !viewer.Authenticated {
		return errs.ErrUnauthenticated
	}
	return errs.ErrForbidden
}
