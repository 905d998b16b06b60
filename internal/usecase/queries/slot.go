package queries

import (
	"context"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/slot"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound = errs.New("slot not found")
	ErrSlotQuery    = errs.New("slot query failed")
)

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	List(ctx context.Context, filter slot.Filter) ([]*SlotView, error)
}

type SlotQueries interface {
	ListSlots(ctx context.Context, viewer authz.Viewer) ([]*SlotView, error)
	GetSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID) (*SlotView, error)
	ListOwnSlots(ctx context.Context, viewer authz.Viewer) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

// ListSlots applies the role projection: admins see every slot with
// claimant details, everyone else sees open slots only.
func (q *slotQueriesImpl) ListSlots(ctx context.Context, viewer authz.Viewer) ([]*SlotView, error) {
	if authz.Allow(viewer, authz.OpViewAllSlots) {
		views, err := q.store.List(ctx, slot.AllSlots())
		if err != nil {
			return nil, errs.Mark(err, ErrSlotQuery)
		}
		return views, nil
	}

	views, err := q.store.List(ctx, slot.AvailableSlots())
	if err != nil {
		return nil, errs.Mark(err, ErrSlotQuery)
	}
	return redactAll(views), nil
}

func (q *slotQueriesImpl) GetSlot(ctx context.Context, viewer authz.Viewer, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrSlotQuery)
	}

	switch {
	case authz.Allow(viewer, authz.OpViewAllSlots):
		return view, nil
	case view.ClaimedBy != nil && viewer.Authenticated && *view.ClaimedBy == viewer.ID:
		// The claimant sees their own claim details.
		return view, nil
	case view.Available:
		redacted := view.Redact()
		return &redacted, nil
	default:
		// A claimed slot is invisible to everyone but its claimant and admins.
		return nil, ErrSlotNotFound
	}
}

func (q *slotQueriesImpl) ListOwnSlots(ctx context.Context, viewer authz.Viewer) ([]*SlotView, error) {
	if !authz.Allow(viewer, authz.OpViewOwnSlots) {
		return nil, errs.ErrUnauthenticated
	}

	views, err := q.store.List(ctx, slot.ClaimedBy(viewer.ID))
	if err != nil {
		return nil, errs.Mark(err, ErrSlotQuery)
	}
	return views, nil
}

func redactAll(views []*SlotView) []*SlotView {
	result := make([]*SlotView, len(views))
	for i, v := range views {
		redacted := v.Redact()
		result[i] = &redacted
	}
	return result
}
