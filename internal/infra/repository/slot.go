package repository

import (
	"context"
	"errors"
	"time"

	"studio-booking/internal/domain/slot"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO slots (id, start_time, duration_minutes, available)
		 VALUES ($1, $2, $3, $4)`,
		s.ID(), s.StartTime(), s.DurationMin(), s.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

// Update reschedules a slot. Availability, contact fields and claimed_by
// are deliberately untouched.
func (r *SlotRepository) Update(ctx context.Context, id uuid.UUID, startTime time.Time, durationMin int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE slots
		 SET start_time = $2, duration_minutes = $3, updated_at = now()
		 WHERE id = $1`,
		id, startTime, durationMin)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Claim is the one real race in the system and is closed with a single
// conditional UPDATE. The WHERE clause rechecks availability at commit
// time, so of two concurrent claimants exactly one sees RowsAffected() == 1.
func (r *SlotRepository) Claim(ctx context.Context, id uuid.UUID, contact slot.Contact, claimedBy uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE slots
		 SET available = false,
		     client_name = $2,
		     phone_number = $3,
		     comment = $4,
		     claimed_by = $5,
		     updated_at = now()
		 WHERE id = $1 AND available`,
		id, contact.ClientName, contact.PhoneNumber, contact.Comment, claimedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to claim slot", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Lost the conditional update: either the slot is gone or someone
	// else claimed it first. Report which, so the caller can say
	// "just taken" instead of "does not exist".
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, id).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr("failed to check slot existence after claim", err)
	}
	if !exists {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("slot is already claimed", nil, infra.KindConflict)
}
