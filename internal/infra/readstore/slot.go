package readstore

import (
	"context"
	"errors"

	"studio-booking/internal/domain/slot"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const slotColumns = `id, start_time, duration_minutes, available, client_name, phone_number, comment, claimed_by, created_at, updated_at`

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)

	view, err := scanSlotView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return view, nil
}

func (r *SlotReadStore) List(ctx context.Context, filter slot.Filter) ([]*queries.SlotView, error) {
	query := `SELECT ` + slotColumns + ` FROM slots`
	var args []any

	switch filter.Kind {
	case slot.FilterAvailableOnly:
		query += ` WHERE available`
	case slot.FilterByClaimant:
		query += ` WHERE claimed_by = $1`
		args = append(args, filter.ClaimantID)
	case slot.FilterAll:
	}
	query += ` ORDER BY start_time, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, scanErr := scanSlotView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}

	return result, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(
		&v.ID,
		&v.StartTime,
		&v.DurationMin,
		&v.Available,
		&v.ClientName,
		&v.PhoneNumber,
		&v.Comment,
		&v.ClaimedBy,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
