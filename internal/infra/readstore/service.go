package readstore

import (
	"context"
	"errors"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, price_cents, created_at, updated_at FROM services WHERE id = $1`, id)

	var v queries.ServiceView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return &v, nil
}

func (r *ServiceReadStore) List(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, price_cents, created_at, updated_at FROM services ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.CreatedAt, &v.UpdatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	return result, nil
}
