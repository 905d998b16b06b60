package repository

import (
	"context"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO services (id, name, description, price_cents)
		 VALUES ($1, $2, $3, $4)`,
		s.ID(), s.Name(), s.Description(), s.PriceCents())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE services
		 SET name = $2, description = $3, price_cents = $4, updated_at = now()
		 WHERE id = $1`,
		s.ID(), s.Name(), s.Description(), s.PriceCents())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
