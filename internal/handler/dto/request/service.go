package request

import (
	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

// UpdateServiceRequest carries an optional body ID so clients that echo
// the entity back get a mismatch check against the path parameter.
type UpdateServiceRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	PriceCents  int64      `json:"price_cents" binding:"min=0"`
}
