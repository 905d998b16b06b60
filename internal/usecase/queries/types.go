package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// SlotView is the full projection of a slot row, including claimant
// contact data. Only admin (or the claimant) flows may expose the
// contact fields; Redact strips them for everyone else.
type SlotView struct {
	ID          uuid.UUID  `json:"id"`
	StartTime   time.Time  `json:"start_time"`
	DurationMin int        `json:"duration_minutes"`
	Available   bool       `json:"available"`
	ClientName  string     `json:"client_name"`
	PhoneNumber string     `json:"phone_number"`
	Comment     string     `json:"comment"`
	ClaimedBy   *uuid.UUID `json:"claimed_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Redact returns a copy without claim details.
func (v SlotView) Redact() SlotView {
	out := v
	out.ClientName = ""
	out.PhoneNumber = ""
	out.Comment = ""
	out.ClaimedBy = nil
	return out
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
