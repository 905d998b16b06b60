package response

import (
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// SlotResponse mirrors the view it is built from: when the query layer
// redacted the claim details, the contact fields stay empty and are
// omitted from the payload.
type SlotResponse struct {
	ID          uuid.UUID  `json:"id"`
	StartTime   time.Time  `json:"startTime"`
	DurationMin int        `json:"durationMinutes"`
	Available   bool       `json:"available"`
	ClientName  string     `json:"clientName,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	ClaimedBy   *uuid.UUID `json:"claimedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID,
		StartTime:   v.StartTime,
		DurationMin: v.DurationMin,
		Available:   v.Available,
		ClientName:  v.ClientName,
		PhoneNumber: v.PhoneNumber,
		Comment:     v.Comment,
		ClaimedBy:   v.ClaimedBy,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSlotView(v))
	}
	return out
}
