//go:build unit || e2e

package builder

import (
	"time"

	domslot "studio-booking/internal/domain/slot"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID          uuid.UUID
	StartTime   time.Time
	DurationMin int
	Available   bool
	ClientName  string
	PhoneNumber string
	Comment     string
	ClaimedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now()
	return &SlotBuilder{
		ID:          uuid.New(),
		StartTime:   now.Add(24 * time.Hour).Truncate(time.Minute),
		DurationMin: 60,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.NewSlot(b.StartTime, b.DurationMin)
}

func (b *SlotBuilder) BuildReconstructed() *domslot.Slot {
	return domslot.ReconstructSlot(
		b.ID,
		b.StartTime,
		b.DurationMin,
		b.Available,
		domslot.Contact{
			ClientName:  b.ClientName,
			PhoneNumber: b.PhoneNumber,
			Comment:     b.Comment,
		},
		b.ClaimedBy,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          b.ID,
		StartTime:   b.StartTime,
		DurationMin: b.DurationMin,
		Available:   b.Available,
		ClientName:  b.ClientName,
		PhoneNumber: b.PhoneNumber,
		Comment:     b.Comment,
		ClaimedBy:   b.ClaimedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		StartTime:   b.StartTime,
		DurationMin: b.DurationMin,
	}
}

func (b *SlotBuilder) BuildClaimRequestDTO() reqdto.ClaimSlotRequest {
	return reqdto.ClaimSlotRequest{
		ClientName:  b.ClientName,
		PhoneNumber: b.PhoneNumber,
		Comment:     b.Comment,
	}
}

// Fluent builder methods
func (b *SlotBuilder) WithStartTime(t time.Time) *SlotBuilder {
	b.StartTime = t
	return b
}

func (b *SlotBuilder) WithDurationMin(minutes int) *SlotBuilder {
	b.DurationMin = minutes
	return b
}

func (b *SlotBuilder) AsClaimed(claimedBy uuid.UUID) *SlotBuilder {
	b.Available = false
	b.ClaimedBy = &claimedBy
	b.ClientName = "Hanako Yamada"
	b.PhoneNumber = "090-1234-5678"
	b.Comment = "First visit"
	return b
}
