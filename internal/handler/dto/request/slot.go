package request

import (
	"strings"
	"time"

	"studio-booking/internal/domain/slot"
)

type CreateSlotRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationMin int       `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateSlotRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationMin int       `json:"duration_minutes" binding:"required,gt=0"`
}

type ClaimSlotRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Comment     string `json:"comment"`
}

func (r ClaimSlotRequest) ToDomain() slot.Contact {
	return slot.Contact{
		ClientName:  strings.TrimSpace(r.ClientName),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Comment:     strings.TrimSpace(r.Comment),
	}
}
