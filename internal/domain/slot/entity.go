package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrAlreadyClaimed  = errors.New("slot is already claimed")
	ErrEmptyClientName = errors.New("client name is required")
)

// Slot is a single bookable time period. It starts out available and
// makes exactly one transition to claimed; there is no release.
// Past start times are allowed on purpose (backfilled records).
type Slot struct {
	id          uuid.UUID
	startTime   time.Time
	durationMin int
	available   bool
	contact     Contact
	claimedBy   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSlot(startTime time.Time, durationMin int) (*Slot, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Slot{
		id:          uuid.New(),
		startTime:   startTime,
		durationMin: durationMin,
		available:   true,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	startTime time.Time,
	durationMin int,
	available bool,
	contact Contact,
	claimedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		startTime:   startTime,
		durationMin: durationMin,
		available:   available,
		contact:     contact,
		claimedBy:   claimedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Reschedule changes the time of the slot without touching availability
// or claim data. Admin edits after a claim keep the claimant attached.
func (s *Slot) Reschedule(startTime time.Time, durationMin int) error {
	if durationMin <= 0 {
		return ErrInvalidDuration
	}
	s.startTime = startTime
	s.durationMin = durationMin
	return nil
}

// Claim flips the slot to unavailable and binds the claimant. One-way.
func (s *Slot) Claim(contact Contact, claimedBy uuid.UUID) error {
	if !s.available {
		return ErrAlreadyClaimed
	}
	if err := contact.Validate(); err != nil {
		return err
	}
	s.available = false
	s.contact = contact
	id := claimedBy
	s.claimedBy = &id
	return nil
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) StartTime() time.Time  { return s.startTime }
func (s *Slot) DurationMin() int      { return s.durationMin }
func (s *Slot) Available() bool       { return s.available }
func (s *Slot) Contact() Contact      { return s.contact }
func (s *Slot) ClaimedBy() *uuid.UUID { return s.claimedBy }
func (s *Slot) CreatedAt() time.Time  { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Slot) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}

func (s *Slot) EndTime() time.Time {
	return s.startTime.Add(s.Duration())
}

// Contact holds the claimant-supplied details, present only after a claim.
type Contact struct {
	ClientName  string
	PhoneNumber string
	Comment     string
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.ClientName) == "" {
		return ErrEmptyClientName
	}
	return nil
}
