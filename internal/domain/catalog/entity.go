package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Service is an offered session type: name, description, price.
// Independent of scheduling; no relationship to slots.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	priceCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name, description string, priceCents int64) (*Service, error) {
	if err := validate(name, description, priceCents); err != nil {
		return nil, err
	}
	return &Service{
		id:          uuid.New(),
		name:        name,
		description: description,
		priceCents:  priceCents,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		priceCents:  priceCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Update(name, description string, priceCents int64) error {
	if err := validate(name, description, priceCents); err != nil {
		return err
	}
	s.name = name
	s.description = description
	s.priceCents = priceCents
	return nil
}

func validate(name, description string, priceCents int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
