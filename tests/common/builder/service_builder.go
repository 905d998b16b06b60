//go:build unit || e2e

package builder

import (
	"time"

	domcatalog "studio-booking/internal/domain/catalog"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		ID:          uuid.New(),
		Name:        "Deep Tissue Massage",
		Description: "60 minute full-body deep tissue session",
		PriceCents:  8500,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*domcatalog.Service, error) {
	return domcatalog.NewService(b.Name, b.Description, b.PriceCents)
}

func (b *ServiceBuilder) BuildReconstructed() *domcatalog.Service {
	return domcatalog.ReconstructService(b.ID, b.Name, b.Description, b.PriceCents, b.CreatedAt, b.UpdatedAt)
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
	}
}

func (b *ServiceBuilder) BuildUpdateRequestDTO() reqdto.UpdateServiceRequest {
	return reqdto.UpdateServiceRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
	}
}

// Fluent builder methods
func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithDescription(description string) *ServiceBuilder {
	b.Description = description
	return b
}

func (b *ServiceBuilder) WithPriceCents(priceCents int64) *ServiceBuilder {
	b.PriceCents = priceCents
	return b
}
