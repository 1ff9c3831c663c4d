package ports

import (
	"context"

	"github.com/estately/apartments-api/internal/core/domain"
)

// ApartmentRepository defines persistence operations for listings.
// List is unscoped: every role may read every listing, so visibility
// filtering happens nowhere — only mutation is ownership-checked, and that
// check lives in the service layer against the fetched record.
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	FindByID(ctx context.Context, id string) (*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
	Update(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	Delete(ctx context.Context, id string) error
}
