package ports

import (
	"context"

	"github.com/estately/apartments-api/internal/core/domain"
)

// ApartmentInput carries the writable fields of a listing. UserID is only
// honored for agent callers; client callers always own what they create.
type ApartmentInput struct {
	Street       string
	City         string
	State        string
	ListingPrice string
	AvatarBase   string
	UserID       string
}

// ApartmentService defines the listing use cases. Every operation takes the
// caller explicitly and runs it through the access policy before touching
// the repository.
type ApartmentService interface {
	Create(ctx context.Context, caller domain.Caller, input ApartmentInput) (*domain.Apartment, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*domain.Apartment, error)
	List(ctx context.Context, caller domain.Caller) ([]*domain.Apartment, error)
	Update(ctx context.Context, caller domain.Caller, id string, input ApartmentInput) (*domain.Apartment, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
