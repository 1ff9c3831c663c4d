package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/estately/apartments-api/internal/api/metrics"
	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

// ApartmentService implements the listing use cases. Every mutation is run
// through domain.Authorize with the caller passed in explicitly.
type ApartmentService struct {
	repo   ports.ApartmentRepository
	logger zerolog.Logger
}

func NewApartmentService(repo ports.ApartmentRepository, logger zerolog.Logger) *ApartmentService {
	return &ApartmentService{repo: repo, logger: logger}
}

func (s *ApartmentService) Create(ctx context.Context, caller domain.Caller, input ports.ApartmentInput) (*domain.Apartment, error) {
	if !domain.Authorize(caller, domain.ActionCreate, nil) {
		s.denied(caller, domain.ActionCreate)
		return nil, domain.ErrForbidden
	}

	// A client always owns what it creates; an agent may list on behalf of
	// any user, falling back to itself when no owner is given.
	ownerID := caller.ID
	if caller.HasRole(domain.RoleAgent) && input.UserID != "" {
		ownerID = input.UserID
	}

	now := time.Now().UTC()
	apartment := &domain.Apartment{
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		ListingPrice: input.ListingPrice,
		AvatarBase:   input.AvatarBase,
		UserID:       ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, apartment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create apartment")
		return nil, err
	}

	metrics.ApartmentsCreatedTotal.Inc()
	s.logger.Info().Str("apartment_id", created.ID).Str("user_id", created.UserID).Msg("apartment created")
	return created, nil
}

func (s *ApartmentService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.Apartment, error) {
	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Authorize(caller, domain.ActionRead, apartment) {
		s.denied(caller, domain.ActionRead)
		return nil, domain.ErrForbidden
	}
	return apartment, nil
}

// List returns every listing for every caller. Reads are unrestricted in
// this system; only mutation is ownership-scoped.
func (s *ApartmentService) List(ctx context.Context, caller domain.Caller) ([]*domain.Apartment, error) {
	if !domain.Authorize(caller, domain.ActionRead, nil) {
		s.denied(caller, domain.ActionRead)
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *ApartmentService) Update(ctx context.Context, caller domain.Caller, id string, input ports.ApartmentInput) (*domain.Apartment, error) {
	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Authorize(caller, domain.ActionUpdate, apartment) {
		s.denied(caller, domain.ActionUpdate)
		return nil, domain.ErrForbidden
	}

	apartment.Street = input.Street
	apartment.City = input.City
	apartment.State = input.State
	apartment.ListingPrice = input.ListingPrice
	if input.AvatarBase != "" {
		apartment.AvatarBase = input.AvatarBase
	}
	apartment.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, apartment)
	if err != nil {
		s.logger.Error().Err(err).Str("apartment_id", id).Msg("failed to update apartment")
		return nil, err
	}
	return updated, nil
}

func (s *ApartmentService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.Authorize(caller, domain.ActionDelete, apartment) {
		s.denied(caller, domain.ActionDelete)
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("apartment_id", id).Msg("failed to delete apartment")
		return err
	}
	s.logger.Info().Str("apartment_id", id).Msg("apartment deleted")
	return nil
}

func (s *ApartmentService) denied(caller domain.Caller, action domain.Action) {
	role := domain.RolePublic
	if len(caller.Roles) > 0 {
		role = caller.Roles[0]
	}
	metrics.AuthzDenialsTotal.WithLabelValues(role, string(action)).Inc()
}
