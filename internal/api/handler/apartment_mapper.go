package handler

import (
	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

// --- Request → Service input ---

func toApartmentInput(p apartmentParams) ports.ApartmentInput {
	return ports.ApartmentInput{
		Street:       p.Street,
		City:         p.City,
		State:        p.State,
		ListingPrice: p.ListingPrice,
		AvatarBase:   p.AvatarBase,
		UserID:       p.UserID,
	}
}

// --- Domain → HTTP response ---

func toApartmentResponse(a *domain.Apartment) apartmentResponse {
	return apartmentResponse{
		ID:           a.ID,
		Street:       a.Street,
		City:         a.City,
		State:        a.State,
		ListingPrice: a.ListingPrice,
		AvatarBase:   a.AvatarBase,
		UserID:       a.UserID,
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	}
}

func toApartmentListResponse(apartments []*domain.Apartment) []apartmentResponse {
	out := make([]apartmentResponse, 0, len(apartments))
	for _, a := range apartments {
		out = append(out, toApartmentResponse(a))
	}
	return out
}
