package domain

import (
	"errors"
	"time"
)

var ErrApartmentNotFound = errors.New("apartment not found")
var ErrForbidden = errors.New("access forbidden")

// Apartment is a listing. ListingPrice is free-form text ("$600K",
// "$1 million"); it is displayed, never parsed. AvatarBase holds an optional
// base64-encoded listing image as uploaded by the frontend.
type Apartment struct {
	ID           string    `json:"id"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ListingPrice string    `json:"listing_price"`
	AvatarBase   string    `json:"avatar_base,omitempty"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnedBy reports whether the listing belongs to the given user id.
// Ownership is fixed at creation and never reassigned.
func (a *Apartment) OwnedBy(userID string) bool {
	return userID != "" && a.UserID == userID
}
