package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses, 422 excepted: validation failures render the bare
// {field: [messages]} map instead.
type errorResponse struct {
	Error string `json:"error"`
}

// apartmentParams are the writable listing fields, wrapped on the wire as
// {"apartment": {...}}. listing_price is free-form text, not a number.
// user_id is only honored for agent callers.
type apartmentParams struct {
	Street       string `json:"street"        validate:"required"`
	City         string `json:"city"          validate:"required"`
	State        string `json:"state"         validate:"required"`
	ListingPrice string `json:"listing_price" validate:"required"`
	AvatarBase   string `json:"avatar_base"`
	UserID       string `json:"user_id"`
}

type apartmentRequest struct {
	Apartment apartmentParams `json:"apartment"`
}

// apartmentResponse is the transport view of a listing. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type apartmentResponse struct {
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
