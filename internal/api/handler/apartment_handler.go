package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/apartments-api/internal/core/ports"
)

// ApartmentHandler handles HTTP requests for listing operations. Handler
// names follow the resource conventions the API was published with
// (index/show/create/update/destroy).
type ApartmentHandler struct {
	service ports.ApartmentService
}

func NewApartmentHandler(service ports.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{service: service}
}

// Index handles GET /apartments. Every caller, including anonymous, sees
// every listing.
//
// @Summary      List apartments
// @Tags         apartments
// @Produce      json
// @Success      200  {array}  apartmentResponse
// @Router       /apartments [get]
func (h *ApartmentHandler) Index(c echo.Context) error {
	apartments, err := h.service.List(c.Request().Context(), callerFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApartmentListResponse(apartments))
}

// Show handles GET /apartments/:id.
//
// @Summary      Get an apartment
// @Tags         apartments
// @Produce      json
// @Param        id   path      string  true  "Apartment id"
// @Success      200  {object}  apartmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /apartments/{id} [get]
func (h *ApartmentHandler) Show(c echo.Context) error {
	apartment, err := h.service.Get(c.Request().Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApartmentResponse(apartment))
}

// Create handles POST /apartments.
//
// @Summary      Create an apartment listing
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      apartmentRequest  true  "Listing details"
// @Success      201   {object}  apartmentResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  map[string][]string
// @Router       /apartments [post]
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req apartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req.Apartment); err != nil {
		return err
	}

	apartment, err := h.service.Create(c.Request().Context(), callerFrom(c), toApartmentInput(req.Apartment))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toApartmentResponse(apartment))
}

// Update handles PATCH/PUT /apartments/:id.
//
// @Summary      Update an apartment listing
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Apartment id"
// @Param        body  body      apartmentRequest  true  "Listing details"
// @Success      200   {object}  apartmentResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  map[string][]string
// @Router       /apartments/{id} [patch]
func (h *ApartmentHandler) Update(c echo.Context) error {
	var req apartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req.Apartment); err != nil {
		return err
	}

	apartment, err := h.service.Update(c.Request().Context(), callerFrom(c), c.Param("id"), toApartmentInput(req.Apartment))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApartmentResponse(apartment))
}

// Destroy handles DELETE /apartments/:id.
//
// @Summary      Delete an apartment listing
// @Tags         apartments
// @Security     BearerAuth
// @Param        id  path  string  true  "Apartment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /apartments/{id} [delete]
func (h *ApartmentHandler) Destroy(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), callerFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
