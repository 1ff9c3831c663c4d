package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

// AuthHandler serves registration, token minting and profile lookup.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// tokenRequest matches the Knock-style login envelope: {"auth": {...}}.
type tokenRequest struct {
	Auth struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"auth"`
}

type tokenResponse struct {
	JWT string `json:"jwt"`
}

// createUserRequest matches the registration envelope: {"user": {...}}.
type createUserRequest struct {
	User userParams `json:"user"`
}

type userParams struct {
	Name                 string `json:"name"                  validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

type createUserResponse struct {
	User *domain.User `json:"user"`
	JWT  string       `json:"jwt"`
}

// CreateToken mints a JWT for valid credentials.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Login credentials"
// @Success      201   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /user_token [post]
func (h *AuthHandler) CreateToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Auth.Email, req.Auth.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tokenResponse{JWT: token})
}

// CreateUser registers an account and signs it in immediately.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  createUserResponse
// @Failure      422   {object}  map[string][]string
// @Router       /users [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req.User); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:                 req.User.Name,
		Email:                req.User.Email,
		Password:             req.User.Password,
		PasswordConfirmation: req.User.PasswordConfirmation,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{User: user, JWT: token})
}

// GetUser returns a user by id. Requires a valid bearer token.
//
// @Summary      Fetch a user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	user, err := h.authService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
