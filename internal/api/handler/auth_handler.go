package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkart/commerce-api/internal/api/middleware"
	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string          `json:"token,omitempty"`
	User  *domain.Account `json:"user,omitempty"`
}

type ackResponse struct {
	Message string `json:"message"`
}

// Signup registers a new account and returns a token for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.Account})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.Account})
}

// Me returns the account behind the presented bearer token.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	account, err := h.authService.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: account})
}

// Logout acknowledges a logout. Sessions are stateless, so there is nothing
// server-side to invalidate; the endpoint never fails.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  ackResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_ = h.authService.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, ackResponse{Message: "logged out"})
}
