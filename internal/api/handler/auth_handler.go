package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	AccountType string `json:"account_type" validate:"required,oneof=professional employer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type inviteRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=user admin"`
}

type acceptInviteRequest struct {
	Token       string `json:"token"        validate:"required"`
	Password    string `json:"password"     validate:"required,min=8"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=professional employer"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type deleteAccountRequest struct {
	Reason string `json:"reason"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Signup creates a new account (POST /v1/auth/signup).
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		AccountType: req.AccountType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates an account and returns a JWT (POST /v1/auth/login).
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Invite creates an inactive account and emails an invite token
// (POST /v1/auth/invite, admin only).
func (h *AuthHandler) Invite(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Invite(c.Request().Context(), actor, ports.InviteInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// AcceptInvite completes an invited registration (POST /v1/auth/invite/accept).
func (h *AuthHandler) AcceptInvite(c echo.Context) error {
	var req acceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.AcceptInvite(c.Request().Context(), ports.AcceptInviteInput{
		Token:       req.Token,
		Password:    req.Password,
		AccountType: req.AccountType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// VerifyEmail consumes the verification link mailed at signup
// (GET /v1/auth/verify/:token).
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	if err := h.authService.VerifyEmail(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "email verified"})
}

// ForgotPassword starts a password reset (POST /v1/auth/password/forgot).
// Always 202: the response never reveals whether the email exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

// ResetPassword consumes a reset token (POST /v1/auth/password/reset).
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password updated"})
}

// Me returns the authenticated account (GET /v1/auth/me).
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actor)
}

// DeleteAccount soft-deletes the actor's own account (DELETE /v1/auth/me).
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), actor, req.Reason); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
