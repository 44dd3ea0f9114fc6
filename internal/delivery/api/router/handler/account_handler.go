// Package handler contains the HTTP handlers for the directory API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dac-os/auth/internal/delivery/api/response"
	deliverycontext "github.com/dac-os/auth/internal/delivery/context"
	"github.com/dac-os/auth/internal/domain/entity"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// CreateAccountRequest represents the request body for registering an account.
type CreateAccountRequest struct {
	Password  string           `json:"password" validate:"required"`
	Profile   string           `json:"profile"`
	Name      string           `json:"name"`
	Gender    string           `json:"gender"`
	Email     string           `json:"email" validate:"omitempty,email"`
	Phones    []string         `json:"phones" validate:"dive,required,numeric"`
	Addresses []entity.Address `json:"addresses" validate:"dive"`
	BirthDate *time.Time       `json:"birthDate"`
}

// UpdateAccountRequest represents the request body for rewriting the caller's account.
type UpdateAccountRequest struct {
	Password  string           `json:"password"`
	Name      string           `json:"name"`
	Gender    string           `json:"gender"`
	Email     string           `json:"email" validate:"omitempty,email"`
	Phones    []string         `json:"phones" validate:"dive,required,numeric"`
	Addresses []entity.Address `json:"addresses" validate:"dive"`
	BirthDate *time.Time       `json:"birthDate"`
}

// CreateAccountResponse carries the registry number assigned to a new account.
type CreateAccountResponse struct {
	AcademicRegistry string `json:"academicRegistry"`
}

// LoginResponse is the bare body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Create handles account registration.
func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountUC.Create(c.Request().Context(), usecase.CreateAccountInput{
		Password:    req.Password,
		ProfileSlug: req.Profile,
		Name:        req.Name,
		Gender:      req.Gender,
		Email:       req.Email,
		Phones:      req.Phones,
		Addresses:   req.Addresses,
		BirthDate:   req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, CreateAccountResponse{AcademicRegistry: account.Registry})
}

// List handles paging through accounts.
func (h *AccountHandler) List(c echo.Context) error {
	page := pageParam(c)
	accounts, err := h.accountUC.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page, toAccountResponses(accounts))
}

// Get handles looking an account up by registry number.
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.accountUC.GetByRegistry(c.Request().Context(), c.Param("registry"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// GetMe returns the session account.
func (h *AccountHandler) GetMe(c echo.Context) error {
	account := deliverycontext.GetSessionAccount(c)
	if account == nil {
		return response.Forbidden(c, "SESSION_REQUIRED", "A valid session token is required")
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// UpdateMe rewrites the session account's personal data.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	account := deliverycontext.GetSessionAccount(c)
	if account == nil {
		return response.Forbidden(c, "SESSION_REQUIRED", "A valid session token is required")
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.accountUC.UpdateMe(c.Request().Context(), account, usecase.UpdateAccountInput{
		Password:  req.Password,
		Name:      req.Name,
		Gender:    req.Gender,
		Email:     req.Email,
		Phones:    req.Phones,
		Addresses: req.Addresses,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(updated))
}

// Login exchanges HTTP Basic credentials (registry:password) for a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	registry, password, ok := c.Request().BasicAuth()
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="directory"`)

		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Basic credentials are required")
	}

	token, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{Registry: registry, Password: password})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, LoginResponse{Token: token})
}
