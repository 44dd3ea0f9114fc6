package handler

import (
	"log/slog"
	"net/http"

	"github.com/dac-os/auth/internal/delivery/api/response"
	"github.com/dac-os/auth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileRequest represents the request body for creating or rewriting a profile.
type ProfileRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions" validate:"dive,required"`
}

// Create handles profile creation.
func (h *ProfileHandler) Create(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.Create(c.Request().Context(), usecase.ProfileInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(profile))
}

// List handles paging through profiles.
func (h *ProfileHandler) List(c echo.Context) error {
	page := pageParam(c)
	profiles, err := h.profileUC.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page, toProfileResponses(profiles))
}

// Get handles looking a profile up by slug.
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profileUC.Get(c.Request().Context(), c.Param("profile"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Update handles renaming a profile and replacing its permissions.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.Update(c.Request().Context(), c.Param("profile"), usecase.ProfileInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Delete removes a profile and detaches its accounts.
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.profileUC.Delete(c.Request().Context(), c.Param("profile")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
