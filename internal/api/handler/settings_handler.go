package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

// SettingsHandler exposes the contact-settings singleton: public read,
// staff-only update.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// Get handles GET /api/settings (public).
//
// @Summary      Get contact settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.ContactSettings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PATCH /api/settings (staff only). Only fields present
// in the payload are applied; empty strings clear a field.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.service.Update(c.Request().Context(), ports.UpdateContactSettingsInput{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
