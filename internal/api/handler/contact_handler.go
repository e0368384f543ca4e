package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grafit-studio/portfolio-cms/internal/api/metrics"
	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Create handles POST /api/contacts (public). Notifications fire
// asynchronously; their outcome never affects this response.
//
// @Summary      Submit contact form
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Contact details"
// @Success      201   {object}  domain.ContactRequest
// @Failure      400   {object}  map[string]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.Create(c.Request().Context(), ports.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactsReceivedTotal.Inc()
	return c.JSON(http.StatusCreated, contact)
}

// List handles GET /api/contacts/admin (admin/editor). Supports an is_read
// equality filter plus the shared page/limit parameters.
func (h *ContactHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := ports.ContactListFilter{
		Pagination: domain.Pagination{Page: page, Limit: limit},
	}
	if raw := c.QueryParam("is_read"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "is_read must be a boolean")
		}
		filter.IsRead = &isRead
	}

	result, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetByID handles GET /api/contacts/admin/:id (admin/editor).
func (h *ContactHandler) GetByID(c echo.Context) error {
	contact, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// MarkAsRead handles PATCH /api/contacts/admin/:id/read (admin/editor).
// Idempotent.
func (h *ContactHandler) MarkAsRead(c echo.Context) error {
	contact, err := h.service.MarkAsRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// MarkAsUnread handles PATCH /api/contacts/admin/:id/unread (admin/editor).
// Idempotent.
func (h *ContactHandler) MarkAsUnread(c echo.Context) error {
	contact, err := h.service.MarkAsUnread(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/admin/:id (admin only).
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
