package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// ListActive handles GET /api/categories (public).
//
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) ListActive(c echo.Context) error {
	categories, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// GetBySlug handles GET /api/categories/slug/:slug (public).
//
// @Summary      Get active category by slug
// @Tags         categories
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(c echo.Context) error {
	category, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// ListAll handles GET /api/categories/admin/all (admin).
//
// @Summary      List all categories including inactive
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /api/categories/admin/all [get]
func (h *CategoryHandler) ListAll(c echo.Context) error {
	categories, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /api/categories/admin/:id (admin).
func (h *CategoryHandler) GetByID(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /api/categories/admin (admin).
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      409   {object}  map[string]string
// @Router       /api/categories/admin [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update handles PATCH /api/categories/admin/:id (admin). Only fields present
// in the payload are applied.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/categories/admin/:id (admin).
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
