package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grafit-studio/portfolio-cms/internal/api/metrics"
	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Title            string   `json:"title" validate:"required"`
	Slug             string   `json:"slug" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description"`
	Client           string   `json:"client"`
	Year             *int     `json:"year"`
	Location         string   `json:"location"`
	Area             string   `json:"area"`
	CoverImage       string   `json:"cover_image"`
	Images           []string `json:"images"`
	SortOrder        int      `json:"sort_order"`
	CategoryID       string   `json:"category_id" validate:"required"`
}

type updateProjectRequest struct {
	Title            *string  `json:"title"`
	Slug             *string  `json:"slug"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description"`
	Client           *string  `json:"client"`
	Year             *int     `json:"year"`
	Location         *string  `json:"location"`
	Area             *string  `json:"area"`
	CoverImage       *string  `json:"cover_image"`
	Images           []string `json:"images"`
	SortOrder        *int     `json:"sort_order"`
	CategoryID       *string  `json:"category_id"`
}

// projectQuery parses the shared list-query parameters: page, limit, optional
// category equality filter, optional free-text search.
func projectQuery(c echo.Context) ports.ProjectQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.ProjectQuery{
		CategoryID: c.QueryParam("category_id"),
		Search:     c.QueryParam("search"),
		Pagination: domain.Pagination{Page: page, Limit: limit},
	}
}

// ListPublished handles GET /api/projects (public).
//
// @Summary      List published projects
// @Tags         projects
// @Produce      json
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 10)"
// @Param        category_id  query     string  false  "Filter by category"
// @Param        search       query     string  false  "Free-text search"
// @Success      200  {object}  domain.Paginated[domain.Project]
// @Router       /api/projects [get]
func (h *ProjectHandler) ListPublished(c echo.Context) error {
	result, err := h.service.ListPublished(c.Request().Context(), projectQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetBySlug handles GET /api/projects/slug/:slug (public).
//
// @Summary      Get published project by slug
// @Tags         projects
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/slug/{slug} [get]
func (h *ProjectHandler) GetBySlug(c echo.Context) error {
	project, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ListAll handles GET /api/projects/admin/all (admin/editor).
func (h *ProjectHandler) ListAll(c echo.Context) error {
	result, err := h.service.ListAll(c.Request().Context(), projectQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetByID handles GET /api/projects/admin/:id (admin/editor).
func (h *ProjectHandler) GetByID(c echo.Context) error {
	project, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects/admin (admin/editor).
//
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/projects/admin [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Client:           req.Client,
		Year:             req.Year,
		Location:         req.Location,
		Area:             req.Area,
		CoverImage:       req.CoverImage,
		Images:           req.Images,
		SortOrder:        req.SortOrder,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PATCH /api/projects/admin/:id (admin/editor). Only fields
// present in the payload are applied.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Client:           req.Client,
		Year:             req.Year,
		Location:         req.Location,
		Area:             req.Area,
		CoverImage:       req.CoverImage,
		Images:           req.Images,
		SortOrder:        req.SortOrder,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/admin/:id (admin only).
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Publish handles PATCH /api/projects/admin/:id/publish (admin/editor).
//
// @Summary      Publish project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      422  {object}  map[string]string
// @Router       /api/projects/admin/{id}/publish [patch]
func (h *ProjectHandler) Publish(c echo.Context) error {
	project, err := h.service.Publish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ProjectPublishTotal.WithLabelValues("publish").Inc()
	return c.JSON(http.StatusOK, project)
}

// Unpublish handles PATCH /api/projects/admin/:id/unpublish (admin/editor).
func (h *ProjectHandler) Unpublish(c echo.Context) error {
	project, err := h.service.Unpublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ProjectPublishTotal.WithLabelValues("unpublish").Inc()
	return c.JSON(http.StatusOK, project)
}
