package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grafit-studio/portfolio-cms/internal/api/metrics"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
	"github.com/grafit-studio/portfolio-cms/internal/core/service"
)

// UploadHandler handles media uploads (admin/editor).
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type removeFileRequest struct {
	FilePath string `json:"file_path" validate:"required"`
}

// UploadImage handles POST /api/upload/image (multipart field "file",
// optional "folder").
//
// @Summary      Upload single image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "Image file (JPEG/PNG/WebP, max 10MB)"
// @Param        folder  formData  string  false  "Destination folder (projects or pages)"
// @Success      201     {object}  ports.UploadResult
// @Failure      400     {object}  map[string]string
// @Router       /api/upload/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return service.ErrNoFile
	}

	folder := c.FormValue("folder")
	result, err := h.service.UploadImage(c.Request().Context(), uploadInput(fh, folder))
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.UploadsTotal.WithLabelValues(folderLabel(folder)).Inc()
	return c.JSON(http.StatusCreated, result)
}

// UploadImages handles POST /api/upload/images (multipart field "files", max 10).
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return service.ErrNoFile
	}

	folder := c.FormValue("folder")
	files := form.File["files"]
	ins := make([]ports.UploadInput, 0, len(files))
	for _, fh := range files {
		ins = append(ins, uploadInput(fh, folder))
	}

	results, err := h.service.UploadImages(c.Request().Context(), ins)
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.UploadsTotal.WithLabelValues(folderLabel(folder)).Add(float64(len(results)))
	return c.JSON(http.StatusCreated, results)
}

// RemoveFile handles DELETE /api/upload.
func (h *UploadHandler) RemoveFile(c echo.Context) error {
	var req removeFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.RemoveFile(c.Request().Context(), req.FilePath); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func uploadInput(fh *multipart.FileHeader, folder string) ports.UploadInput {
	return ports.UploadInput{
		Filename: fh.Filename,
		Size:     fh.Size,
		Folder:   folder,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func folderLabel(folder string) string {
	if folder == "" {
		return "projects"
	}
	return folder
}

func countRejection(err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedMediaType):
		metrics.UploadsRejectedTotal.WithLabelValues("mime_type").Inc()
	case errors.Is(err, service.ErrFileTooLarge):
		metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
	case errors.Is(err, service.ErrNoFile),
		errors.Is(err, service.ErrTooManyFiles),
		errors.Is(err, service.ErrUnknownFolder):
		metrics.UploadsRejectedTotal.WithLabelValues("bad_request").Inc()
	}
}
