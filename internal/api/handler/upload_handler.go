package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/api/metrics"
	"github.com/propchase/rental-api/internal/core/ports"
)

const maxUploadFiles = 50

// UploadHandler stores photos in the image store and returns their
// opaque refs. The rest of the API only ever passes these refs through.
type UploadHandler struct {
	media ports.MediaService
}

func NewUploadHandler(media ports.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

type importLinkRequest struct {
	Link string `json:"link" validate:"required,url"`
}

// Upload handles POST /v1/uploads: multipart form with one or more
// "photos" files.
//
// @Summary      Upload photos
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photos  formData  file  true  "Photo files"
// @Success      200     {array}   string
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /v1/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, err := ctxSubject(c); err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no photos provided")
	}
	if len(files) > maxUploadFiles {
		return echo.NewHTTPError(http.StatusBadRequest, "too many files")
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
		}

		ref, err := h.media.StoreUpload(c.Request().Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			return err
		}

		metrics.PhotosStoredTotal.WithLabelValues("upload").Inc()
		refs = append(refs, ref)
	}

	return c.JSON(http.StatusOK, refs)
}

// ImportLink handles POST /v1/uploads/link: the server fetches the image
// at the given URL and stores it.
//
// @Summary      Import a photo by link
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      importLinkRequest  true  "Image URL"
// @Success      200   {string}  string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/uploads/link [post]
func (h *UploadHandler) ImportLink(c echo.Context) error {
	if _, err := ctxSubject(c); err != nil {
		return err
	}

	var req importLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ref, err := h.media.ImportFromURL(c.Request().Context(), req.Link)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unable to import photo from link")
	}

	metrics.PhotosStoredTotal.WithLabelValues("link").Inc()
	return c.JSON(http.StatusOK, ref)
}
