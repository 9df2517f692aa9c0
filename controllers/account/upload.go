package account

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
)

// Upload proxies a profile image to the catalog's upload endpoint and
// returns the stored file URL. Only jpeg and png are accepted, checked
// before anything goes over the wire.
func (h *Handlers) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No file selected"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read the file"))
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	name := uuid.NewString() + filepath.Ext(file.Filename)

	fileURL, err := h.Client.UploadImage(c.Request.Context(), name, contentType, src)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded", gin.H{"fileUrl": fileURL}))
	case errors.Is(err, catalog.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please upload a .jpg or .png file"))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, catalog.UserMessage(err, "Failed to upload image")))
	}
}
