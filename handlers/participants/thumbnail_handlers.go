package participants

import (
	"net/http"
	"path/filepath"

	"api/metrics"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage is the thumbnail object store, wired in main. Left nil when object
// storage is not configured for the deployment.
var Storage services.StorageService

// UploadThumbnail stores an uploaded image and returns its public URL
// @Summary Upload thumbnail
// @Description Upload a thumbnail image to the thumbnails bucket under a randomized filename
// @Tags Participants
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} ThumbnailResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /participants/thumbnail [post]
// @Security Cookie
func UploadThumbnail(c *gin.Context) {
	if Storage == nil {
		response.Error(c, http.StatusInternalServerError, ErrStorageNotConfigured)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unreadable file")
		return
	}
	defer file.Close()

	// Random name keeping the original extension; the name space makes
	// collisions negligible and no retry is attempted
	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := Storage.Upload(c.Request.Context(), filename, contentType, file)
	if err != nil {
		metrics.ThumbnailUploads.WithLabelValues("error").Inc()
		response.Error(c, http.StatusInternalServerError, ErrFailedToUploadImage+": "+err.Error())
		return
	}
	metrics.ThumbnailUploads.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, ThumbnailResponse{URL: url})
}
