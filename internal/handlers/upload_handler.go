package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// UploadHandler hands out signed upload URLs for images and bulletins
type UploadHandler struct {
	uploadService services.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Sign handles POST /uploads/sign
func (h *UploadHandler) Sign(c *gin.Context) {
	var req models.UploadRequest
	if !bindJSON(c, &req) {
		return
	}
	ticket, err := h.uploadService.Sign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
