package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// SermonHandler handles sermon HTTP requests
type SermonHandler struct {
	sermonService services.SermonService
}

// NewSermonHandler creates a new SermonHandler
func NewSermonHandler(sermonService services.SermonService) *SermonHandler {
	return &SermonHandler{sermonService: sermonService}
}

// List handles GET /sermons
func (h *SermonHandler) List(c *gin.Context) {
	sermons, err := h.sermonService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sermons)
}

// Get handles GET /sermons/:id
func (h *SermonHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sermon, err := h.sermonService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// LatestByType handles GET /sermons/type/:type. The body is null when no
// sermon of the type exists.
func (h *SermonHandler) LatestByType(c *gin.Context) {
	sermon, err := h.sermonService.LatestByType(c.Request.Context(), models.SermonType(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// Create handles POST /sermons
func (h *SermonHandler) Create(c *gin.Context) {
	var req models.SermonRequest
	if !bindJSON(c, &req) {
		return
	}
	sermon, err := h.sermonService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sermon)
}

// Update handles PUT /sermons/:id
func (h *SermonHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.SermonRequest
	if !bindJSON(c, &req) {
		return
	}
	sermon, err := h.sermonService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// Delete handles DELETE /sermons/:id
func (h *SermonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.sermonService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "설교가 삭제되었습니다.")
}
