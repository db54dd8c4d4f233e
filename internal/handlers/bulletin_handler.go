package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// BulletinHandler handles bulletin HTTP requests
type BulletinHandler struct {
	bulletinService services.BulletinService
}

// NewBulletinHandler creates a new BulletinHandler
func NewBulletinHandler(bulletinService services.BulletinService) *BulletinHandler {
	return &BulletinHandler{bulletinService: bulletinService}
}

// List handles GET /bulletins
func (h *BulletinHandler) List(c *gin.Context) {
	bulletins, err := h.bulletinService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bulletins)
}

// Latest handles GET /bulletins/latest
func (h *BulletinHandler) Latest(c *gin.Context) {
	bulletin, err := h.bulletinService.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bulletin)
}

// Get handles GET /bulletins/:id
func (h *BulletinHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bulletin, err := h.bulletinService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bulletin)
}

// Create handles POST /bulletins
func (h *BulletinHandler) Create(c *gin.Context) {
	var req models.BulletinRequest
	if !bindJSON(c, &req) {
		return
	}
	bulletin, err := h.bulletinService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bulletin)
}

// Update handles PUT /bulletins/:id
func (h *BulletinHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.BulletinRequest
	if !bindJSON(c, &req) {
		return
	}
	bulletin, err := h.bulletinService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bulletin)
}

// View handles POST /bulletins/:id/view
func (h *BulletinHandler) View(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	views, err := h.bulletinService.IncrementViews(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

// Delete handles DELETE /bulletins/:id
func (h *BulletinHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.bulletinService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "주보가 삭제되었습니다.")
}
