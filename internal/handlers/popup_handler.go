package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/topi314/tint"
)

// PopupHandler handles popup HTTP requests. The visitor's dismissed popup
// lives in the cookie session.
type PopupHandler struct {
	popupService services.PopupService
	cookies      *session.CookieStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewPopupHandler creates a new PopupHandler
func NewPopupHandler(popupService services.PopupService, cookies *session.CookieStore, logger *slog.Logger) *PopupHandler {
	return &PopupHandler{
		popupService: popupService,
		cookies:      cookies,
		logger:       logger,
		now:          time.Now,
	}
}

// List handles GET /popups
func (h *PopupHandler) List(c *gin.Context) {
	popups, err := h.popupService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, popups)
}

// Active handles GET /popups/active. A popup the visitor closed in the
// last 12 hours is skipped. The body is null when nothing is shown.
func (h *PopupHandler) Active(c *gin.Context) {
	now := h.now()
	var dismissed []string
	if store, err := h.cookies.Open(c.Request); err == nil {
		if id, ok := session.DismissedPopup(store, now); ok {
			dismissed = append(dismissed, id)
		}
	}

	popup, err := h.popupService.Active(c.Request.Context(), now, dismissed...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, popup)
}

// Dismiss handles POST /popups/:id/dismiss
func (h *PopupHandler) Dismiss(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	store, err := h.cookies.Open(c.Request)
	if err != nil {
		respondError(c, err)
		return
	}
	until := session.DismissPopup(store, id.Hex(), h.now())
	if err := store.Save(c.Request, c.Writer); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to save popup dismissal", tint.Err(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPopupDismissed, "until": until})
}

// Get handles GET /popups/:id
func (h *PopupHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	popup, err := h.popupService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, popup)
}

// Create handles POST /popups
func (h *PopupHandler) Create(c *gin.Context) {
	var req models.PopupRequest
	if !bindJSON(c, &req) {
		return
	}
	popup, err := h.popupService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, popup)
}

// Update handles PUT /popups/:id
func (h *PopupHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.PopupRequest
	if !bindJSON(c, &req) {
		return
	}
	popup, err := h.popupService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, popup)
}

// Delete handles DELETE /popups/:id
func (h *PopupHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.popupService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "팝업이 삭제되었습니다.")
}
