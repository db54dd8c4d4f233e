package handlers

import (
	"net/http"
	"strconv"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event poster HTTP requests
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List handles GET /events. ?all=true includes inactive posters.
func (h *EventHandler) List(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))
	events, err := h.eventService.List(c.Request.Context(), all)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create handles POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "행사 포스터가 삭제되었습니다.")
}
