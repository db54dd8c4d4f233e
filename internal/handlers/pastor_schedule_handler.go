package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// PastorScheduleHandler handles pastor schedule HTTP requests
type PastorScheduleHandler struct {
	scheduleService services.PastorScheduleService
	loc             *time.Location
	now             func() time.Time
}

// NewPastorScheduleHandler creates a new PastorScheduleHandler. The
// calendar's current month and today are taken in loc.
func NewPastorScheduleHandler(scheduleService services.PastorScheduleService, loc *time.Location) *PastorScheduleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &PastorScheduleHandler{scheduleService: scheduleService, loc: loc, now: time.Now}
}

// List handles GET /pastor-schedules?year=&month=
func (h *PastorScheduleHandler) List(c *gin.Context) {
	year, month, ok := h.period(c, false)
	if !ok {
		return
	}
	schedules, err := h.scheduleService.List(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// Calendar handles GET /pastor-schedules/calendar?year=&month=. Without a
// period it shows the current month.
func (h *PastorScheduleHandler) Calendar(c *gin.Context) {
	year, month, ok := h.period(c, true)
	if !ok {
		return
	}
	grid, err := h.scheduleService.Calendar(c.Request.Context(), year, month, h.now().In(h.loc))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// period reads ?year= and ?month=. Both must be given together. With
// current set, a missing period means this month.
func (h *PastorScheduleHandler) period(c *gin.Context, current bool) (int, time.Month, bool) {
	rawYear, rawMonth := c.Query("year"), c.Query("month")
	if rawYear == "" && rawMonth == "" {
		if !current {
			return 0, 0, true
		}
		now := h.now().In(h.loc)
		return now.Year(), now.Month(), true
	}

	year, errY := strconv.Atoi(rawYear)
	month, errM := strconv.Atoi(rawMonth)
	if errY != nil || errM != nil || year < 1 || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidPeriod})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// Get handles GET /pastor-schedules/:id
func (h *PastorScheduleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	schedule, err := h.scheduleService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Create handles POST /pastor-schedules
func (h *PastorScheduleHandler) Create(c *gin.Context) {
	var req models.PastorScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := h.scheduleService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// Update handles PUT /pastor-schedules/:id
func (h *PastorScheduleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.PastorScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := h.scheduleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Delete handles DELETE /pastor-schedules/:id
func (h *PastorScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "목회일정이 삭제되었습니다.")
}
