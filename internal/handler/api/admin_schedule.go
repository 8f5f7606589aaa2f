package api

import (
	"errors"
	"net/http"

	reqdto "takeout-api/internal/handler/dto/request"
	resdto "takeout-api/internal/handler/dto/response"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewAdminScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *AdminScheduleHandler {
	return &AdminScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary List business hours
// @Description The weekly recurring hour blocks, inactive ones included
// @Tags admin-schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BusinessHourResponse
// @Router /admin/business-hours [get]
func (h *AdminScheduleHandler) ListBusinessHours(c *gin.Context) {
	views, err := h.scheduleQueries.ListBusinessHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BusinessHourResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBusinessHourView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create business hour
// @Tags admin-schedule
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CreateBusinessHourRequest true "Business hour"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/business-hours [post]
func (h *AdminScheduleHandler) CreateBusinessHour(c *gin.Context) {
	var req reqdto.CreateBusinessHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.scheduleCommands.CreateBusinessHour(c.Request.Context(), req)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update business hour
// @Tags admin-schedule
// @Accept json
// @Security BearerAuth
// @Param id path string true "Business hour ID"
// @Param request body reqdto.UpdateBusinessHourRequest true "Business hour"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/business-hours/{id} [put]
func (h *AdminScheduleHandler) UpdateBusinessHour(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business hour ID format",
		})
		return
	}

	var req reqdto.UpdateBusinessHourRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleCommands.UpdateBusinessHour(c.Request.Context(), id, req); err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete business hour
// @Tags admin-schedule
// @Security BearerAuth
// @Param id path string true "Business hour ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/business-hours/{id} [delete]
func (h *AdminScheduleHandler) DeleteBusinessHour(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business hour ID format",
		})
		return
	}

	if err := h.scheduleCommands.DeleteBusinessHour(c.Request.Context(), id); err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List special schedules
// @Description Per-date overrides inside the given range
// @Tags admin-schedule
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.SpecialScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /admin/special-schedules [get]
func (h *AdminScheduleHandler) ListSpecialSchedules(c *gin.Context) {
	from, err := wallclock.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := wallclock.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.scheduleQueries.ListSpecialSchedules(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SpecialScheduleResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSpecialScheduleView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create special schedule
// @Description Override one date: closed entirely or open with explicit blocks
// @Tags admin-schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpecialScheduleRequest true "Special schedule"
// @Success 201 {object} resdto.SpecialScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/special-schedules [post]
func (h *AdminScheduleHandler) CreateSpecialSchedule(c *gin.Context) {
	var req reqdto.CreateSpecialScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.scheduleCommands.CreateSpecialSchedule(c.Request.Context(), req)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	view, err := h.scheduleQueries.GetSpecialSchedule(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSpecialScheduleView(view))
}

// @Summary Delete special schedule
// @Tags admin-schedule
// @Security BearerAuth
// @Param id path string true "Special schedule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/special-schedules/{id} [delete]
func (h *AdminScheduleHandler) DeleteSpecialSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid special schedule ID format",
		})
		return
	}

	if err := h.scheduleCommands.DeleteSpecialSchedule(c.Request.Context(), id); err != nil {
		h.respondScheduleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminScheduleHandler) respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBusinessHourNotFound), errors.Is(err, commands.ErrSpecialScheduleNotFoundW):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Schedule entry not found",
		})
	case errors.Is(err, commands.ErrDuplicateSpecialSchedule):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A special schedule already exists for that date",
		})
	case errors.Is(err, commands.ErrInvalidScheduleInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
