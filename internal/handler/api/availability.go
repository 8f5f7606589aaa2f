package api

import (
	"errors"
	"net/http"

	resdto "takeout-api/internal/handler/dto/response"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List selectable pickup dates
// @Description All dates inside the booking horizon that have at least one open pickup window
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.SelectableDatesResponse
// @Router /availability/dates [get]
func (h *AvailabilityHandler) GetDates(c *gin.Context) {
	dates, err := h.availabilityQueries.SelectableDates(c.Request.Context())
	if err != nil {
		h.respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SelectableDatesResponse{Dates: dates})
}

// @Summary List pickup time slots for a date
// @Description Selectable pickup times per window on the given date
// @Tags availability
// @Produce json
// @Param date query string true "Pickup date (YYYY-MM-DD)"
// @Success 200 {array} resdto.WindowSlotsResponse
// @Failure 400 {object} map[string]string
// @Router /availability/slots [get]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date, err := wallclock.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availabilityQueries.SlotsForDate(c.Request.Context(), date)
	if err != nil {
		h.respondAvailabilityError(c, err)
		return
	}

	response := make([]resdto.WindowSlotsResponse, len(slots))
	for i, s := range slots {
		response[i] = resdto.FromWindowSlotsView(s)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List pickup windows with their menus
// @Description Every open pickup window in the booking horizon, including the orderable catalog per window
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.WindowResponse
// @Router /availability/windows [get]
func (h *AvailabilityHandler) GetWindows(c *gin.Context) {
	windows, err := h.availabilityQueries.Windows(c.Request.Context())
	if err != nil {
		h.respondAvailabilityError(c, err)
		return
	}

	response := make([]resdto.WindowResponse, len(windows))
	for i, w := range windows {
		response[i] = resdto.FromWindow(w)
	}
	c.JSON(http.StatusOK, response)
}

func (h *AvailabilityHandler) respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidDateRange), errors.Is(err, queries.ErrRangeTooWide):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
