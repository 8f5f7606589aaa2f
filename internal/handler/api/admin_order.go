package api

import (
	"errors"
	"net/http"

	resdto "takeout-api/internal/handler/dto/response"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminOrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewAdminOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary List orders for a pickup date
// @Description The kitchen sheet: every order for one date in pickup-time order
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param date query string true "Pickup date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Router /admin/orders [get]
func (h *AdminOrderHandler) ListByDate(c *gin.Context) {
	date, err := wallclock.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.orderQueries.ListByPickupDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOrderView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Daily sales stats
// @Description Per-date order count, item count and sales total over a range; canceled orders excluded
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.DailyStatsResponse
// @Failure 400 {object} map[string]string
// @Router /admin/stats/daily [get]
func (h *AdminOrderHandler) DailyStats(c *gin.Context) {
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

	views, err := h.orderQueries.DailyStats(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.DailyStatsResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromDailyStatsView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Complete order
// @Description Mark a confirmed order as handed over
// @Tags admin-orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/complete [post]
func (h *AdminOrderHandler) CompleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	if err := h.orderCommands.CompleteOrder(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFoundWrite):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrOrderNotCompletable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot be completed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
