package api

import (
	"errors"
	"net/http"

	"takeout-api/internal/domain/flow"
	reqdto "takeout-api/internal/handler/dto/request"
	resdto "takeout-api/internal/handler/dto/response"
	"takeout-api/internal/pkg/config"
	"takeout-api/internal/pkg/cookie"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cookieCfg    config.CookieConfig
	orderCfg     config.OrderConfig
}

func NewCartHandler(cartCommands commands.CartCommands, cookieCfg config.CookieConfig, orderCfg config.OrderConfig) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cookieCfg:    cookieCfg,
		orderCfg:     orderCfg,
	}
}

// sessionID returns the cart session from the cookie, minting a fresh one on
// first touch. The cookie TTL is re-established on every call so the session
// slides with activity.
func (h *CartHandler) sessionID(c *gin.Context) string {
	id := cookie.GetCartSession(c)
	if id == "" {
		id = commands.NewSessionID()
	}
	cookie.SetCartSession(c, h.cookieCfg, id, h.orderCfg.CartSessionTTL)
	return id
}

// @Summary Get cart
// @Description Current wizard state: step, pickup selection and cart lines
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	wizard, err := h.cartCommands.Get(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Set pickup selection
// @Description Choose pickup date and time; changing an existing selection clears the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetPickupRequest true "Pickup selection"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/pickup [put]
func (h *CartHandler) SetPickup(c *gin.Context) {
	var req reqdto.SetPickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	wizard, err := h.cartCommands.SetPickup(c.Request.Context(), h.sessionID(c), req)
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Set item quantity
// @Description Set the cart quantity for an item offered in the selected window; zero removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetQuantityRequest true "Quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/quantity [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	wizard, err := h.cartCommands.SetItemQuantity(c.Request.Context(), h.sessionID(c), req)
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Set item options
// @Description Replace the selected add-on options for a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetOptionsRequest true "Options request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/options [put]
func (h *CartHandler) SetOptions(c *gin.Context) {
	var req reqdto.SetOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	wizard, err := h.cartCommands.SetItemOptions(c.Request.Context(), h.sessionID(c), req)
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Advance the wizard
// @Description Move one step forward, pickup through confirm
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 409 {object} map[string]string
// @Router /cart/next [post]
func (h *CartHandler) Next(c *gin.Context) {
	wizard, err := h.cartCommands.Advance(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Step the wizard back
// @Description Move one step backward keeping entered state
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 409 {object} map[string]string
// @Router /cart/back [post]
func (h *CartHandler) Back(c *gin.Context) {
	wizard, err := h.cartCommands.Back(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(wizard))
}

// @Summary Clear cart
// @Description Drop the cart session entirely
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartCommands.Clear(c.Request.Context(), h.sessionID(c)); err != nil {
		h.respondCartError(c, err)
		return
	}
	cookie.ClearCartSession(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPickup):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pickup date or time",
		})
	case errors.Is(err, queries.ErrWindowNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No pickup window for the selected date and time",
		})
	case errors.Is(err, commands.ErrNoPickupSelected):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Pickup must be selected first",
		})
	case errors.Is(err, commands.ErrItemNotOffered):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item is not offered in the selected window",
		})
	case errors.Is(err, flow.ErrPickupRequired):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Pickup must be selected before proceeding",
		})
	case errors.Is(err, flow.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart must not be empty before proceeding",
		})
	case errors.Is(err, flow.ErrAtFirstStep), errors.Is(err, flow.ErrAtLastStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No further step in that direction",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
