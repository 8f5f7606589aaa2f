package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"takeout-api/internal/domain/user"
	"takeout-api/internal/handler/api"
	"takeout-api/internal/handler/middleware"
	"takeout-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers bundles every API handler the router wires up.
type Handlers struct {
	Auth          *api.AuthHandler
	Availability  *api.AvailabilityHandler
	Cart          *api.CartHandler
	Order         *api.OrderHandler
	AdminCatalog  *api.AdminCatalogHandler
	AdminSchedule *api.AdminScheduleHandler
	AdminOrder    *api.AdminOrderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/dates", Handler: h.Availability.GetDates},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.GetSlots},
				{Method: http.MethodGet, Path: "/windows", Handler: h.Availability.GetWindows},
			})
		}

		// The cart is anonymous: it hangs off the session cookie, so no auth
		// gate until the order is actually placed.
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPut, Path: "/pickup", Handler: h.Cart.SetPickup},
				{Method: http.MethodPut, Path: "/items/quantity", Handler: h.Cart.SetQuantity},
				{Method: http.MethodPut, Path: "/items/options", Handler: h.Cart.SetOptions},
				{Method: http.MethodPost, Path: "/next", Handler: h.Cart.Next},
				{Method: http.MethodPost, Path: "/back", Handler: h.Cart.Back},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMyOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.CancelOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/categories", Handler: h.AdminCatalog.ListCategories},
				{Method: http.MethodPost, Path: "/categories", Handler: h.AdminCatalog.CreateCategory},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.AdminCatalog.UpdateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.AdminCatalog.DeleteCategory},

				{Method: http.MethodGet, Path: "/items", Handler: h.AdminCatalog.ListItems},
				{Method: http.MethodPost, Path: "/items", Handler: h.AdminCatalog.CreateItem},
				{Method: http.MethodPut, Path: "/items/:id", Handler: h.AdminCatalog.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.AdminCatalog.DeleteItem},
				{Method: http.MethodPut, Path: "/items/:id/stock", Handler: h.AdminCatalog.SetStockLevel},

				{Method: http.MethodGet, Path: "/business-hours", Handler: h.AdminSchedule.ListBusinessHours},
				{Method: http.MethodPost, Path: "/business-hours", Handler: h.AdminSchedule.CreateBusinessHour},
				{Method: http.MethodPut, Path: "/business-hours/:id", Handler: h.AdminSchedule.UpdateBusinessHour},
				{Method: http.MethodDelete, Path: "/business-hours/:id", Handler: h.AdminSchedule.DeleteBusinessHour},

				{Method: http.MethodGet, Path: "/special-schedules", Handler: h.AdminSchedule.ListSpecialSchedules},
				{Method: http.MethodPost, Path: "/special-schedules", Handler: h.AdminSchedule.CreateSpecialSchedule},
				{Method: http.MethodDelete, Path: "/special-schedules/:id", Handler: h.AdminSchedule.DeleteSpecialSchedule},

				{Method: http.MethodGet, Path: "/orders", Handler: h.AdminOrder.ListByDate},
				{Method: http.MethodPost, Path: "/orders/:id/complete", Handler: h.AdminOrder.CompleteOrder},
				{Method: http.MethodGet, Path: "/stats/daily", Handler: h.AdminOrder.DailyStats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
