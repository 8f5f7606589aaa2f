package components

import (
	"takeout-api/internal/handler"
	"takeout-api/internal/handler/api"
	"takeout-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminScheduleHandler,
		api.NewAdminOrderHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	cart *api.CartHandler,
	order *api.OrderHandler,
	adminCatalog *api.AdminCatalogHandler,
	adminSchedule *api.AdminScheduleHandler,
	adminOrder *api.AdminOrderHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Availability:  availability,
		Cart:          cart,
		Order:         order,
		AdminCatalog:  adminCatalog,
		AdminSchedule: adminSchedule,
		AdminOrder:    adminOrder,
	}
}
