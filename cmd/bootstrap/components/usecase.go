package components

import (
	"takeout-api/internal/domain/order"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/usecase"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clock clock.Clock) *order.Services {
		return &order.Services{
			Clock: clock,
		}
	},
	order.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewScheduleQueries,
		queries.NewAvailabilityQueries,
		queries.NewOrderQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewCatalogCommands,
		commands.NewScheduleCommands,
		commands.NewOrderUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
