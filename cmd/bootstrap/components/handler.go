package components

import (
	"bookstore-api/internal/handler"
	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTransactionHandler,
		api.NewBookHandler,
		api.NewGenreHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
