package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	transactionHandler *api.TransactionHandler,
	bookHandler *api.BookHandler,
	genreHandler *api.GenreHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, transactionHandler, bookHandler, genreHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	transactionHandler *api.TransactionHandler,
	bookHandler *api.BookHandler,
	genreHandler *api.GenreHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodPost, Path: "", Handler: transactionHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: transactionHandler.List},
				{Method: http.MethodGet, Path: "/statistics", Handler: transactionHandler.Statistics},
				{Method: http.MethodGet, Path: "/:id", Handler: transactionHandler.Get},
			})
		}

		books := apiGroup.Group("/books")
		books.Use(authMiddleware.RequireAuth())
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: bookHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: bookHandler.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: bookHandler.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.Delete, Mw: adminOnly},
			})
		}

		genres := apiGroup.Group("/genres")
		genres.Use(authMiddleware.RequireAuth())
		{
			addRoutes(genres, []route{
				{Method: http.MethodGet, Path: "", Handler: genreHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: genreHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: genreHandler.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: genreHandler.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: genreHandler.Delete, Mw: adminOnly},
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
