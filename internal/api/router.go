package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/commercekit/commerce-api/internal/api/handler"
	"github.com/commercekit/commerce-api/internal/api/middleware"
	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/service"
	"github.com/commercekit/commerce-api/internal/infrastructure/config"
	"github.com/commercekit/commerce-api/internal/infrastructure/db/postgres"
	"github.com/commercekit/commerce-api/internal/infrastructure/db/redis"
	"github.com/commercekit/commerce-api/internal/infrastructure/http/handlers"
	"github.com/commercekit/commerce-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	idem := redis.NewIdempotencyChecker(rdb)

	authService := service.NewAuthService(userRepo, issuer, cfg.BcryptCost, log)
	accountService := service.NewAccountService(userRepo, cfg.BcryptCost, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, idem, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)

	authRequired := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public auth routes ---
	user := e.Group("/api/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	// --- Account modification (authenticated) ---
	modify := user.Group("/modify", authRequired)
	modify.PUT("/email", accountHandler.UpdateEmail)
	modify.PUT("/password", accountHandler.UpdatePassword)
	modify.PUT("/name", accountHandler.UpdateName)
	modify.DELETE("/delete", accountHandler.Delete)

	// --- Catalog: reads for any authenticated user, writes admin only ---
	products := e.Group("/api/products", authRequired)
	products.GET("/get-all", productHandler.GetAll)
	products.GET("/get-one", productHandler.GetOne)
	products.POST("/new", productHandler.Create, adminOnly)
	products.PUT("/change", productHandler.Update, adminOnly)
	products.DELETE("/delete", productHandler.Delete, adminOnly)

	// --- Cart (authenticated) ---
	cart := e.Group("/api/cart", authRequired)
	cart.POST("/new", cartHandler.Add)
	cart.GET("/get-all", cartHandler.GetAll)
	cart.GET("/get-one", cartHandler.GetOne)
	cart.PUT("/change", cartHandler.Update)
	cart.DELETE("/delete-one", cartHandler.DeleteOne)
	cart.DELETE("/delete-all", cartHandler.DeleteAll)

	// --- Orders (authenticated) ---
	orders := e.Group("/api/orders", authRequired)
	orders.POST("/new", orderHandler.Place)
	orders.GET("/get-all", orderHandler.GetAll)
	orders.PUT("/change", orderHandler.Update)
	orders.DELETE("/delete-one", orderHandler.DeleteOne)
	orders.DELETE("/delete-all", orderHandler.DeleteAll)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
