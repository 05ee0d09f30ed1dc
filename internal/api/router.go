package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkart/commerce-api/internal/api/handler"
	"github.com/shopkart/commerce-api/internal/api/middleware"
	"github.com/shopkart/commerce-api/internal/core/service"
	"github.com/shopkart/commerce-api/internal/infrastructure/config"
	mongodb "github.com/shopkart/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopkart/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder receives auth activity events; it may be nil in tests.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	recorder service.ActivityRecorder,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Identity subsystem ---
	accountRepo := mongodb.NewAccountRepository(db)
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	codec := service.NewTokenCodec(cfg.Auth.JWTSecret)
	resolver := service.NewIdentityResolver(codec, accountRepo, recorder)
	authService := service.NewAuthService(accountRepo, hasher, codec, resolver, recorder, cfg.Auth.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	authRequired := middleware.Auth(resolver)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Catalog (public) ---
	productRepo := mongodb.NewProductRepository(db)
	cache := redisdb.NewCatalogCache(rdb, cfg.Redis.CacheTTL, log)
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, cache))

	e.GET("/products", productHandler.List)
	e.GET("/products/search", productHandler.Search)
	e.GET("/products/category/:category", productHandler.ByCategory)
	e.GET("/products/brand/:brand", productHandler.ByBrand)
	e.GET("/products/:id", productHandler.Get)

	// --- Account-scoped resources (auth required) ---
	wishlistHandler := handler.NewWishlistHandler(
		service.NewWishlistService(mongodb.NewWishlistRepository(db), productRepo))
	wishlist := e.Group("/wishlist", authRequired)
	wishlist.GET("", wishlistHandler.List)
	wishlist.POST("/:productId", wishlistHandler.Add)
	wishlist.DELETE("/:productId", wishlistHandler.Remove)

	addressHandler := handler.NewAddressHandler(
		service.NewAddressService(mongodb.NewAddressRepository(db)))
	addresses := e.Group("/addresses", authRequired)
	addresses.GET("", addressHandler.List)
	addresses.POST("", addressHandler.Create)
	addresses.PUT("/:id", addressHandler.Update)
	addresses.DELETE("/:id", addressHandler.Delete)

	orderHandler := handler.NewOrderHandler(
		service.NewOrderService(mongodb.NewOrderRepository(db)))
	orders := e.Group("/orders", authRequired)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
