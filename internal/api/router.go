package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/annelsopenclassrooms/Projet-12-Backend/docs"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/api/handler"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/api/middleware"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/auth"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/service"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/infrastructure/config"
	mongodb "github.com/annelsopenclassrooms/Projet-12-Backend/internal/infrastructure/db/mongo"
	redisdb "github.com/annelsopenclassrooms/Projet-12-Backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Persistence ---
	staffRepo := mongodb.NewStaffRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	uow := mongodb.NewUnitOfWork(client)
	denylist := redisdb.NewDenylist(rdb, cfg.TokenTTL)

	// --- Auth core ---
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewSessionResolver(codec, staffRepo, denylist, log)
	authenticated := middleware.Authenticate(resolver, log)

	// --- Services ---
	authService := service.NewAuthService(staffRepo, codec, denylist, log)
	staffService := service.NewStaffService(staffRepo, denylist, uow, log)
	clientService := service.NewClientService(clientRepo, staffRepo, uow, log)
	contractService := service.NewContractService(contractRepo, clientRepo, staffRepo, uow, log)
	eventService := service.NewEventService(eventRepo, contractRepo, clientRepo, staffRepo, uow, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	staffHandler := handler.NewStaffHandler(staffService)
	clientHandler := handler.NewClientHandler(clientService)
	contractHandler := handler.NewContractHandler(contractService)
	eventHandler := handler.NewEventHandler(eventService)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Protected routes ---
	v1 := e.Group("/v1", authenticated)
	v1.POST("/auth/revoke", authHandler.Revoke)

	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.POST("/clients", clientHandler.Create)
	v1.PATCH("/clients/:id", clientHandler.Update)

	v1.GET("/contracts", contractHandler.List)
	v1.GET("/contracts/:id", contractHandler.Get)
	v1.POST("/contracts", contractHandler.Create)
	v1.PATCH("/contracts/:id", contractHandler.Update)

	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id", eventHandler.Get)
	v1.POST("/events", eventHandler.Create)
	v1.PATCH("/events/:id", eventHandler.Update)

	v1.GET("/staff", staffHandler.List)
	v1.GET("/staff/:id", staffHandler.Get)
	v1.POST("/staff", staffHandler.Create)
	v1.PATCH("/staff/:id", staffHandler.Update)
	v1.DELETE("/staff/:id", staffHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
