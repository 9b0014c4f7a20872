package router

import (
	"time"

	"orderdesk/internal/config"
	"orderdesk/internal/handler"
	"orderdesk/internal/middleware"
	"orderdesk/internal/repository"
	"orderdesk/internal/service"
	"orderdesk/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	signingKey, err := cfg.SigningKey()
	if err != nil {
		return nil, err
	}
	verifyKey, err := cfg.VerifyKey()
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	accountSvc := service.NewAccountService(userRepo)
	authSvc := service.NewAuthService(userRepo, signingKey)
	clientSvc := service.NewClientService(clientRepo)
	productSvc := service.NewProductService(productRepo, rdb)
	orderSvc := service.NewOrderService(orderRepo, productRepo, clientRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	accountsH := handler.NewAccountsHandler(accountSvc)
	sessionsH := handler.NewSessionsHandler(authSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/accounts", accountsH.Register)
	r.POST("/sessions", middleware.LoginRateLimiter(), sessionsH.Authenticate)

	// Price check — no auth required
	r.GET("/price/:id", productsH.PriceCheck)

	// Protected routes
	authed := r.Group("/", middleware.JWTAuth(verifyKey))
	{
		authed.POST("/clients", clientsH.Create)
		authed.GET("/clients", clientsH.List)

		authed.POST("/products", productsH.Create)
		authed.GET("/products", productsH.List)

		authed.POST("/orders", ordersH.Create)
		authed.GET("/orders/:id", ordersH.Get)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
