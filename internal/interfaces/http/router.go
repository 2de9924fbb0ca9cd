// Package http wires the HTTP surface: handlers, middleware, and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "netbill/internal/application/auth/usecases"
	catalogUC "netbill/internal/application/catalog/usecases"
	subscriptionUC "netbill/internal/application/subscription/usecases"
	"netbill/internal/infrastructure/auth"
	"netbill/internal/infrastructure/config"
	"netbill/internal/infrastructure/email"
	"netbill/internal/infrastructure/idempotency"
	"netbill/internal/infrastructure/repository"
	"netbill/internal/interfaces/http/handlers"
	"netbill/internal/interfaces/http/middleware"
	"netbill/internal/interfaces/http/routes"
	"netbill/internal/shared/db"
	"netbill/internal/shared/logger"
)

// Router assembles the application graph and exposes the gin engine.
type Router struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	cfg         *config.Config
	logger      logger.Interface
}

func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger logger.Interface) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine:      engine,
		db:          database,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      logger,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes builds repositories, use cases, handlers, and middleware, and
// registers every route group.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Repositories
	subscriptionRepo := repository.NewSubscriptionRepository(r.db, r.logger)
	renewalRepo := repository.NewRenewalRepository(r.db, r.logger)
	paymentRepo := repository.NewPaymentRepository(r.db, r.logger)
	packageRepo := repository.NewPackageRepository(r.db, r.logger)
	userRepo := repository.NewUserRepository(r.db, r.logger)

	txManager := db.NewTransactionManager(r.db)

	// Auth services
	jwtService := auth.NewJWTService(r.cfg.Auth.JWT.Secret, r.cfg.Auth.JWT.AccessExpMinutes)
	passwordHasher := auth.NewPasswordHasher(r.cfg.Auth.Password.BcryptCost)

	// Email
	var sender email.Sender
	if r.cfg.Email.Enabled {
		sender = email.NewSMTPSender(&r.cfg.Email)
	} else {
		sender = email.NewNoopSender()
	}
	receiptNotifier := email.NewReceiptNotifier(userRepo, sender, r.logger)

	// Subscription lifecycle use cases
	subscribeUC := subscriptionUC.NewSubscribeUseCase(subscriptionRepo, paymentRepo, packageRepo, userRepo, txManager, r.logger)
	renewUC := subscriptionUC.NewRenewUseCase(subscriptionRepo, renewalRepo, packageRepo, txManager, r.logger)
	renewUC.SetReceiptNotifier(receiptNotifier)
	upgradeUC := subscriptionUC.NewUpgradeUseCase(subscriptionRepo, paymentRepo, packageRepo, txManager, r.logger)
	reverseUC := subscriptionUC.NewReverseRenewalUseCase(subscriptionRepo, renewalRepo, txManager, r.logger)
	updateUC := subscriptionUC.NewUpdateSubscriptionUseCase(subscriptionRepo, paymentRepo, packageRepo, txManager, r.logger)
	deleteUC := subscriptionUC.NewDeleteSubscriptionUseCase(subscriptionRepo, r.logger)
	listUC := subscriptionUC.NewListSubscriptionsUseCase(subscriptionRepo, paymentRepo, r.logger)
	historyUC := subscriptionUC.NewRenewalHistoryUseCase(renewalRepo, r.logger)
	deleteRenewalUC := subscriptionUC.NewDeleteRenewalUseCase(renewalRepo, r.logger)
	deletePaymentUC := subscriptionUC.NewDeletePaymentUseCase(paymentRepo, r.logger)
	statsUC := subscriptionUC.NewRenewalStatsUseCase(renewalRepo, r.logger)

	// Catalog use cases
	createPackageUC := catalogUC.NewCreatePackageUseCase(packageRepo, r.logger)
	updatePackageUC := catalogUC.NewUpdatePackageUseCase(packageRepo, r.logger)
	deletePackageUC := catalogUC.NewDeletePackageUseCase(packageRepo, r.logger)
	listPackagesUC := catalogUC.NewListPackagesUseCase(packageRepo, r.logger)
	getPackageUC := catalogUC.NewGetPackageUseCase(packageRepo, r.logger)

	// Auth use cases
	loginUC := authUC.NewLoginUseCase(userRepo, passwordHasher, jwtService, r.logger)

	// Handlers
	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscribeUC, renewUC, upgradeUC, reverseUC, updateUC, deleteUC,
		listUC, historyUC, deleteRenewalUC, deletePaymentUC, statsUC,
		r.logger,
	)
	packageHandler := handlers.NewPackageHandler(
		createPackageUC, updatePackageUC, deletePackageUC, listPackagesUC, getPackageUC,
		r.logger,
	)
	authHandler := handlers.NewAuthHandler(loginUC, r.logger)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, r.logger)

	var idempotencyMiddleware *middleware.IdempotencyMiddleware
	if r.cfg.Idempotency.Enabled && r.redisClient != nil {
		store := idempotency.NewStore(r.redisClient, time.Duration(r.cfg.Idempotency.TTLMinutes)*time.Minute)
		idempotencyMiddleware = middleware.NewIdempotencyMiddleware(store, r.logger)
	}

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:   subscriptionHandler,
		AuthMiddleware:        authMiddleware,
		IdempotencyMiddleware: idempotencyMiddleware,
	})
	routes.SetupPackageRoutes(r.engine, &routes.PackageRouteConfig{
		PackageHandler: packageHandler,
		AuthMiddleware: authMiddleware,
	})
}
