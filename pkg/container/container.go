package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"greenmarket-backend/internal/config"
	infraCache "greenmarket-backend/internal/infrastructure/cache"
	"greenmarket-backend/internal/infrastructure/database"
	"greenmarket-backend/pkg/cache"
	"greenmarket-backend/pkg/jwt"

	productHandler "greenmarket-backend/internal/domains/product/handler"
	productRepo "greenmarket-backend/internal/domains/product/repository"
	productService "greenmarket-backend/internal/domains/product/service"
	"greenmarket-backend/internal/domains/user"
	userHandler "greenmarket-backend/internal/domains/user/handler"
	userRepo "greenmarket-backend/internal/domains/user/repository"
	userService "greenmarket-backend/internal/domains/user/service"
	verificationHandler "greenmarket-backend/internal/domains/verification/handler"
	verificationRepo "greenmarket-backend/internal/domains/verification/repository"
	verificationService "greenmarket-backend/internal/domains/verification/service"
)

// Container holds the application's dependency graph. Everything in
// here is a singleton built once at startup.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo         user.Repository
	ProductRepo      productRepo.ProductRepository
	VerificationRepo verificationRepo.VerificationRepository

	// Services
	UserService         user.Service
	ProductService      productService.ServiceInterface
	VerificationService verificationService.ServiceInterface

	// Handlers
	UserHandler         *userHandler.UserHandler
	ProductHandler      *productHandler.ProductHandler
	VerificationHandler *verificationHandler.VerificationHandler
}

// NewContainer builds the dependency graph in order:
// config → infrastructure → repositories → services → handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// Step 2: PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Step 3: Redis
	// A Redis outage degrades caching but must not block startup.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, continuing without warm cache")
	}
	c.Cache = redisCache

	// Step 4: JWT manager
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// Step 5: Repositories
	c.UserRepo = userRepo.NewPostgresUserRepository(c.DB.Pool)
	c.ProductRepo = productRepo.NewPostgresProductRepository(c.DB.Pool)
	c.VerificationRepo = verificationRepo.NewPostgresVerificationRepository(c.DB.Pool)

	// Step 6: Services
	// The product and user services double as the verification
	// workflow's gateways for product lookup and score propagation.
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.Cache)
	c.VerificationService = verificationService.NewVerificationService(
		c.VerificationRepo,
		c.ProductService,
		c.UserService,
	)

	// Step 7: Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.VerificationHandler = verificationHandler.NewVerificationHandler(c.VerificationService)

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
}
