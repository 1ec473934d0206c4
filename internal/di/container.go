package di

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"snapfeed/internal/auth"
	authconfig "snapfeed/internal/auth/config"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/social"
	socialconfig "snapfeed/internal/social/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds the application modules and shared infrastructure with
// proper lifecycle management.
type Container struct {
	mu        sync.RWMutex
	services  map[reflect.Type]interface{}
	factories map[reflect.Type]func() (interface{}, error)
	// Module instances
	AuthModule   *auth.AuthModule
	SocialModule *social.SocialModule
	// Shared infrastructure
	MongoDB *mongo.Database
	Redis   *redis.Client
	// Configuration
	AuthConfig   *authconfig.Config
	SocialConfig *socialconfig.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container.
func NewContainer() *Container {
	return &Container{
		services:  make(map[reflect.Type]interface{}),
		factories: make(map[reflect.Type]func() (interface{}, error)),
	}
}

// InitializeSocial initializes the social module. It must run before
// InitializeAuth: the auth module consumes the profile usecase as its
// profile directory.
func (c *Container) InitializeSocial(
	ctx context.Context,
	mongoDB *mongo.Database,
	redisClient *redis.Client,
	cfg *socialconfig.Config,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.Redis = redisClient
	c.SocialConfig = cfg

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	socialModule, err := social.NewSocialModule(ctx, mongoDB, redisClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create social module: %w", err)
	}

	c.SocialModule = socialModule
	return nil
}

// InitializeAuth initializes the authentication module on top of the social
// module's profile directory.
func (c *Container) InitializeAuth(cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.SocialModule == nil {
		return fmt.Errorf("social module must be initialized before auth module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before auth module")
	}

	c.AuthConfig = cfg

	authModule, err := auth.NewAuthModule(c.MongoDB, cfg, c.SocialModule.GetProfileUsecase())
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// Register registers a service instance.
func (c *Container) Register(service interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	serviceType := reflect.TypeOf(service)
	if serviceType.Kind() == reflect.Ptr {
		serviceType = serviceType.Elem()
	}

	c.services[serviceType] = service
	return nil
}

// Resolve resolves a service by type.
func (c *Container) Resolve(serviceType reflect.Type) (interface{}, error) {
	c.mu.RLock()

	if service, exists := c.services[serviceType]; exists {
		c.mu.RUnlock()
		return service, nil
	}

	if factory, exists := c.factories[serviceType]; exists {
		c.mu.RUnlock()

		service, err := factory()
		if err != nil {
			return nil, fmt.Errorf("failed to create service: %w", err)
		}

		c.mu.Lock()
		c.services[serviceType] = service
		c.mu.Unlock()

		return service, nil
	}

	c.mu.RUnlock()
	return nil, fmt.Errorf("service of type %v not registered", serviceType)
}

// GetAuthModule returns the auth module instance.
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetSocialModule returns the social module instance.
func (c *Container) GetSocialModule() *social.SocialModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SocialModule
}

// HealthCheck verifies the shared infrastructure is reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}

	return nil
}

// Cleanup shuts down modules in reverse order of initialization.
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop auth module: %w", err))
		}
		c.AuthModule = nil
	}

	if c.SocialModule != nil {
		if err := c.SocialModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop social module: %w", err))
		}
		c.SocialModule = nil
	}

	for _, service := range c.services {
		if cleaner, ok := service.(interface{ Cleanup(context.Context) error }); ok {
			if err := cleaner.Cleanup(ctx); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup service: %w", err))
			}
		}
	}

	c.services = make(map[reflect.Type]interface{})
	c.factories = make(map[reflect.Type]func() (interface{}, error))

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}
	return nil
}

// Close gracefully shuts down all services in the container with a timeout.
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return c.Cleanup(ctx)
}
