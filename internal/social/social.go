package social

import (
	"context"
	"fmt"

	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	socialhttp "snapfeed/internal/social/adapter/http"
	"snapfeed/internal/social/adapter/persistence"
	"snapfeed/internal/social/adapter/persistence/mongodb"
	"snapfeed/internal/social/adapter/storage"
	"snapfeed/internal/social/config"
	"snapfeed/internal/social/domain/repository"
	"snapfeed/internal/social/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// SocialModule wires the social data layer: profiles, the follow graph,
// posts, saves, comments and the activity stream.
type SocialModule struct {
	profiles   *usecase.ProfileUsecase
	graph      *usecase.GraphUsecase
	posts      *usecase.PostUsecase
	comments   *usecase.CommentUsecase
	dispatcher *usecase.ActivityDispatcher
	activity   repository.ActivityStore
	events     *eventbus.EventBus
	handler    *socialhttp.SocialHTTPHandler
	wsHandler  *socialhttp.WebSocketHandler
	config     *config.Config
}

// NewSocialModule creates the social module on top of the shared Mongo
// database and Redis client.
func NewSocialModule(
	ctx context.Context,
	db *mongo.Database,
	redisClient *redis.Client,
	cfg *config.Config,
	log logger.Logger,
) (*SocialModule, error) {
	profileRepo, err := mongodb.NewMongoProfileRepository(db, cfg.UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	postRepo, err := mongodb.NewMongoPostRepository(db, cfg.PostsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}
	saveRepo, err := mongodb.NewMongoSavedPostRepository(db, cfg.SavesCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved post repository: %w", err)
	}
	commentRepo, err := mongodb.NewMongoCommentRepository(db, cfg.CommentsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	fileStore, err := storage.NewS3FileStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	activityStore := persistence.NewRedisActivityStore(redisClient, log)

	events := eventbus.NewEventBus(log)

	profiles := usecase.NewProfileUsecase(profileRepo, fileStore, log)
	graph := usecase.NewGraphUsecase(profileRepo, events, log)
	posts := usecase.NewPostUsecase(postRepo, saveRepo, fileStore, events, log)
	comments := usecase.NewCommentUsecase(commentRepo, profileRepo, postRepo, events, log)

	dispatcher := usecase.NewActivityDispatcher(events, activityStore, log)

	handler := socialhttp.NewSocialHTTPHandler(
		profiles, graph, posts, comments, activityStore, cfg, log)
	wsHandler := socialhttp.NewWebSocketHandler(activityStore, log)

	return &SocialModule{
		profiles:   profiles,
		graph:      graph,
		posts:      posts,
		comments:   comments,
		dispatcher: dispatcher,
		activity:   activityStore,
		events:     events,
		handler:    handler,
		wsHandler:  wsHandler,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers the social HTTP routes behind the given
// middleware chain.
func (sm *SocialModule) RegisterRoutes(router fiber.Router) {
	sm.handler.SetupRoutes(router)
}

// RegisterWebSocketRoutes registers the activity stream WebSocket endpoint.
// The identity resolver runs before the connection upgrade.
func (sm *SocialModule) RegisterWebSocketRoutes(router fiber.Router, userIDFromCtx func(*fiber.Ctx) (string, error)) {
	sm.wsHandler.RegisterRoutes(router, userIDFromCtx)
}

// GetProfileUsecase exposes the profile usecase. The auth module consumes
// it as its profile directory.
func (sm *SocialModule) GetProfileUsecase() *usecase.ProfileUsecase {
	return sm.profiles
}

// GetEventBus exposes the module's event bus.
func (sm *SocialModule) GetEventBus() *eventbus.EventBus {
	return sm.events
}

// Stop performs cleanup when the module is shut down.
func (sm *SocialModule) Stop() error {
	return nil
}
