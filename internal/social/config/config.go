package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the social module.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"snapfeed"`

	// Collection names
	UsersCollection    string `env:"USERS_COLLECTION" envDefault:"users"`
	PostsCollection    string `env:"POSTS_COLLECTION" envDefault:"posts"`
	SavesCollection    string `env:"SAVES_COLLECTION" envDefault:"saves"`
	CommentsCollection string `env:"COMMENTS_COLLECTION" envDefault:"comments"`

	// File storage (S3)
	S3Bucket        string `env:"S3_BUCKET" envDefault:"snapfeed-media"`
	S3Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint      string `env:"S3_ENDPOINT" envDefault:""` // non-empty for MinIO / localstack
	S3AccessKey     string `env:"S3_ACCESS_KEY" envDefault:""`
	S3SecretKey     string `env:"S3_SECRET_KEY" envDefault:""`
	MediaPublicBase string `env:"MEDIA_PUBLIC_BASE" envDefault:""`

	// Activity stream (Redis)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Query defaults
	RecentPostsLimit  int `env:"RECENT_POSTS_LIMIT" envDefault:"20"`
	InfinitePageLimit int `env:"INFINITE_PAGE_LIMIT" envDefault:"9"`
	ProfileListLimit  int `env:"PROFILE_LIST_LIMIT" envDefault:"10"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load social configuration from environment: " + err.Error())
	}

	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if cfg.S3Bucket == "" {
		return nil, errors.New("s3_bucket is required")
	}

	return cfg, nil
}
