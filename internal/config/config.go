// Package config loads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"cablequote/internal/infrastructure/database"
	pkgredis "cablequote/pkg/redis"

	"github.com/kelseyhightower/envconfig"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

var (
	ErrInvalidStorageBackend = errors.New("STORAGE_BACKEND must be memory or dynamodb")
	ErrInvalidSessionBackend = errors.New("SESSION_BACKEND must be memory or redis")
	ErrMissingRedisURL       = errors.New("REDIS_URL is required when SESSION_BACKEND=redis")
	ErrInvalidSessionTTL     = errors.New("SESSION_TTL must be positive")
)

type Config struct {
	Env      Environment `envconfig:"APP_ENV" default:"development"`
	HTTPPort int         `envconfig:"HTTP_PORT" default:"8080"`

	StorageBackend string        `envconfig:"STORAGE_BACKEND" default:"memory"`
	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"8h"`
	ExportDir      string        `envconfig:"EXPORT_DIR" default:"./exports"`

	// DynamoDB
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	DynamoDBSeed       bool   `envconfig:"DYNAMODB_SEED" default:"false"`
	ProductsTable      string `envconfig:"PRODUCTS_TABLE" default:"cablequote_products"`
	CustomersTable     string `envconfig:"CUSTOMERS_TABLE" default:"cablequote_customers"`
	ApprovalsTable     string `envconfig:"APPROVALS_TABLE" default:"cablequote_approvals"`

	Redis pkgredis.Config
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	c.Env = ParseEnvironment(string(c.Env))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendDynamoDB:
	default:
		return ErrInvalidStorageBackend
	}
	switch c.SessionBackend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.URL == "" {
			return ErrMissingRedisURL
		}
	default:
		return ErrInvalidSessionBackend
	}
	if c.SessionTTL <= 0 {
		return ErrInvalidSessionTTL
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c Config) DynamoDB() database.DynamoDBConfig {
	return database.DynamoDBConfig{
		Region:          c.AWSRegion,
		AccessKeyID:     c.AWSAccessKeyID,
		SecretAccessKey: c.AWSSecretAccessKey,
		Endpoint:        c.DynamoDBEndpoint,
	}
}
