package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidStoreBackend      = errors.New("invalid store backend")
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	Discord     DiscordConfig
	Store       StoreConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Invites     InvitesConfig
	Rewards     RewardsConfig
	Persistence PersistenceConfig
	Tickets     TicketsConfig
	Kafka       KafkaConfig
	Server      ServerConfig
}

// DiscordConfig holds gateway credentials and startup policy
type DiscordConfig struct {
	Token             string
	StartupMaxRetries int
}

// StoreConfig selects the remote document store
type StoreConfig struct {
	Backend  string
	Identity string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// InvitesConfig holds invite attribution thresholds
type InvitesConfig struct {
	SuspectAccountAge time.Duration // join-time classification
	ReportAccountAge  time.Duration // suspect report listing filter
	RateLimitWindow   time.Duration
	RateLimitMax      int
}

// RewardsConfig holds reward tier settings
type RewardsConfig struct {
	TierSize         int
	Validity         time.Duration
	DiscountValidity time.Duration
}

// PersistenceConfig holds debounce and intent log settings
type PersistenceConfig struct {
	ImmediateDelay time.Duration
	BatchedDelay   time.Duration
	IntentLogPath  string
}

// TicketsConfig holds ticket channel settings
type TicketsConfig struct {
	Cooldown   time.Duration
	CategoryID string
	StaffRole  string
}

// KafkaConfig holds event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// ServerConfig holds admin HTTP server configuration
type ServerConfig struct {
	Port      int
	JWTSecret string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Discord.Token, err = requireEnv("DISCORD_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Discord.StartupMaxRetries, err = intEnv("STARTUP_MAX_RETRIES", "5"); err != nil {
		return nil, err
	}

	// Store configuration
	cfg.Store.Backend = strings.ToLower(getEnvWithDefault("STORE_BACKEND", StoreBackendPostgres))
	cfg.Store.Identity = getEnvWithDefault("STATE_IDENTITY", "main")

	switch cfg.Store.Backend {
	case StoreBackendPostgres:
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	case StoreBackendRedis:
		cfg.Redis.Enabled = true
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Store.Backend, ErrInvalidStoreBackend)
	}

	// Redis configuration
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Invite attribution configuration
	if cfg.Invites.SuspectAccountAge, err = durationEnv("SUSPECT_ACCOUNT_AGE", "168h"); err != nil {
		return nil, err
	}
	if cfg.Invites.ReportAccountAge, err = durationEnv("REPORT_ACCOUNT_AGE", "720h"); err != nil {
		return nil, err
	}
	if cfg.Invites.RateLimitWindow, err = durationEnv("RATE_LIMIT_WINDOW", "1h"); err != nil {
		return nil, err
	}
	if cfg.Invites.RateLimitMax, err = intEnv("RATE_LIMIT_MAX", "10"); err != nil {
		return nil, err
	}

	// Reward configuration
	if cfg.Rewards.TierSize, err = intEnv("REWARD_TIER_SIZE", "5"); err != nil {
		return nil, err
	}
	if cfg.Rewards.TierSize <= 0 {
		return nil, fmt.Errorf("REWARD_TIER_SIZE must be positive, got %d", cfg.Rewards.TierSize)
	}
	if cfg.Rewards.Validity, err = durationEnv("REWARD_VALIDITY", "24h"); err != nil {
		return nil, err
	}
	if cfg.Rewards.DiscountValidity, err = durationEnv("DISCOUNT_VALIDITY", "72h"); err != nil {
		return nil, err
	}

	// Persistence configuration
	if cfg.Persistence.ImmediateDelay, err = durationEnv("SAVE_IMMEDIATE_DELAY", "100ms"); err != nil {
		return nil, err
	}
	if cfg.Persistence.BatchedDelay, err = durationEnv("SAVE_BATCHED_DELAY", "2s"); err != nil {
		return nil, err
	}
	cfg.Persistence.IntentLogPath = getEnvWithDefault("INTENT_LOG_PATH", "data/intents.db")

	// Ticket configuration
	if cfg.Tickets.Cooldown, err = durationEnv("TICKET_COOLDOWN", "5m"); err != nil {
		return nil, err
	}
	cfg.Tickets.CategoryID = os.Getenv("TICKET_CATEGORY_ID")
	cfg.Tickets.StaffRole = os.Getenv("STAFF_ROLE_ID")

	// Kafka configuration, optional
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "guild-bot-events")

	// Admin server configuration
	if cfg.Server.Port, err = intEnv("ADMIN_HTTP_PORT", "8080"); err != nil {
		return nil, err
	}
	if cfg.Server.JWTSecret, err = requireEnv("ADMIN_JWT_SECRET"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// BrokerList splits the comma separated broker setting
func (c *KafkaConfig) BrokerList() []string {
	if c.Brokers == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
