package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers understood by DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	DatabaseDriver string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string

	// Due date sweep
	SweepSchedule  string
	SweepOnStartup bool
	SweepLocation  *time.Location

	// Allocation lock; an empty RedisURL keeps the lock in-process
	RedisURL          string
	AllocationLockTTL time.Duration

	// Collaborators
	BlobBucketURL string
	AMQPURL       string
	AMQPExchange  string

	// Workflow policy
	AllowDirectIssue         bool
	EnforceDistinctApprovers bool

	// HTTP edge
	RateLimit          string
	CORSAllowedOrigins string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("SWEEP_SCHEDULE", "@daily")
	v.SetDefault("SWEEP_ON_STARTUP", false)
	v.SetDefault("SWEEP_TIMEZONE", "UTC")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ALLOCATION_LOCK_TTL", "30s")
	v.SetDefault("BLOB_BUCKET_URL", "mem://")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "cms.notifications")
	v.SetDefault("ALLOW_DIRECT_ISSUE", false)
	v.SetDefault("ENFORCE_DISTINCT_APPROVERS", true)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		DatabaseDriver:           strings.ToLower(v.GetString("DATABASE_DRIVER")),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		SweepSchedule:            v.GetString("SWEEP_SCHEDULE"),
		SweepOnStartup:           v.GetBool("SWEEP_ON_STARTUP"),
		RedisURL:                 v.GetString("REDIS_URL"),
		BlobBucketURL:            v.GetString("BLOB_BUCKET_URL"),
		AMQPURL:                  v.GetString("AMQP_URL"),
		AMQPExchange:             v.GetString("AMQP_EXCHANGE"),
		AllowDirectIssue:         v.GetBool("ALLOW_DIRECT_ISSUE"),
		EnforceDistinctApprovers: v.GetBool("ENFORCE_DISTINCT_APPROVERS"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       v.GetString("CORS_ALLOWED_ORIGINS"),
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case DriverMemory:
		log.Println("Warning: DATABASE_DRIVER=memory, data is lost on restart.")
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	loc, err := time.LoadLocation(v.GetString("SWEEP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_TIMEZONE: %w", err)
	}
	cfg.SweepLocation = loc

	ttlStr := v.GetString("ALLOCATION_LOCK_TTL")
	cfg.AllocationLockTTL, err = time.ParseDuration(ttlStr)
	if err != nil || cfg.AllocationLockTTL <= 0 {
		cfg.AllocationLockTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for ALLOCATION_LOCK_TTL ('%s'). Defaulting to %s.\n", ttlStr, cfg.AllocationLockTTL)
	}

	return cfg, nil
}
