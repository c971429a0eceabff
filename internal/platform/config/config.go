package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Server    Server
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Search    SearchConfig
	Documents DocumentConfig
	Admin     AdminConfig
	Lockout   LockoutConfig
	CacheTTL  time.Duration
	LogLevel  slog.Level
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	JWTSigningKey  string
	JWTIssuer      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	URL          string
	AutoMigrate  bool
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers           []string
	AnnouncementTopic string
	AnnouncementGroup string
}

type SearchConfig struct {
	URL             string
	APIKey          string
	Timeout         time.Duration
	BreakerCooldown time.Duration
}

// DocumentConfig selects where uploaded documents live.
// Backend is "disk" (default) or "s3".
type DocumentConfig struct {
	Backend    string
	Dir        string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

type AdminConfig struct {
	Username string
	Password string
}

// LockoutConfig bounds failed logins per account. Attempts <= 0 disables it.
type LockoutConfig struct {
	Attempts int
	Window   time.Duration
	LockFor  time.Duration
}

// DefaultCacheTTL is the cache-aside timeout for list and detail reads.
const DefaultCacheTTL = time.Hour

// FromEnv builds the config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Server: Server{
			Addr:           envString("CHARITY_ADDR", ":8080"),
			JWTSigningKey:  jwtSigningKey,
			JWTIssuer:      envString("JWT_ISSUER", "charity-backend"),
			TokenTTL:       envDuration("TOKEN_TTL", 24*time.Hour),
			RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			AutoMigrate:  envBool("DB_AUTO_MIGRATE", true),
			MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:           envList("KAFKA_BROKERS"),
			AnnouncementTopic: envString("ANNOUNCEMENT_TOPIC", "charity.announcements"),
			AnnouncementGroup: envString("ANNOUNCEMENT_GROUP", "charity-announcement-worker"),
		},
		Search: SearchConfig{
			URL:             os.Getenv("SEARCH_URL"),
			APIKey:          os.Getenv("SEARCH_API_KEY"),
			Timeout:         envDuration("SEARCH_TIMEOUT", 3*time.Second),
			BreakerCooldown: envDuration("SEARCH_BREAKER_COOLDOWN", 30*time.Second),
		},
		Documents: DocumentConfig{
			Backend:    envString("DOCUMENT_BACKEND", "disk"),
			Dir:        envString("DOCUMENT_DIR", "request_docs"),
			S3Bucket:   os.Getenv("DOCUMENT_S3_BUCKET"),
			S3Region:   envString("AWS_REGION", "eu-central-1"),
			S3Endpoint: os.Getenv("DOCUMENT_S3_ENDPOINT"),
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Lockout: LockoutConfig{
			Attempts: envInt("LOGIN_MAX_ATTEMPTS", 5),
			Window:   envDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),
			LockFor:  envDuration("LOGIN_LOCKOUT", 15*time.Minute),
		},
		CacheTTL: envDuration("CACHE_TTL", DefaultCacheTTL),
		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envLevel(key string, fallback slog.Level) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv(key))); err == nil {
		return lvl
	}
	return fallback
}
