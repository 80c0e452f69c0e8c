package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"starsystem-server/internal/models"
	"starsystem-server/internal/shared/utils"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Frontend   FrontendConfig
	Logging    LoggingConfig
	RateLimit  RateLimitConfig
	Generation GenerationConfig
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type GenerationConfig struct {
	DefaultDensity models.DensityTier
	TextureSize    int
	CacheTTL       time.Duration
	// Persist selects postgres storage. When false, systems live in process
	// memory only.
	Persist bool
}

// MinTextureSize is the smallest texture edge the generator accepts.
const MinTextureSize = 16

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	generation, err := loadGenerationConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server:     loadServerConfig(),
		Database:   loadDatabaseConfig(),
		Redis:      loadRedisConfig(),
		Auth:       LoadAuthConfig(),
		Frontend:   loadFrontendConfig(),
		Logging:    loadLoggingConfig(),
		RateLimit:  loadRateLimitConfig(),
		Generation: generation,
	}

	return config, nil
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "true") == "true"
	redisURL := utils.GetEnv("REDIS_URL", "")

	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:  enabled,
		URL:      redisURL,
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "60"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_OPEN_CONNS", "25"))
	maxIdleConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_IDLE_CONNS", "5"))
	connMaxLifetime, _ := strconv.Atoi(utils.GetEnv("DB_CONN_MAX_LIFETIME_MINUTES", "5"))

	return DatabaseConfig{
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "starsystems"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

// LoadAuthConfig reads only the token settings, for tools that sign tokens
// without running the server.
func LoadAuthConfig() AuthConfig {
	tokenExpiration, _ := strconv.Atoi(utils.GetEnv("JWT_EXPIRATION_HOURS", "24"))

	return AuthConfig{
		JWTSecret:       utils.GetEnv("JWT_SECRET", ""),
		TokenExpiration: time.Duration(tokenExpiration) * time.Hour,
	}
}

func loadFrontendConfig() FrontendConfig {
	corsDebug := utils.GetEnv("CORS_DEBUG", "") == "true"

	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: corsDebug,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "2"), 64)
	burstSize, _ := strconv.Atoi(utils.GetEnv("RATE_LIMIT_BURST_SIZE", "5"))

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
		TrustProxy:        utils.GetEnv("RATE_LIMIT_TRUST_PROXY", "") == "true",
	}
}

func loadGenerationConfig() (GenerationConfig, error) {
	density, ok := models.ParseDensityTier(utils.GetEnv("GENERATION_DEFAULT_DENSITY", string(models.DensityDefault)))
	if !ok {
		return GenerationConfig{}, fmt.Errorf("unknown GENERATION_DEFAULT_DENSITY %q", utils.GetEnv("GENERATION_DEFAULT_DENSITY", ""))
	}

	textureSize, err := strconv.Atoi(utils.GetEnv("GENERATION_TEXTURE_SIZE", "256"))
	if err != nil {
		return GenerationConfig{}, fmt.Errorf("invalid GENERATION_TEXTURE_SIZE: %w", err)
	}

	cacheTTL, _ := strconv.Atoi(utils.GetEnv("GENERATION_CACHE_TTL_MINUTES", "60"))

	return GenerationConfig{
		DefaultDensity: density,
		TextureSize:    textureSize,
		CacheTTL:       time.Duration(cacheTTL) * time.Minute,
		Persist:        utils.GetEnv("GENERATION_PERSIST", "true") == "true",
	}, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Generation.Persist {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}

		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}

	if c.Generation.TextureSize < MinTextureSize {
		return fmt.Errorf("GENERATION_TEXTURE_SIZE must be at least %d", MinTextureSize)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstSize <= 0) {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND and RATE_LIMIT_BURST_SIZE must be positive")
	}

	return nil
}

// AdminEnabled reports whether admin routes can be served. Without a signing
// secret no admin token can be verified.
func (c *Config) AdminEnabled() bool {
	return c.Auth.JWTSecret != ""
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
