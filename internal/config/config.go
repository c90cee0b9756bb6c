package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	JWT          JWTConfig
	OAuth2Google OAuth2GoogleConfig
	Store        StoreConfig
	Cache        CacheConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// StoreConfig selects the persistence backend. All three expose the same
// collection contract; BACKEND_TYPE picks which one is wired at startup.
type StoreConfig struct {
	Backend  string // "sheets" | "notion" | "postgres"
	Sheets   SheetsConfig
	Notion   NotionConfig
	Database DatabaseConfig
}

// SheetsConfig points at the Apps Script web app deployment.
type SheetsConfig struct {
	BaseURL string
}

// NotionConfig carries the integration key and the database id per collection.
type NotionConfig struct {
	APIKey         string
	UsersDB        string
	ApplicationsDB string
	RequestsDB     string
	RegistryDB     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type CacheConfig struct {
	Driver        string // "memory" | "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Store = StoreConfig{
		Backend: getEnv("BACKEND_TYPE", "sheets"),
		Sheets: SheetsConfig{
			BaseURL: getEnv("SHEETS_API_BASE_URL", ""),
		},
		Notion: NotionConfig{
			APIKey:         getEnv("NOTION_API_KEY", ""),
			UsersDB:        getEnv("NOTION_USERS_DB", ""),
			ApplicationsDB: getEnv("NOTION_APPLICATIONS_DB", ""),
			RequestsDB:     getEnv("NOTION_ACCESS_REQUESTS_DB", ""),
			RegistryDB:     getEnv("NOTION_ACCESS_REGISTRY_DB", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "access_management"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			MaxConns: int32(dbMaxConns),
			MinConns: int32(dbMinConns),
		},
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Cache = CacheConfig{
		Driver:        getEnv("CACHE_DRIVER", "memory"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		TTL:           cacheTTL,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.OAuth2Google.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}

	switch c.Store.Backend {
	case "sheets":
		if c.Store.Sheets.BaseURL == "" {
			return fmt.Errorf("SHEETS_API_BASE_URL is required for the sheets backend")
		}
	case "notion":
		if c.Store.Notion.APIKey == "" {
			return fmt.Errorf("NOTION_API_KEY is required for the notion backend")
		}
		if c.Store.Notion.UsersDB == "" || c.Store.Notion.ApplicationsDB == "" ||
			c.Store.Notion.RequestsDB == "" || c.Store.Notion.RegistryDB == "" {
			return fmt.Errorf("all NOTION_*_DB database ids are required for the notion backend")
		}
	case "postgres":
		if c.Store.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unsupported BACKEND_TYPE: %s", c.Store.Backend)
	}

	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER: %s", c.Cache.Driver)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.Name,
		c.Store.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
