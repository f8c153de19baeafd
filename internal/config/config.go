package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(EnvironmentLogLevel(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DatabaseURI  string                  `json:"database_uri"`
	Database     database.DatabaseConfig `json:"-"`
	SeedDatabase bool                    `json:"seed_database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURI: %s, SeedDatabase: %t, LogLevel: %s, CORSAllowedOrigins: %v}",
		c.Port, c.Host, c.Environment, maskDatabaseURL(c.DatabaseURI), c.SeedDatabase, c.LogLevel, c.CORSAllowedOrigins)
}

// Address returns host:port for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogrusLevel is the level derived from APP_ENV, overridden by LOG_LEVEL when it is valid
func (c *Config) LogrusLevel() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return EnvironmentLogLevel(c.Environment)
}

// EnvironmentLogLevel maps APP_ENV to a log level
func EnvironmentLogLevel(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}
	if !strings.Contains(dbURL, "://") {
		return dbURL
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates the port, the database connection string and the CORS origins
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	dbURI := GetEnvWithDefault("DB_URI", "sqlite:///"+database.DefaultSQLitePath)
	dbConfig, err := database.ParseURI(dbURI)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}
	dbConfig.MaxRetries = GetEnvAsType("DB_MAX_RETRIES", 5)

	origins, err := parseOrigins(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURI:        dbURI,
		Database:           dbConfig,
		SeedDatabase:       GetEnvAsType("SEED_DATABASE", true),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		CORSAllowedOrigins: origins,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// parseOrigins splits a comma separated list and checks every entry is "*" or an http(s) origin
func parseOrigins(raw string) ([]string, error) {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS entry %q: must be * or start with http:// or https://", origin)
		}
		origins = append(origins, origin)
	}
	return origins, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an integer, using default value", key)
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Environment variable %s is not a boolean, using default value", key)
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
