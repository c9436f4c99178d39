package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Store configuration
	DynamoDBEndpoint   string        `yaml:"dynamodb_endpoint"`
	AWSRegion          string        `yaml:"aws_region"`
	AWSAccessKeyID     string        `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string        `yaml:"aws_secret_access_key"`
	TableName          string        `yaml:"table_name"`
	StoreTimeout       time.Duration `yaml:"store_timeout"`
	StoreMaxAttempts   int           `yaml:"store_max_attempts"`
	TableWaitTimeout   time.Duration `yaml:"table_wait_timeout"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics        bool `yaml:"enable_metrics"`
	EnableCORS           bool `yaml:"enable_cors"`
	EnableCircuitBreaker bool `yaml:"enable_circuit_breaker"`
	EnableTracing        bool `yaml:"enable_tracing"`

	// ConfigFile is the YAML overlay the values were read from, if any.
	ConfigFile string `yaml:"-"`
}

// Defaults returns the configuration used when nothing is set. The endpoint
// and credentials target a local DynamoDB and are not valid against AWS.
func Defaults() *Config {
	return &Config{
		ServerAddress:        ":8080",
		Environment:          "development",
		DynamoDBEndpoint:     "http://dynamodb-local:8000",
		AWSRegion:            "us-east-1",
		AWSAccessKeyID:       "fakeMyKeyId",
		AWSSecretAccessKey:   "fakeSecretAccessKey",
		TableName:            "Movies",
		StoreTimeout:         10 * time.Second,
		StoreMaxAttempts:     1,
		TableWaitTimeout:     2 * time.Minute,
		LogLevel:             "info",
		EnableMetrics:        true,
		EnableCORS:           true,
		EnableCircuitBreaker: true,
		EnableTracing:        false,
	}
}

// LoadConfig loads configuration from defaults, the optional YAML file named
// by CONFIG_FILE, and environment variables, in increasing priority.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)

	cfg.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", cfg.DynamoDBEndpoint)
	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.AWSAccessKeyID = getEnv("AWS_ACCESS_KEY_ID", cfg.AWSAccessKeyID)
	cfg.AWSSecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", cfg.AWSSecretAccessKey)
	cfg.TableName = getEnv("TABLE_NAME", cfg.TableName)
	cfg.StoreTimeout = getEnvDuration("STORE_TIMEOUT", cfg.StoreTimeout)
	cfg.StoreMaxAttempts = getEnvInt("STORE_MAX_ATTEMPTS", cfg.StoreMaxAttempts)
	cfg.TableWaitTimeout = getEnvDuration("TABLE_WAIT_TIMEOUT", cfg.TableWaitTimeout)

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)
	cfg.EnableCircuitBreaker = getEnvBool("ENABLE_CIRCUIT_BREAKER", cfg.EnableCircuitBreaker)
	cfg.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.EnableTracing)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the values present in a YAML file onto cfg.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBEndpoint == "" {
		return fmt.Errorf("DYNAMODB_ENDPOINT must not be empty")
	}
	if c.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION must not be empty")
	}
	if c.TableName == "" {
		return fmt.Errorf("TABLE_NAME must not be empty")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive, got %s", c.StoreTimeout)
	}
	if c.StoreMaxAttempts < 1 {
		return fmt.Errorf("STORE_MAX_ATTEMPTS must be at least 1, got %d", c.StoreMaxAttempts)
	}
	if c.TableWaitTimeout <= 0 {
		return fmt.Errorf("TABLE_WAIT_TIMEOUT must be positive, got %s", c.TableWaitTimeout)
	}
	return nil
}

// LimitTableWait caps TableWaitTimeout at limit.
func (c *Config) LimitTableWait(limit time.Duration) {
	if limit > 0 && c.TableWaitTimeout > limit {
		c.TableWaitTimeout = limit
	}
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration parses a Go duration such as "10s"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
