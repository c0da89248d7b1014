package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application. It is built once at
// startup and never mutated. Provider credentials are all optional; an empty
// value simply leaves that provider unconfigured.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Detection provider credentials
	OpenAIAPIKey       string
	OpenAIAPIURL       string
	GoogleVisionAPIKey string
	ClarifaiAPIKey     string
	HuggingFaceAPIKey  string

	// Recipe and nutrition provider credentials
	SpoonacularAPIKey string
	EdamamAppID       string
	EdamamAppKey      string

	// History database configuration; sqlite is used when DBHost is empty
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration for caching and rate limiting; optional
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// S3 photo storage; empty bucket disables it
	S3Bucket string
}

// LoadConfig builds a Config from environment variables. Secrets also accept
// the <NAME>_FILE convention pointing at a file holding the value.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		OpenAIAPIKey:       getSecret("OPENAI_API_KEY"),
		OpenAIAPIURL:       os.Getenv("OPENAI_API_URL"),
		GoogleVisionAPIKey: getSecret("GOOGLE_VISION_API_KEY"),
		ClarifaiAPIKey:     getSecret("CLARIFAI_API_KEY"),
		HuggingFaceAPIKey:  getSecret("HUGGINGFACE_API_KEY"),

		SpoonacularAPIKey: getSecret("SPOONACULAR_API_KEY"),
		EdamamAppID:       os.Getenv("EDAMAM_APP_ID"),
		EdamamAppKey:      getSecret("EDAMAM_APP_KEY"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getSecret("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "snapchef"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "snapchef.db"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		S3Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfiguredProviders reports which provider credentials are present, for
// startup logging.
func (c *Config) ConfiguredProviders() []string {
	providers := []string{}
	if c.OpenAIAPIKey != "" {
		providers = append(providers, "openai")
	}
	if c.GoogleVisionAPIKey != "" {
		providers = append(providers, "google-vision")
	}
	if c.ClarifaiAPIKey != "" {
		providers = append(providers, "clarifai")
	}
	if c.HuggingFaceAPIKey != "" {
		providers = append(providers, "huggingface")
	}
	if c.SpoonacularAPIKey != "" {
		providers = append(providers, "spoonacular")
	}
	if c.EdamamAppID != "" && c.EdamamAppKey != "" {
		providers = append(providers, "edamam")
	}
	return providers
}

// getEnv returns the environment value or a default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret reads a secret from the environment, falling back to the file
// named by <KEY>_FILE (Docker secrets convention).
func getSecret(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
