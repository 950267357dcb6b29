package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppPort string `yaml:"app_port"`
	AppEnv  string `yaml:"app_env"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode"`

	JWTSecret string `yaml:"jwt_secret"`

	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load builds config from environment variables. If CONFIG_PATH points at a
// YAML file, values from it are applied first and env vars override them.
func Load() *Config {
	cfg := &Config{}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.AppPort = get("APP_PORT", orDefault(cfg.AppPort, "8080"))
	cfg.AppEnv = get("APP_ENV", orDefault(cfg.AppEnv, "dev"))

	cfg.DBHost = get("DB_HOST", orDefault(cfg.DBHost, "localhost"))
	cfg.DBPort = get("DB_PORT", orDefault(cfg.DBPort, "5432"))
	cfg.DBUser = get("DB_USER", orDefault(cfg.DBUser, "postgres"))
	cfg.DBPassword = get("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = get("DB_NAME", orDefault(cfg.DBName, "campussync"))
	cfg.DBSSLMode = get("DB_SSLMODE", orDefault(cfg.DBSSLMode, "disable"))

	cfg.JWTSecret = get("JWT_SECRET", orDefault(cfg.JWTSecret, "dev-secret"))

	cfg.GeminiAPIKey = get("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = get("GEMINI_MODEL", orDefault(cfg.GeminiModel, "gemini-2.5-flash-lite"))

	return cfg
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
