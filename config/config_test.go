package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Empty env values read as unset.
	for _, k := range []string{"CONFIG_PATH", "APP_PORT", "DB_HOST", "DB_NAME", "JWT_SECRET", "GEMINI_MODEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Fatalf("AppPort = %q", cfg.AppPort)
	}
	if cfg.DBHost != "localhost" || cfg.DBName != "campussync" {
		t.Fatalf("db defaults: %+v", cfg)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "app_port: \"9000\"\ndb_host: db.internal\njwt_secret: from-yaml\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_HOST", "")

	cfg := Load()
	if cfg.AppPort != "9000" {
		t.Fatalf("AppPort = %q, want yaml value", cfg.AppPort)
	}
	if cfg.DBHost != "db.internal" {
		t.Fatalf("DBHost = %q, want yaml value", cfg.DBHost)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("JWTSecret = %q, env must win over yaml", cfg.JWTSecret)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "pw",
		DBName:     "campussync",
		DBSSLMode:  "disable",
	}
	want := "host=localhost user=postgres password=pw dbname=campussync port=5432 sslmode=disable TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
