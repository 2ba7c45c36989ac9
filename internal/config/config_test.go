package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_RequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without MONGO_URI")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mongo.Database != "inventory_demo" {
		t.Errorf("Database = %q, want inventory_demo", cfg.Mongo.Database)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
}

func TestLoad_StagingEnvFile(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{name: "lowercase", environment: "staging"},
		{name: "mixed case", environment: "Staging"},
		{name: "uppercase", environment: "STAGING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			contents := []byte("MONGO_URI=mongodb://staging-db:27017\nMONGO_DB=inventory_staging\n")
			if err := os.WriteFile(filepath.Join(dir, ".env.staging"), contents, 0o600); err != nil {
				t.Fatalf("write .env.staging: %v", err)
			}
			wd, err := os.Getwd()
			if err != nil {
				t.Fatalf("getwd: %v", err)
			}
			if err := os.Chdir(dir); err != nil {
				t.Fatalf("chdir: %v", err)
			}
			t.Cleanup(func() { os.Chdir(wd) })

			t.Setenv("ENV_FILE", "")
			t.Setenv("ENVIRONMENT", tt.environment)
			// godotenv never overrides variables already present, so the
			// ones the file should supply must be absent entirely.
			t.Setenv("MONGO_URI", "")
			os.Unsetenv("MONGO_URI")
			t.Setenv("MONGO_DB", "")
			os.Unsetenv("MONGO_DB")

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Mongo.URI != "mongodb://staging-db:27017" {
				t.Errorf("URI = %q, want the .env.staging value", cfg.Mongo.URI)
			}
			if cfg.Mongo.Database != "inventory_staging" {
				t.Errorf("Database = %q, want inventory_staging", cfg.Mongo.Database)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "inventory_staging")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "inventory_staging" {
		t.Errorf("Database = %q", cfg.Mongo.Database)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q", cfg.Env)
	}
}
