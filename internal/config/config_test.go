package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/object_recognizer")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerAddress() != "0.0.0.0:5001" {
		t.Errorf("ServerAddress() = %q, want 0.0.0.0:5001", cfg.ServerAddress())
	}
	if cfg.Dictionary.Timeout != 5*time.Second {
		t.Errorf("dictionary timeout = %s, want 5s", cfg.Dictionary.Timeout)
	}
	if cfg.Dictionary.APIKey != "" {
		t.Errorf("api key should default to empty, got %q", cfg.Dictionary.APIKey)
	}
	if cfg.Mongo.Database != "object_recognizer" {
		t.Errorf("database = %q, want object_recognizer", cfg.Mongo.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017/captures")
	t.Setenv("PORT", "8080")
	t.Setenv("MW_API_KEY", "secret")
	t.Setenv("MW_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Dictionary.APIKey != "secret" {
		t.Errorf("api key = %q, want secret", cfg.Dictionary.APIKey)
	}
	if cfg.Dictionary.Timeout != 2*time.Second {
		t.Errorf("dictionary timeout = %s, want 2s", cfg.Dictionary.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing mongo uri",
			env:  map[string]string{},
		},
		{
			name: "bad port",
			env: map[string]string{
				"MONGODB_URI": "mongodb://localhost:27017",
				"PORT":        "not-a-port",
			},
		},
		{
			name: "port out of range",
			env: map[string]string{
				"MONGODB_URI": "mongodb://localhost:27017",
				"PORT":        "70000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() should have failed")
			}
		})
	}
}
