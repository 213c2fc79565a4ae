package config

import "testing"

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.UsesDefaultSecret() {
		t.Error("Expected the development fallback secret")
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %s", cfg.Addr)
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to fail in production without SECRET_KEY")
	}
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UsesDefaultSecret() {
		t.Error("Did not expect the fallback secret")
	}
	if cfg.SecretKey != "s3cret" || cfg.Addr != ":9999" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}
