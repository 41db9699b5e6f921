package config_test

import (
	"testing"

	"github.com/Iqra544/exam/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("UPLOAD_DIR", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "exam.db" {
		t.Fatalf("expected default database path exam.db, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookies to default to secure")
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("expected default upload dir uploads, got %s", cfg.UploadDir)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for short JWT_SECRET")
	}
}

func TestLoad_CookieSecureDisabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CookieSecure {
		t.Fatal("expected CookieSecure to be false")
	}
}

func TestLoad_BcryptCost(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}

	t.Setenv("BCRYPT_COST", "99")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for out-of-range BCRYPT_COST")
	}

	t.Setenv("BCRYPT_COST", "abc")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric BCRYPT_COST")
	}
}
