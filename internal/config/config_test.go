package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("listen_addr: \":9090\"\nrate_per_minute: 30\nrate_burst: 5\n"), 0644)

	c := Config{ListenAddr: DefaultListenAddr, RatePerMinute: DefaultRatePerMinute, RateBurst: DefaultRateBurst}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.ListenAddr != ":9090" {
		t.Errorf("listen addr = %q", c.ListenAddr)
	}
	if c.RatePerMinute != 30 || c.RateBurst != 5 {
		t.Errorf("rate = %d/%d", c.RatePerMinute, c.RateBurst)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("rate_per_minute: 60\n"), 0644)

	c := Config{ListenAddr: DefaultListenAddr, RatePerMinute: DefaultRatePerMinute, RateBurst: DefaultRateBurst}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.ListenAddr != DefaultListenAddr {
		t.Errorf("listen addr should keep default, got %q", c.ListenAddr)
	}
	if c.RatePerMinute != 60 {
		t.Errorf("rate per minute = %d", c.RatePerMinute)
	}
}

func TestLoadFromFile_NegativeRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("rate_per_minute: -1\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateWithDSN(t *testing.T) {
	var c Config
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error for empty DSN")
	}
	c.DSN = "postgresql://localhost/claims"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}

func TestValidateFile(t *testing.T) {
	var c Config
	if err := c.ValidateFile(); err == nil {
		t.Fatal("expected error for empty file path")
	}

	c.FilePath = "/nonexistent/claims.csv"
	if err := c.ValidateFile(); err == nil {
		t.Fatal("expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "claims.csv")
	os.WriteFile(path, []byte("service date\n"), 0644)
	c.FilePath = path
	if err := c.ValidateFile(); err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
}
