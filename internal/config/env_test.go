package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAPIKeyPrefersGeminiVariable(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", " fallback ")
	if got := APIKey(); got != "fallback" {
		t.Fatalf("expected API_KEY fallback, got %q", got)
	}
	t.Setenv("GEMINI_API_KEY", "primary")
	if got := APIKey(); got != "primary" {
		t.Fatalf("expected GEMINI_API_KEY, got %q", got)
	}
}

func TestLoadEnvReadsFileAndSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("AZURE_GUARDIAN_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("AZURE_GUARDIAN_TEST_KEY", "")
	os.Unsetenv("AZURE_GUARDIAN_TEST_KEY")

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("AZURE_GUARDIAN_TEST_KEY"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
