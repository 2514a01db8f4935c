package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestCatalogResolve(t *testing.T) {
	path := writeCatalogFile(t, "user.created: User created\nuser.invalid: User invalid\n")

	c, err := NewCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.Resolve("user.created"); got != "User created" {
		t.Errorf("expected cataloged message, got %q", got)
	}
	if got := c.Resolve("user.deleted"); got != "user.deleted" {
		t.Errorf("expected key fallback, got %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestCatalogReload(t *testing.T) {
	path := writeCatalogFile(t, "greeting: Hello\n")

	c, err := NewCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte("greeting: Bonjour\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite catalog file: %v", err)
	}
	if err := c.Reload(); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}

	if got := c.Resolve("greeting"); got != "Bonjour" {
		t.Errorf("expected reloaded message, got %q", got)
	}
}

func TestCatalogMissingFile(t *testing.T) {
	if _, err := NewCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}
