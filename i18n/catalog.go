package i18n

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Catalog is a file-backed resolver. Translations are loaded from a
// yaml/json/toml file of flat key-to-message pairs and can be hot
// reloaded when the file changes.
type Catalog struct {
	mu      sync.RWMutex
	v       *viper.Viper
	entries map[string]string
}

// NewCatalog loads a translation catalog from the given file.
func NewCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	c := &Catalog{v: v}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// load reads the catalog file and swaps in the new entry set.
func (c *Catalog) load() error {
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	entries := make(map[string]string)
	for _, key := range c.v.AllKeys() {
		entries[key] = c.v.GetString(key)
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}

// Reload re-reads the catalog file.
func (c *Catalog) Reload() error {
	return c.load()
}

// Watch watches the catalog file and reloads it when it changes.
// The callback, when non-nil, runs after each successful reload.
func (c *Catalog) Watch(callback func(*Catalog)) {
	c.v.WatchConfig()
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if err := c.load(); err != nil {
			return
		}
		if callback != nil {
			callback(c)
		}
	})
}

// Resolve returns the cataloged message, or the key when absent.
func (c *Catalog) Resolve(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if msg, ok := c.entries[key]; ok && msg != "" {
		return msg
	}
	return key
}

// Len returns the number of loaded entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
