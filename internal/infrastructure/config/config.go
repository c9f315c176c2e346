// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/tesso57/folio/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const maxRecentSources = 10

// Store manages persisted application settings. The recent-source methods
// and Save are safe for concurrent use.
type Store struct {
	Settings   settings.Settings
	configPath string
	mu         sync.Mutex
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", "folio", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	_, err = parser.Parse([]string{})
	if err != nil {
		return nil, err
	}

	recent, err := loadRecentSources(configPath)
	if err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.Source = strings.TrimSpace(store.Settings.Source)
	store.Settings.RecentSources = normalizeSources(recent)
	store.Settings.CacheFile = strings.TrimSpace(store.Settings.CacheFile)

	if store.Settings.CacheFile == "" {
		store.Settings.CacheFile = filepath.Join(defaultDataHome(), "folio", "cache.db")
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.configPath
}

// Recent returns the remembered document sources, most recent first.
func (s *Store) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.Settings.RecentSources)
}

// Remember records source as the most recently opened document and saves.
func (s *Store) Remember(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	recent := []string{source}
	for _, existing := range s.Settings.RecentSources {
		if existing != source {
			recent = append(recent, existing)
		}
	}
	if len(recent) > maxRecentSources {
		recent = recent[:maxRecentSources]
	}
	s.Settings.RecentSources = recent
	return s.save()
}

// Forget removes a remembered source by index and saves the configuration.
func (s *Store) Forget(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.Settings.RecentSources) {
		return fmt.Errorf("invalid recent source index: %d", index)
	}
	s.Settings.RecentSources = slices.Delete(slices.Clone(s.Settings.RecentSources), index, index+1)
	return s.save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

func normalizeSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" || slices.Contains(out, source) {
			continue
		}
		out = append(out, source)
	}
	if len(out) > maxRecentSources {
		out = out[:maxRecentSources]
	}
	return out
}

// loadRecentSources reads the list kong does not manage.
func loadRecentSources(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var doc struct {
		RecentSources []string `yaml:"recent_sources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return doc.RecentSources, nil
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Check nested dot-notation
			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return v, nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]any); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}
