package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"krishimitra/internal/types"
)

// DefaultConfigPath is where `krishi config init` writes the file.
const DefaultConfigPath = ".krishi/config.yaml"

// Config holds all krishimitra configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Model gateway used when local extraction finds nothing
	LLM LLMConfig `yaml:"llm"`

	// Scheme catalog source
	Catalog CatalogConfig `yaml:"catalog"`

	// SQLite store
	Store StoreConfig `yaml:"store"`

	// Resolver tuning
	Engine EngineConfig `yaml:"engine"`

	// HTTP host
	Server ServerConfig `yaml:"server"`

	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the model gateway.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // gemini, openai, none
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	CacheSize int    `yaml:"cache_size"` // 0 disables the response cache
	Trace     bool   `yaml:"trace"`      // record prompts/responses in the store
}

// CatalogConfig configures the scheme catalog.
type CatalogConfig struct {
	// Path to a YAML dataset; empty uses the built-in national schemes.
	Path     string `yaml:"path"`
	Watch    bool   `yaml:"watch"`
	Debounce string `yaml:"debounce"`
}

// StoreConfig configures the SQLite store.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
	BusyTimeout  string `yaml:"busy_timeout"`
}

// EngineConfig tunes the command resolver.
type EngineConfig struct {
	DefaultLanguage    string  `yaml:"default_language"`
	HistoryWindow      int     `yaml:"history_window"`
	DuplicateRatio     float64 `yaml:"duplicate_ratio"`
	DuplicateMinCommon int     `yaml:"duplicate_min_common"`
	// Offset from now used when an utterance carries no time.
	DefaultDueOffset string `yaml:"default_due_offset"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// ValidProviders lists all supported model providers.
var ValidProviders = []string{"gemini", "openai", "none"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "krishimitra",
		Version: "1.0.0",

		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-2.5-flash",
			Timeout:   "20s",
			CacheSize: 256,
		},

		Catalog: CatalogConfig{
			Watch:    true,
			Debounce: "500ms",
		},

		Store: StoreConfig{
			DatabasePath: ".krishi/krishi.db",
			BusyTimeout:  "5s",
		},

		Engine: EngineConfig{
			DefaultLanguage:    string(types.LanguageEnglish),
			HistoryWindow:      4,
			DuplicateRatio:     0.6,
			DuplicateMinCommon: 2,
			DefaultDueOffset:   "1h",
		},

		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			ShutdownTimeout: "5s",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	// API keys, later ones win
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "openai"
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "gemini"
	}
	if p := os.Getenv("KRISHI_LLM_PROVIDER"); p != "" {
		c.LLM.Provider = p
	}

	if path := os.Getenv("KRISHI_DB"); path != "" {
		c.Store.DatabasePath = path
	}
	if path := os.Getenv("KRISHI_CATALOG"); path != "" {
		c.Catalog.Path = path
	}
	if lang := os.Getenv("KRISHI_LANGUAGE"); lang != "" {
		c.Engine.DefaultLanguage = lang
	}
	if addr := os.Getenv("KRISHI_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate validates the configuration. A missing API key is not an error:
// the resolver simply runs without the model fallback.
func (c *Config) Validate() error {
	validProvider := false
	for _, p := range ValidProviders {
		if c.LLM.Provider == p {
			validProvider = true
			break
		}
	}
	if !validProvider {
		return fmt.Errorf("invalid LLM provider: %s (valid: %v)", c.LLM.Provider, ValidProviders)
	}

	if c.LLM.CacheSize < 0 {
		return fmt.Errorf("llm.cache_size must be >= 0, got %d", c.LLM.CacheSize)
	}

	if lang := c.Engine.DefaultLanguage; lang != "" {
		if _, ok := types.LookupLanguage(lang); !ok {
			return fmt.Errorf("unknown default language: %s", lang)
		}
	}

	if r := c.Engine.DuplicateRatio; r <= 0 || r >= 1 {
		return fmt.Errorf("engine.duplicate_ratio must be in (0,1), got %v", r)
	}
	if c.Engine.DuplicateMinCommon < 1 {
		return fmt.Errorf("engine.duplicate_min_common must be >= 1, got %d", c.Engine.DuplicateMinCommon)
	}

	if c.Store.DatabasePath == "" {
		return fmt.Errorf("store.database_path is required")
	}

	return nil
}

// HasModel reports whether a model gateway can be built.
func (c *Config) HasModel() bool {
	return c.LLM.Provider != "none" && c.LLM.APIKey != ""
}

// GetLanguage returns the configured default language.
func (c *Config) GetLanguage() types.Language {
	return types.ParseLanguage(c.Engine.DefaultLanguage)
}

// GetLLMTimeout returns the model call timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	return parseDuration(c.LLM.Timeout, 20*time.Second)
}

// GetCatalogDebounce returns the catalog watcher debounce interval.
func (c *Config) GetCatalogDebounce() time.Duration {
	return parseDuration(c.Catalog.Debounce, 500*time.Millisecond)
}

// GetBusyTimeout returns the SQLite busy timeout.
func (c *Config) GetBusyTimeout() time.Duration {
	return parseDuration(c.Store.BusyTimeout, 5*time.Second)
}

// GetDefaultDueOffset returns the offset applied to now when no time is given.
func (c *Config) GetDefaultDueOffset() time.Duration {
	return parseDuration(c.Engine.DefaultDueOffset, time.Hour)
}

// GetReadTimeout returns the HTTP read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 10*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown timeout.
func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
