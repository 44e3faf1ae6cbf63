package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MINPAI_HTTP_PORT.
const EnvPrefix = "MINPAI"

var ErrInvalidConfig = errors.New("invalid config")

type AppConf struct {
	Name string `mapstructure:"name"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type HTTPConf struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// JwtSecret enables HS256 bearer auth on /api routes when set.
	JwtSecret string `mapstructure:"jwtSecret"`
}

type MetricsConf struct {
	Port int `mapstructure:"port"`
}

type EngineConf struct {
	OpponentModel string `mapstructure:"opponentModel"`
	// SearchRoot is "full" (every playable card) or "pruned".
	SearchRoot string `mapstructure:"searchRoot"`
}

type TierConf struct {
	Depth      int           `mapstructure:"depth"`
	TimeBudget time.Duration `mapstructure:"timeBudget"`
}

type HardTierConf struct {
	TierConf     `mapstructure:",squash"`
	DeepDepth    int           `mapstructure:"deepDepth"`
	ShallowDepth int           `mapstructure:"shallowDepth"`
	ShallowAfter time.Duration `mapstructure:"shallowAfter"`
	ShortHand    int           `mapstructure:"shortHand"`
}

type TiersConf struct {
	Medium TierConf     `mapstructure:"medium"`
	Hard   HardTierConf `mapstructure:"hard"`
}

// Config is the whole service configuration.
type Config struct {
	App     AppConf     `mapstructure:"app"`
	Log     LogConf     `mapstructure:"log"`
	HTTP    HTTPConf    `mapstructure:"http"`
	Metrics MetricsConf `mapstructure:"metrics"`
	Engine  EngineConf  `mapstructure:"engine"`
	Tiers   TiersConf   `mapstructure:"tiers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "minpai")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.mode", "release")
	v.SetDefault("http.jwtSecret", "")
	v.SetDefault("metrics.port", 0)
	v.SetDefault("engine.opponentModel", "legacy")
	v.SetDefault("engine.searchRoot", "full")
	v.SetDefault("tiers.medium.depth", 2)
	v.SetDefault("tiers.medium.timeBudget", "800ms")
	v.SetDefault("tiers.hard.depth", 4)
	v.SetDefault("tiers.hard.timeBudget", "1500ms")
	v.SetDefault("tiers.hard.deepDepth", 5)
	v.SetDefault("tiers.hard.shallowDepth", 2)
	v.SetDefault("tiers.hard.shallowAfter", "500ms")
	v.SetDefault("tiers.hard.shortHand", 3)
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := decode(newViper(""))
	if err != nil {
		// The built-in defaults are valid.
		panic(err)
	}
	return cfg
}

// Redacted returns a copy of c that is safe to log.
func (c Config) Redacted() Config {
	if c.HTTP.JwtSecret != "" {
		c.HTTP.JwtSecret = "***"
	}
	return c
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	switch c.Engine.OpponentModel {
	case "legacy", "opponent":
	default:
		return fmt.Errorf("%w: engine.opponentModel %q", ErrInvalidConfig, c.Engine.OpponentModel)
	}
	switch c.Engine.SearchRoot {
	case "full", "pruned":
	default:
		return fmt.Errorf("%w: engine.searchRoot %q", ErrInvalidConfig, c.Engine.SearchRoot)
	}
	switch c.HTTP.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: http.mode %q", ErrInvalidConfig, c.HTTP.Mode)
	}
	if c.Tiers.Medium.Depth < 1 || c.Tiers.Hard.Depth < 1 || c.Tiers.Hard.DeepDepth < 1 || c.Tiers.Hard.ShallowDepth < 1 {
		return fmt.Errorf("%w: search depths must be at least 1", ErrInvalidConfig)
	}
	if c.Tiers.Medium.TimeBudget < 0 || c.Tiers.Hard.TimeBudget < 0 || c.Tiers.Hard.ShallowAfter < 0 {
		return fmt.Errorf("%w: durations must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// Source is a loaded configuration that can follow changes to its file.
type Source struct {
	v *viper.Viper

	mu        sync.RWMutex
	cfg       *Config
	listeners []func(*Config)
}

// Load reads configFile (YAML, JSON or TOML by extension) over the defaults
// and environment. An empty configFile uses defaults and environment only.
func Load(configFile string) (*Source, error) {
	v := newViper(configFile)
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &Source{v: v, cfg: cfg}, nil
}

// Config returns the current configuration.
func (s *Source) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// OnChange registers fn to run after every successful reload.
func (s *Source) OnChange(fn func(*Config)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Reload decodes the file again. On failure the previous configuration stays
// in effect and the error is returned.
func (s *Source) Reload() error {
	cfg, err := decode(s.v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	listeners := append([]func(*Config){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// Watch reloads whenever the config file changes. onError receives reload
// failures and may be nil. Sources loaded without a file never fire.
func (s *Source) Watch(onError func(error)) {
	if s.v.ConfigFileUsed() == "" {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := s.Reload(); err != nil && onError != nil {
			onError(fmt.Errorf("reload %s: %w", e.Name, err))
		}
	})
	s.v.WatchConfig()
}
