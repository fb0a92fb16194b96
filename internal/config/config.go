package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
	Demo        DemoConfig        `mapstructure:"demo"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map     MapConfig     `mapstructure:"map"`
	Economy EconomyConfig `mapstructure:"economy"`
	Rules   RulesConfig   `mapstructure:"rules"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Rows        int `mapstructure:"rows"`
	Cols        int `mapstructure:"cols"`
	LandPoints  int `mapstructure:"land_points"`
	SeaPoints   int `mapstructure:"sea_points"`
	Teams       int `mapstructure:"teams"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

// EconomyConfig holds treasury settings
type EconomyConfig struct {
	StartingGoldPerTile int `mapstructure:"starting_gold_per_tile"`
	IncomePerTile       int `mapstructure:"income_per_tile"`
}

// RulesConfig holds placement rule settings
type RulesConfig struct {
	MaxSoldierPower int `mapstructure:"max_soldier_power"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	AssertInvariants bool `mapstructure:"assert_invariants"`
}

// DemoConfig holds settings for the command line demo
type DemoConfig struct {
	Turns int   `mapstructure:"turns"`
	Seed  int64 `mapstructure:"seed"` // 0 picks a time based seed
}

// MaxTeams is the number of team letters the text board format can show.
const MaxTeams = 8

var (
	// Global config instance
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map generation defaults
	v.SetDefault("game.map.rows", 12)
	v.SetDefault("game.map.cols", 16)
	v.SetDefault("game.map.land_points", 16)
	v.SetDefault("game.map.sea_points", 6)
	v.SetDefault("game.map.teams", 4)
	v.SetDefault("game.map.max_attempts", 100)

	// Economy defaults
	v.SetDefault("game.economy.starting_gold_per_tile", 5)
	v.SetDefault("game.economy.income_per_tile", 1)

	// Rule defaults
	v.SetDefault("game.rules.max_soldier_power", core.MaxSoldierPower)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.assert_invariants", false)

	// Demo defaults
	v.SetDefault("demo.turns", 40)
	v.SetDefault("demo.seed", 0)
}

// Init initializes the configuration. A missing file at configPath falls back
// to defaults; with no path the usual locations are searched.
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/hex-territory")
	}

	// Set environment variable prefix
	nv.SetEnvPrefix("SLAY")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	loaded, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	v, cfg = nv, loaded
	mu.Unlock()
	return nil
}

func decode(src *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := src.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded configuration.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	cur := GetViper()
	cur.SetConfigFile(envFile)
	if err := cur.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	loaded, err := decode(cur)
	if err != nil {
		return err
	}
	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return nil
}

// Set allows runtime config updates. Values that fail validation are
// rejected and leave the current config untouched.
func Set(key string, value interface{}) error {
	cur := GetViper()
	cur.Set(key, value)
	loaded, err := decode(cur)
	if err != nil {
		return err
	}
	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange runs after
// a valid reload; an invalid file is reported through onError and the
// previous config stays in place. Either callback may be nil.
func WatchConfig(onChange func(fsnotify.Event, *Config), onError func(error)) {
	cur := GetViper()
	cur.OnConfigChange(func(e fsnotify.Event) {
		loaded, err := decode(cur)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		mu.Lock()
		cfg = loaded
		mu.Unlock()
		if onChange != nil {
			onChange(e, loaded)
		}
	})
	cur.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	m := c.Game.Map
	if m.Rows <= 0 || m.Cols <= 0 {
		return fmt.Errorf("game.map rows and cols must be positive")
	}
	if m.LandPoints < 1 {
		return fmt.Errorf("game.map.land_points must be at least 1")
	}
	if m.SeaPoints < 0 {
		return fmt.Errorf("game.map.sea_points must be non-negative")
	}
	if m.LandPoints+m.SeaPoints > m.Rows*m.Cols {
		return fmt.Errorf("game.map land_points + sea_points must fit on the board")
	}
	if m.Teams < 1 || m.Teams > MaxTeams {
		return fmt.Errorf("game.map.teams must be between 1 and %d", MaxTeams)
	}
	if m.MaxAttempts <= 0 {
		return fmt.Errorf("game.map.max_attempts must be positive")
	}

	if c.Game.Economy.StartingGoldPerTile < 0 {
		return fmt.Errorf("game.economy.starting_gold_per_tile must be non-negative")
	}
	if c.Game.Economy.IncomePerTile < 0 {
		return fmt.Errorf("game.economy.income_per_tile must be non-negative")
	}
	if p := c.Game.Rules.MaxSoldierPower; p < 1 || p > core.MaxSoldierPower {
		return fmt.Errorf("game.rules.max_soldier_power must be between 1 and %d", core.MaxSoldierPower)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Demo.Turns < 0 {
		return fmt.Errorf("demo.turns must be non-negative")
	}
	return nil
}
