// Package config loads skuselect settings from file, environment and flags via Viper.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/comalice/skuselect/internal/cache"
	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/logger"
	"github.com/comalice/skuselect/internal/primitives"
)

// EnvPrefix prefixes environment overrides, e.g. SKUSELECT_LOG_LEVEL.
const EnvPrefix = "SKUSELECT"

// Config is the full application configuration.
type Config struct {
	Catalog          string        `mapstructure:"catalog"`
	VisualDimensions []string      `mapstructure:"visual_dimensions"`
	Log              logger.Config `mapstructure:"log"`
	Cache            CacheConfig   `mapstructure:"cache"`
	Graph            GraphConfig   `mapstructure:"graph"`
}

// CacheConfig sizes the graph cache.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// GraphConfig sets build options.
type GraphConfig struct {
	ID string `mapstructure:"id"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("visual_dimensions", primitives.DefaultVisualNames)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("cache.size", cache.DefaultSize)
	v.SetDefault("graph.id", core.DefaultGraphID)
}

// New returns a Viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and unmarshals the result.
// An empty path uses defaults, environment and any flags already bound to v.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// Classifier returns the visual-dimension classifier configured by VisualDimensions.
func (c *Config) Classifier() primitives.Classifier {
	if len(c.VisualDimensions) == 0 {
		return primitives.IsColor
	}
	return primitives.NameSet(c.VisualDimensions...)
}

// BuildOptions returns the core build options implied by the configuration.
func (c *Config) BuildOptions() []core.BuildOption {
	return []core.BuildOption{
		core.WithGraphID(c.Graph.ID),
		core.WithClassifier(c.Classifier()),
	}
}
