package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"column-bridge/udf"
)

// Config holds the CLI settings. Values come from defaults, an optional YAML
// file, and the BRIDGE_* environment, in increasing precedence.
type Config struct {
	AdapterDir string `mapstructure:"adapter_dir"`
	AdapterPkg string `mapstructure:"adapter_pkg"`
	MinArity   int    `mapstructure:"min_arity"`
	MaxArity   int    `mapstructure:"max_arity"`
	Debug      bool   `mapstructure:"debug"`
}

// LoadConfig reads configuration from the environment and, when path is
// non-empty, the YAML file at path.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("adapter_dir", "udf")
	v.SetDefault("adapter_pkg", "udf")
	v.SetDefault("min_arity", udf.MinArity)
	v.SetDefault("max_arity", udf.MaxArity)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("BRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}
