package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".regexviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for regexviz settings.
const envPrefix = "REGEXVIZ"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty it names the config file explicitly and must
// exist. Otherwise .regexviz.yaml is searched in CWD and $HOME, and a
// missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("match.dialect", DefaultDialect)
	v.SetDefault("match.timeout", DefaultTimeout)
	v.SetDefault("match.literal_fast_path", DefaultLiteralFastPath)
	v.SetDefault("match.flags", DefaultFlags)

	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.color", DefaultColor)
}
