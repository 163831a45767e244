package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/bakein/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the bakein configuration using Viper. The result is cached.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance, e.g. for binding cobra flags
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path, without
// environment overrides
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return cfg, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("BAKEIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// go generate exports GOPACKAGE for the file carrying the directive
	_ = v.BindEnv("package", "BAKEIN_PACKAGE", "GOPACKAGE")

	SetDefaults(v)

	if projectConfig := findProjectConfig(); projectConfig != "" {
		mergeConfigFile(v, projectConfig)
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for bakein.toml by walking up the directory
// tree. Returns the empty string if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFile merges a TOML file below environment variables in precedence.
// Relative out_dir values are resolved against the file's directory.
func mergeConfigFile(v *viper.Viper, path string) {
	fileViper := viper.New()
	fileViper.SetConfigFile(path)
	fileViper.SetConfigType("toml")

	if err := fileViper.ReadInConfig(); err != nil {
		return
	}

	if out := fileViper.GetString("out_dir"); out != "" && !filepath.IsAbs(out) {
		fileViper.Set("out_dir", filepath.Join(filepath.Dir(path), out))
	}

	if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
		return
	}
}
