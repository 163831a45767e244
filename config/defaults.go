package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// ProjectFile is the per-project configuration file name
	ProjectFile = "bakein.toml"

	// DefaultMaxAttempts is the default seed budget of the hash generator
	DefaultMaxAttempts = 64

	// DefaultDirPermissions for the artifact tree
	DefaultDirPermissions = 0o755
)

// DefaultOutDir returns <user cache dir>/bakein, falling back to the
// system temp dir when no cache dir is available.
func DefaultOutDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "bakein")
}

// SetDefaults sets default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("out_dir", DefaultOutDir())
	v.SetDefault("unit", "")
	v.SetDefault("package", "")
	v.SetDefault("fix_imports", false)

	v.SetDefault("hash.max_attempts", DefaultMaxAttempts)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.theme", "everforest")
}
