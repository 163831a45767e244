// Package config loads bakein settings from defaults, an optional
// bakein.toml found by walking up from the working directory, and
// BAKEIN_* environment variables (highest precedence).
package config

// Config is the resolved configuration of one generation run or CLI call
type Config struct {
	// OutDir is the root of the artifact tree shared by the generation
	// program and the importing side
	OutDir string `mapstructure:"out_dir"`

	// Unit is the compilation-unit identity (consumer package import path).
	// Empty means "resolve from the working directory".
	Unit string `mapstructure:"unit"`

	// Package is the package clause written into assembled files.
	// go generate exports it as GOPACKAGE.
	Package string `mapstructure:"package"`

	// FixImports lets the import assembler add and prune imports instead of
	// only formatting
	FixImports bool `mapstructure:"fix_imports"`

	Hash HashConfig `mapstructure:"hash"`
	Log  LogConfig  `mapstructure:"log"`
}

// HashConfig tunes perfect-hash table construction
type HashConfig struct {
	// MaxAttempts bounds the number of seeds tried before giving up
	MaxAttempts int `mapstructure:"max_attempts"`
}

// LogConfig controls the global logger
type LogConfig struct {
	JSON      bool   `mapstructure:"json"`
	Verbosity int    `mapstructure:"verbosity"`
	Theme     string `mapstructure:"theme"`
}
