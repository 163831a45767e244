package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels, categories control WHAT kind of information a command
// prints regardless of severity.
type OutputCategory int

const (
	// Level 0 - always shown
	OutputResults OutputCategory = iota // files written by import/export/init
	OutputErrors                        // diagnostics with hints

	// Level 1 (-v)
	OutputArtifacts // one line per artifact written or read

	// Level 2 (-vv)
	OutputConfig     // resolved configuration and compilation unit
	OutputTableStats // perfect-hash construction statistics

	// Level 3 (-vvv)
	OutputSource // composed declaration text
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputArtifacts:  VerbosityInfo,
	OutputConfig:     VerbosityDebug,
	OutputTableStats: VerbosityDebug,
	OutputSource:     VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputArtifacts:  "artifacts",
	OutputConfig:     "config",
	OutputTableStats: "table-stats",
	OutputSource:     "source",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
