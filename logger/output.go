package logger

// OutputCategory defines a category of diagnostic output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT is logged. Verdict lines are not a category: they are always printed.
type OutputCategory int

const (
	// Level 1 (-v)
	OutputProgress   OutputCategory = iota // check started/finished
	OutputSubprocess                       // rule-checker command line and exit status

	// Level 2 (-vv)
	OutputTiming      // per-check duration
	OutputConfig      // config values loaded/applied
	OutputLayoutStats // cell/shape counts of the parsed layout

	// Level 3 (-vvv)
	OutputProbes   // per-slot probe rectangles and overlap results
	OutputDataDump // full layer sets and cell name lists
)

var categoryLevels = map[OutputCategory]int{
	OutputProgress:   VerbosityInfo,
	OutputSubprocess: VerbosityInfo,

	OutputTiming:      VerbosityDebug,
	OutputConfig:      VerbosityDebug,
	OutputLayoutStats: VerbosityDebug,

	OutputProbes:   VerbosityTrace,
	OutputDataDump: VerbosityTrace,
}

var categoryNames = map[OutputCategory]string{
	OutputProgress:    "progress",
	OutputSubprocess:  "subprocess",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputLayoutStats: "layout-stats",
	OutputProbes:      "probes",
	OutputDataDump:    "data-dump",
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
