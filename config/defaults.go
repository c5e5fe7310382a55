package config

// ── Default values ───────────────────────────────────────────────────

const (
	// ProgramName is used in usage text and error prefixes.
	ProgramName = "cunnycode"

	// MaxVerbosity is the highest meaningful -v count (debug).
	MaxVerbosity = 2

	// NoInputMessage is printed to stderr when there are no args and
	// stdin is an interactive terminal.
	NoInputMessage = "You need to paste your Cunny Code into the { STDIN | FILE | ARGS } first, then I can decode it for you!"
)
