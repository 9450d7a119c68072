package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how each game is written (text, JSON, UCI)
	Format OutputFormat

	// MaxLineLength is the maximum line length for text output; 0 disables wrapping
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// KeepOutcome adds the outcome description after the result
	KeepOutcome bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          TextFormat,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}
