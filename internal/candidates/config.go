package candidates

// Config controls the behavior of the LLMSource.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated candidate. They execute in order; the first failure
	// rejects the candidate.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorTitles is the maximum number of recent quest titles
	// to include in the prompt for deduplication.
	MaxPriorTitles int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&PatternValidator{},
			&BoundsValidator{},
		},
		MaxTokens:      1536,
		Temperature:    0.7,
		MaxPriorTitles: 10,
	}
}
