package questions

import "github.com/abhisek/questforge/internal/quest"

// Category groups bank items by the kind of profile gap they close.
type Category string

const (
	CategoryTime       Category = "time"
	CategoryGoal       Category = "goal"
	CategoryPreference Category = "preference"
	CategoryConstraint Category = "constraint"
	CategoryModality   Category = "modality"
)

// Kind is the interaction form of a question.
type Kind string

const (
	KindFixedChoice Kind = "fixed_choice"
	KindFreeText    Kind = "free_text"
)

// BankItem is a static catalogue entry. The catalogue never changes at
// runtime; scoring augments items into Scored values per planning cycle.
type BankItem struct {
	ID       string
	Category Category
	Field    string // profile field this question fills
	Prompt   string
	Kind     Kind
	Choices  []string

	// AppliesTo gates the question on the current profile and goal.
	// A nil predicate means always applicable.
	AppliesTo func(goalText string, p quest.Profile) bool

	// InfoGainHint is the expected information gain when the field is
	// entirely unknown.
	InfoGainHint float64

	// FatigueWeight is how much answering this question costs the user.
	// Free-text questions carry more weight than taps.
	FatigueWeight float64

	// Keywords boost relevance when they appear in the goal text.
	Keywords []string
}

// categoryWeights is the base relevance per category.
var categoryWeights = map[Category]float64{
	CategoryTime:       0.9,
	CategoryGoal:       0.85,
	CategoryConstraint: 0.8,
	CategoryModality:   0.7,
	CategoryPreference: 0.6,
}

// DefaultBank returns the standard question catalogue, ordered by ID.
func DefaultBank() []BankItem {
	return []BankItem{
		{
			ID:            "q01_time_budget",
			Category:      CategoryTime,
			Field:         "time_budget",
			Prompt:        "How many minutes per day can you usually spend?",
			Kind:          KindFixedChoice,
			Choices:       []string{"15", "30", "60", "90+"},
			InfoGainHint:  0.9,
			FatigueWeight: 0.1,
		},
		{
			ID:            "q02_session_length",
			Category:      CategoryTime,
			Field:         "session_length",
			Prompt:        "Do you prefer one long session or several short ones?",
			Kind:          KindFixedChoice,
			Choices:       []string{"one long", "several short", "no preference"},
			InfoGainHint:  0.7,
			FatigueWeight: 0.1,
		},
		{
			ID:            "q03_goal_deadline",
			Category:      CategoryGoal,
			Field:         "deadline",
			Prompt:        "Is there a date you want to reach this goal by?",
			Kind:          KindFreeText,
			InfoGainHint:  0.6,
			FatigueWeight: 0.4,
			Keywords:      []string{"exam", "interview", "test", "trip", "deadline"},
		},
		{
			ID:            "q04_goal_depth",
			Category:      CategoryGoal,
			Field:         "goal_depth",
			Prompt:        "What does success look like for this goal?",
			Kind:          KindFreeText,
			InfoGainHint:  0.8,
			FatigueWeight: 0.5,
		},
		{
			ID:            "q05_env_audio",
			Category:      CategoryConstraint,
			Field:         "env_audio",
			Prompt:        "Can you practice out loud where you study?",
			Kind:          KindFixedChoice,
			Choices:       []string{"yes", "no", "sometimes"},
			InfoGainHint:  0.7,
			FatigueWeight: 0.15,
			Keywords:      []string{"speaking", "listening", "pronunciation", "language"},
		},
		{
			ID:            "q06_env_device",
			Category:      CategoryConstraint,
			Field:         "env_device",
			Prompt:        "Will you have a computer available, or phone only?",
			Kind:          KindFixedChoice,
			Choices:       []string{"computer", "phone only", "both"},
			InfoGainHint:  0.65,
			FatigueWeight: 0.15,
			Keywords:      []string{"coding", "programming", "build", "software"},
		},
		{
			ID:            "q07_difficulty_appetite",
			Category:      CategoryPreference,
			Field:         "difficulty_tolerance",
			Prompt:        "When practice gets hard, do you push through or prefer to ease off?",
			Kind:          KindFixedChoice,
			Choices:       []string{"push through", "ease off", "depends"},
			InfoGainHint:  0.6,
			FatigueWeight: 0.2,
		},
		{
			ID:            "q08_novelty",
			Category:      CategoryPreference,
			Field:         "novelty_preference",
			Prompt:        "Do you like varied activities or a steady routine?",
			Kind:          KindFixedChoice,
			Choices:       []string{"varied", "routine", "mix"},
			InfoGainHint:  0.5,
			FatigueWeight: 0.2,
		},
		{
			ID:            "q09_modality",
			Category:      CategoryModality,
			Field:         "modality",
			Prompt:        "How do you learn best?",
			Kind:          KindFixedChoice,
			Choices:       []string{"reading", "listening", "doing", "mixed"},
			InfoGainHint:  0.6,
			FatigueWeight: 0.15,
		},
		{
			ID:            "q10_deliverable",
			Category:      CategoryModality,
			Field:         "deliverable",
			Prompt:        "What would you like to have produced at the end of each quest?",
			Kind:          KindFreeText,
			InfoGainHint:  0.5,
			FatigueWeight: 0.45,
			Keywords:      []string{"portfolio", "notes", "project"},
		},
		{
			ID:       "q11_prior_experience",
			Category: CategoryGoal,
			Field:    "prior_experience",
			Prompt:   "Have you studied this before?",
			Kind:     KindFixedChoice,
			Choices:  []string{"never", "a little", "a lot"},
			AppliesTo: func(_ string, p quest.Profile) bool {
				_, known := p.Known("prior_experience")
				_, level := p.Known("level")
				return !known || !level
			},
			InfoGainHint:  0.75,
			FatigueWeight: 0.1,
		},
	}
}
