package policy

import "fmt"

// Trace records why the policy engine changed, dropped, or kept each
// quest, one entry per decision. It is returned with the QuestList so
// callers can show or store the reasoning.
type Trace []TraceEntry

// TraceEntry is a single rationale line tied to a pipeline step.
type TraceEntry struct {
	Step   string `json:"step"`
	Quest  string `json:"quest,omitempty"` // quest title, empty for list-level decisions
	Detail string `json:"detail"`
}

// Pipeline step names used in trace entries.
const (
	StepBudget       = "budget"
	StepSubstitution = "substitution"
	StepCountCap     = "count_cap"
	StepSessionCap   = "session_cap"
	StepReconcile    = "reconcile"
	StepDiversity    = "diversity"
	StepContract     = "contract"
	StepRubric       = "rubric"
)

func (t *Trace) add(step, questTitle, format string, args ...any) {
	*t = append(*t, TraceEntry{
		Step:   step,
		Quest:  questTitle,
		Detail: fmt.Sprintf(format, args...),
	})
}

// ForStep returns the entries recorded by one pipeline step.
func (t Trace) ForStep(step string) []TraceEntry {
	var out []TraceEntry
	for _, e := range t {
		if e.Step == step {
			out = append(out, e)
		}
	}
	return out
}
