package skillatom

import "github.com/abhisek/questforge/internal/quest"

// AtomType classifies what kind of thing a skill atom is.
type AtomType string

const (
	TypeConcept   AtomType = "concept"
	TypeProcedure AtomType = "procedure"
	TypeHabit     AtomType = "habit"
)

// ValidType reports whether t is a known atom type.
func ValidType(t AtomType) bool {
	return t == TypeConcept || t == TypeProcedure || t == TypeHabit
}

// Atom is a single node in the skill graph. Atoms are produced by the
// skill-map collaborator and are read-only here: the planner consumes
// them but never rewrites the graph.
type Atom struct {
	ID                string
	Label             string
	Type              AtomType
	Level             int
	Prereqs           []string
	SuggestedPatterns []quest.Pattern
}
