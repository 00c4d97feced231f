package candidates

import (
	"fmt"

	"github.com/abhisek/questforge/internal/quest"
)

// StructuralValidator checks that required fields are present and
// within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quest.Quest, _ Input) *ValidationError {
	if q.Title == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title is empty",
			Retryable: true,
		}
	}
	if len(q.Title) > 120 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title exceeds 120 characters",
			Retryable: true,
		}
	}
	if q.Deliverable == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "deliverable is empty",
			Retryable: true,
		}
	}
	if len(q.Steps) > 8 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "more than 8 steps",
			Retryable: true,
		}
	}
	return nil
}

// PatternValidator checks that the pattern is one of the fixed
// enumeration values.
type PatternValidator struct{}

func (v *PatternValidator) Name() string { return "pattern" }

func (v *PatternValidator) Validate(q *quest.Quest, _ Input) *ValidationError {
	if !quest.ValidPattern(q.Pattern) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown pattern %q", q.Pattern),
			Retryable: true,
		}
	}
	return nil
}

// BoundsValidator checks that minutes and difficulty are within range.
type BoundsValidator struct{}

func (v *BoundsValidator) Name() string { return "bounds" }

func (v *BoundsValidator) Validate(q *quest.Quest, _ Input) *ValidationError {
	if q.Minutes < quest.MinMinutes || q.Minutes > quest.MaxMinutes {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("minutes %d outside [%d, %d]", q.Minutes, quest.MinMinutes, quest.MaxMinutes),
			Retryable: true,
		}
	}
	if q.Difficulty < 0 || q.Difficulty > 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty %.2f outside [0, 1]", q.Difficulty),
			Retryable: true,
		}
	}
	return nil
}
