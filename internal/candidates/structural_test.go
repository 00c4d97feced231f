package candidates

import (
	"strings"
	"testing"

	"github.com/abhisek/questforge/internal/quest"
)

func validQuest() *quest.Quest {
	return &quest.Quest{
		Title:       "Drill 20 irregular verbs from this week's reading",
		Pattern:     quest.PatternFlashcards,
		Minutes:     20,
		Difficulty:  0.5,
		Deliverable: "A 20-card deck with one full review pass",
		Steps:       []string{"Make the cards", "Run a review pass"},
		Criteria:    []string{"All 20 cards reviewed"},
		Tags:        []string{"vocabulary"},
	}
}

func TestStructural_ValidQuest(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuest(), Input{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyTitle(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuest()
	q.Title = ""
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_TitleTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuest()
	q.Title = strings.Repeat("a", 121)
	if err := v.Validate(q, Input{}); err == nil {
		t.Fatal("expected error for long title")
	}
}

func TestStructural_EmptyDeliverable(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuest()
	q.Deliverable = ""
	if err := v.Validate(q, Input{}); err == nil {
		t.Fatal("expected error for empty deliverable")
	}
}

func TestPattern_UnknownPattern(t *testing.T) {
	v := &PatternValidator{}
	q := validQuest()
	q.Pattern = "interpretive_dance"
	err := v.Validate(q, Input{})
	if err == nil {
		t.Fatal("expected error for unknown pattern")
	}
	if err.Validator != "pattern" {
		t.Errorf("expected validator %q, got %q", "pattern", err.Validator)
	}
}

func TestBounds_MinutesOutOfRange(t *testing.T) {
	v := &BoundsValidator{}
	for _, minutes := range []int{5, 0, 91, 200} {
		q := validQuest()
		q.Minutes = minutes
		if err := v.Validate(q, Input{}); err == nil {
			t.Errorf("minutes=%d: expected error", minutes)
		}
	}
}

func TestBounds_DifficultyOutOfRange(t *testing.T) {
	v := &BoundsValidator{}
	for _, d := range []float64{-0.1, 1.1, 2.0} {
		q := validQuest()
		q.Difficulty = d
		if err := v.Validate(q, Input{}); err == nil {
			t.Errorf("difficulty=%v: expected error", d)
		}
	}
}
