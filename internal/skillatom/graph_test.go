package skillatom

import (
	"strings"
	"testing"
)

func chainAtoms() []Atom {
	return []Atom{
		{ID: "alphabet", Label: "Alphabet", Type: TypeConcept},
		{ID: "vocab", Label: "Core vocabulary", Type: TypeConcept, Prereqs: []string{"alphabet"}},
		{ID: "sentences", Label: "Simple sentences", Type: TypeProcedure, Prereqs: []string{"vocab"}},
		{ID: "journaling", Label: "Daily journaling", Type: TypeHabit, Prereqs: []string{"sentences"}},
	}
}

func TestNew_TopologicalOrder(t *testing.T) {
	g, err := New(chainAtoms())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	order := g.Atoms()
	index := make(map[string]int, len(order))
	for i, a := range order {
		index[a.ID] = i
	}
	for _, a := range order {
		for _, pre := range a.Prereqs {
			if index[pre] >= index[a.ID] {
				t.Errorf("prerequisite %q ordered after %q", pre, a.ID)
			}
		}
	}

	deps := g.Dependents("vocab")
	if len(deps) != 1 || deps[0] != "sentences" {
		t.Errorf("Dependents(vocab) = %v, want [sentences]", deps)
	}
}

func TestFrontier_AdvancesWithCompletion(t *testing.T) {
	g, err := New(chainAtoms())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	front := g.Frontier(nil)
	if len(front) != 1 || front[0].ID != "alphabet" {
		t.Fatalf("Frontier(nil) = %v, want just alphabet", front)
	}

	done := map[string]bool{"alphabet": true, "vocab": true}
	front = g.Frontier(done)
	if len(front) != 1 || front[0].ID != "sentences" {
		t.Errorf("Frontier = %v, want just sentences", front)
	}
	for _, a := range front {
		if done[a.ID] {
			t.Errorf("Frontier returned completed atom %q", a.ID)
		}
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		atoms []Atom
		want  string
	}{
		{
			name: "duplicate ID",
			atoms: []Atom{
				{ID: "a", Type: TypeConcept},
				{ID: "a", Type: TypeConcept},
			},
			want: "duplicate atom ID",
		},
		{
			name: "unknown type",
			atoms: []Atom{
				{ID: "a", Type: "vibe"},
			},
			want: "unknown type",
		},
		{
			name: "dangling prereq",
			atoms: []Atom{
				{ID: "a", Type: TypeConcept, Prereqs: []string{"ghost"}},
			},
			want: "nonexistent prerequisite",
		},
		{
			name: "cycle",
			atoms: []Atom{
				{ID: "a", Type: TypeConcept, Prereqs: []string{"b"}},
				{ID: "b", Type: TypeConcept, Prereqs: []string{"a"}},
			},
			want: "cycle detected",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.atoms)
			if err == nil {
				t.Fatal("New accepted invalid atoms")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestGet_UnknownAtom(t *testing.T) {
	g, err := New(chainAtoms())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.Get("missing"); err == nil {
		t.Error("Get returned no error for unknown ID")
	}
}
