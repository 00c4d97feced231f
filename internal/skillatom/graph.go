package skillatom

import (
	"fmt"
	"sort"
	"strings"
)

// Graph holds a validated skill-atom DAG with precomputed indices.
// Unlike a static seed graph, atom sets arrive per user from the
// skill-map collaborator, so Graph is an ordinary value built with New.
type Graph struct {
	atoms      []Atom
	byID       map[string]*Atom
	dependents map[string][]string
	topoOrder  []string
	topoIndex  map[string]int
}

// New validates the atom set and builds all indices, including a
// deterministic topological order (Kahn's algorithm with sorted queues).
func New(atoms []Atom) (*Graph, error) {
	if err := validateAtoms(atoms); err != nil {
		return nil, err
	}

	g := &Graph{
		atoms:      atoms,
		byID:       make(map[string]*Atom, len(atoms)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(atoms)),
	}

	for i := range g.atoms {
		g.byID[g.atoms[i].ID] = &g.atoms[i]
	}
	for i := range g.atoms {
		for _, pre := range g.atoms[i].Prereqs {
			g.dependents[pre] = append(g.dependents[pre], g.atoms[i].ID)
		}
	}
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}

	inDegree := make(map[string]int, len(atoms))
	for _, a := range atoms {
		inDegree[a.ID] = len(a.Prereqs)
	}
	var queue []string
	for _, a := range atoms {
		if inDegree[a.ID] == 0 {
			queue = append(queue, a.ID)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoIndex[id] = len(g.topoOrder)
		g.topoOrder = append(g.topoOrder, id)

		var ready []string
		for _, dep := range g.dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	return g, nil
}

// Len returns the number of atoms in the graph.
func (g *Graph) Len() int { return len(g.atoms) }

// Get returns the atom with the given ID.
func (g *Graph) Get(id string) (Atom, error) {
	a, ok := g.byID[id]
	if !ok {
		return Atom{}, fmt.Errorf("unknown skill atom: %q", id)
	}
	return *a, nil
}

// Atoms returns all atoms in topological order (foundational first).
func (g *Graph) Atoms() []Atom {
	out := make([]Atom, 0, len(g.atoms))
	for _, id := range g.topoOrder {
		out = append(out, *g.byID[id])
	}
	return out
}

// Dependents returns the IDs of atoms that list id as a prerequisite.
func (g *Graph) Dependents(id string) []string {
	return g.dependents[id]
}

// Frontier returns the atoms whose prerequisites are all contained in
// done, excluding atoms already in done. Ordered topologically so
// earlier entries are more foundational.
func (g *Graph) Frontier(done map[string]bool) []Atom {
	var out []Atom
	for _, id := range g.topoOrder {
		if done[id] {
			continue
		}
		a := g.byID[id]
		ready := true
		for _, pre := range a.Prereqs {
			if !done[pre] {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, *a)
		}
	}
	return out
}

// validateAtoms performs all structural checks on the atom set.
// Returns a combined error describing every problem found, or nil.
func validateAtoms(atoms []Atom) error {
	var errs []string

	idSet := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		if idSet[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate atom ID: %q", a.ID))
		}
		idSet[a.ID] = true
		if !ValidType(a.Type) {
			errs = append(errs, fmt.Sprintf("atom %q has unknown type %q", a.ID, a.Type))
		}
	}

	for _, a := range atoms {
		for _, pre := range a.Prereqs {
			if !idSet[pre] {
				errs = append(errs, fmt.Sprintf("atom %q references nonexistent prerequisite %q", a.ID, pre))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(atoms))
	adj := make(map[string][]string)
	for _, a := range atoms {
		inDegree[a.ID] = len(a.Prereqs)
		for _, pre := range a.Prereqs {
			adj[pre] = append(adj[pre], a.ID)
		}
	}
	var queue []string
	for _, a := range atoms {
		if inDegree[a.ID] == 0 {
			queue = append(queue, a.ID)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(atoms) {
		var cycleNodes []string
		for _, a := range atoms {
			if inDegree[a.ID] > 0 {
				cycleNodes = append(cycleNodes, a.ID)
			}
		}
		sort.Strings(cycleNodes)
		errs = append(errs, fmt.Sprintf("cycle detected involving atoms: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(atoms) > 0 {
		hasRoot := false
		for _, a := range atoms {
			if len(a.Prereqs) == 0 {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root atoms found (at least one atom must have no prerequisites)")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
