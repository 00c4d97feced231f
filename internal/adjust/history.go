package adjust

import "sync"

// maxHistory caps the per-user adjustment history. Oldest entries are
// evicted first.
const maxHistory = 20

// History is a bounded per-user ring of adjustment results. The
// planner serializes cycles per user, but reads (stats, monitor) can
// race an append, so access is locked.
type History struct {
	mu     sync.Mutex
	byUser map[string][]Result
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{byUser: make(map[string][]Result)}
}

// Append records a result for a user, evicting the oldest entry when
// the ring is full.
func (h *History) Append(user string, r Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ring := h.byUser[user]
	ring = append(ring, r)
	if len(ring) > maxHistory {
		ring = ring[len(ring)-maxHistory:]
	}
	h.byUser[user] = ring
}

// Recent returns a copy of the user's history, oldest first.
func (h *History) Recent(user string) []Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	ring := h.byUser[user]
	out := make([]Result, len(ring))
	copy(out, ring)
	return out
}

// Seed replaces a user's history, keeping only the newest maxHistory
// entries. Used to rebuild in-memory state from stored events.
func (h *History) Seed(user string, results []Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(results) > maxHistory {
		results = results[len(results)-maxHistory:]
	}
	ring := make([]Result, len(results))
	copy(ring, results)
	h.byUser[user] = ring
}

// RollbackRate reports the fraction of a user's recorded adjustments
// that were rollbacks.
func (h *History) RollbackRate(user string) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	ring := h.byUser[user]
	if len(ring) == 0 {
		return 0
	}
	rollbacks := 0
	for _, r := range ring {
		if r.Rollback {
			rollbacks++
		}
	}
	return float64(rollbacks) / float64(len(ring))
}
