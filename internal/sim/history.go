package sim

import (
	"sort"

	"cbdc-sim/internal/model"
)

// Snapshot is one flattened economic state: fixed schema fields plus
// whatever extension entries existed at snapshot time.
type Snapshot map[string]float64

// History is the ordered, append-only sequence of snapshots produced by a
// run. Entry 0 is the initial state; entry i (i ≥ 1) is the state after the
// i-th saved period. It is the primary artifact for "what happened" in a
// simulation.
type History []Snapshot

// Columns returns a stable column ordering covering every key that appears
// anywhere in the history: the fixed schema first, then extension keys in
// lexical order.
func (h History) Columns() []string {
	fixed := model.StateFieldNames()
	inFixed := make(map[string]bool, len(fixed))
	for _, name := range fixed {
		inFixed[name] = true
	}

	extraSet := make(map[string]bool)
	for _, snap := range h {
		for name := range snap {
			if !inFixed[name] {
				extraSet[name] = true
			}
		}
	}
	extras := make([]string, 0, len(extraSet))
	for name := range extraSet {
		extras = append(extras, name)
	}
	sort.Strings(extras)

	return append(fixed, extras...)
}

// Result bundles a completed run.
type Result struct {
	History History

	// Periods is the number of simulated periods (the configured horizon).
	Periods int
}

// Final returns the last snapshot, or nil for an empty history.
func (r *Result) Final() Snapshot {
	if len(r.History) == 0 {
		return nil
	}
	return r.History[len(r.History)-1]
}
