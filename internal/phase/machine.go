// Package phase implements the generic motion-phase machine shared by all
// exercise evaluators. Each exercise supplies a closed phase set, ordered
// transition rules, and a marker for the transition that completes one
// repetition.
package phase

import "github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"

// Phase names one stage within a repetition cycle. Each exercise declares its
// own closed set of phases.
type Phase string

// Rule describes one allowed transition. Rules are evaluated in declaration
// order for the current phase; the first rule whose condition holds fires.
type Rule struct {
	From Phase
	To   Phase
	When func(*pose.Frame) bool
	// CompletesRep marks the transition that closes a full repetition cycle.
	CompletesRep bool
}

// Spec is the static phase definition an exercise hands to NewMachine.
type Spec struct {
	Initial Phase
	Rules   []Rule
}

// Machine tracks the active phase and repetition count for one session. It is
// not safe for concurrent use; each session owns exactly one instance.
type Machine struct {
	spec    Spec
	current Phase
	reps    int
}

// NewMachine creates a machine positioned at the spec's initial phase with a
// zero rep count.
func NewMachine(spec Spec) *Machine {
	return &Machine{spec: spec, current: spec.Initial}
}

// Advance evaluates the transition rules for the current phase against the
// frame and applies the first whose condition holds. At most one transition
// fires per frame; there is no chaining. If the applied transition is the
// completion transition, the rep counter increments exactly once.
//
// Callers must not invoke Advance for frames that failed the visibility gate:
// skipping the call stalls the machine through detector dropout so reps are
// neither falsely counted nor lost.
func (m *Machine) Advance(f *pose.Frame) {
	for _, r := range m.spec.Rules {
		if r.From != m.current {
			continue
		}
		if !r.When(f) {
			continue
		}
		m.current = r.To
		if r.CompletesRep {
			m.reps++
		}
		return
	}
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase {
	return m.current
}

// Reps returns the number of completed repetition cycles.
func (m *Machine) Reps() int {
	return m.reps
}
