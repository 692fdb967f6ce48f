package world

import (
	"fmt"

	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/entity"
	"github.com/apframework/core/rules"
)

// Simulation is an in-memory Engine double: one location handle per table
// entry, recording whatever access rules a provider installs. It answers
// reachability questions for tests and dry runs; the real host engine's
// state tracking and search stay external.
type Simulation struct {
	order     []string
	locations map[string]*simLocation
}

type simLocation struct {
	name string
	rule rules.AccessRule
}

// SetAccessRule implements rules.Location.
func (l *simLocation) SetAccessRule(rule rules.AccessRule) {
	l.rule = rule
}

// NewSimulation creates a simulation engine with one location per entry
// of the table.
func NewSimulation(table *entity.LocationTable) *Simulation {
	s := &Simulation{locations: make(map[string]*simLocation, table.Len())}
	for _, name := range table.Names() {
		s.order = append(s.order, name)
		s.locations[name] = &simLocation{name: name}
	}
	return s
}

// Location implements Engine.
func (s *Simulation) Location(name string) (rules.Location, error) {
	loc, ok := s.locations[name]
	if !ok {
		return nil, apperrors.New(apperrors.CodeWorldNotFound,
			fmt.Sprintf("engine has no location %q", name))
	}
	return loc, nil
}

// RuleCount returns how many locations carry an installed access rule.
func (s *Simulation) RuleCount() int {
	n := 0
	for _, loc := range s.locations {
		if loc.rule != nil {
			n++
		}
	}
	return n
}

// Reachable reports whether a location is reachable from the given state.
// A location with no installed rule is reachable unconditionally.
func (s *Simulation) Reachable(name string, state rules.State) (bool, error) {
	loc, ok := s.locations[name]
	if !ok {
		return false, apperrors.New(apperrors.CodeWorldNotFound,
			fmt.Sprintf("engine has no location %q", name))
	}
	if loc.rule == nil {
		return true, nil
	}
	return loc.rule(state), nil
}

// ReachableNames returns the locations reachable from the given state, in
// table order.
func (s *Simulation) ReachableNames(state rules.State) []string {
	var out []string
	for _, name := range s.order {
		loc := s.locations[name]
		if loc.rule == nil || loc.rule(state) {
			out = append(out, name)
		}
	}
	return out
}
