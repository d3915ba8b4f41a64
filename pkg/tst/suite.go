package tst

import (
	"github.com/specvital/harness/pkg/registry"
	"github.com/specvital/harness/pkg/result"
)

// Suite is an ordered collection of units run in sequence. A suite does not
// own its units.
//
// Only adding a suite to itself is rejected. Deeper cycles, such as a suite
// added to one of its descendants, are not detected and make Run recurse
// without bound.
type Suite struct {
	name  string
	units *registry.Registry[Unit]
}

var _ Unit = (*Suite)(nil)

// NewSuite creates an empty suite.
func NewSuite(opts ...Option) *Suite {
	options := newOptions(opts)

	return &Suite{
		name:  options.Name,
		units: registry.New[Unit](options.Capacity),
	}
}

// Name returns the display name of the suite.
func (s *Suite) Name() string {
	return s.name
}

// Add registers u. It returns false if u is nil, is s itself or the suite is
// full.
func (s *Suite) Add(u Unit) bool {
	if isNil(u) {
		return false
	}
	if other, ok := u.(*Suite); ok && other == s {
		return false
	}
	return s.units.Add(u)
}

// Units returns a copy of the registered units.
func (s *Suite) Units() []Unit {
	return s.units.Items()
}

// Run runs all units in registration order. A failing unit does not stop
// the following ones.
func (s *Suite) Run(r result.Result) {
	for u := range s.units.All() {
		u.Run(r)
	}
}
