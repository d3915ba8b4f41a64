package runner

import (
	"path"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/specvital/harness/pkg/registry"
	"github.com/specvital/harness/pkg/tst"
)

// selectUnits returns the part of u whose name paths match any of patterns,
// or nil if nothing matches. Suites are descended into; a suite whose own
// path matches is kept entirely. Suites already on the current path are
// skipped, so cyclic suites terminate.
func selectUnits(u tst.Unit, patterns []string) tst.Unit {
	if len(patterns) == 0 {
		return u
	}

	return selectFrom(u, "", patterns, map[*tst.Suite]struct{}{})
}

func selectFrom(
	u tst.Unit,
	parent string,
	patterns []string,
	onPath map[*tst.Suite]struct{},
) tst.Unit {
	p := joinName(parent, tst.NameOf(u))
	if p != "" && matchAny(patterns, p) {
		return u
	}

	s, ok := u.(*tst.Suite)
	if !ok {
		return nil
	}

	if _, seen := onPath[s]; seen {
		return nil
	}

	onPath[s] = struct{}{}
	defer delete(onPath, s)

	sub := tst.NewSuite(tst.WithName(s.Name()), tst.WithCapacity(registry.Unbounded))
	for _, child := range s.Units() {
		if c := selectFrom(child, p, patterns, onPath); c != nil {
			sub.Add(c)
		}
	}

	if len(sub.Units()) == 0 {
		return nil
	}

	return sub
}

// joinName appends name to the name path parent. Empty names add no
// element.
func joinName(parent, name string) string {
	switch {
	case name == "":
		return parent
	case parent == "":
		return name
	default:
		return path.Join(parent, name)
	}
}

// matchAny returns true if name matches any of patterns. Malformed
// patterns match nothing.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if match, err := doublestar.Match(p, name); err == nil && match {
			return true
		}
	}

	return false
}
