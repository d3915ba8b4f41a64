// Package tst provides the runnable test units of the harness: test cases
// grouping test functions of one instance and suites grouping other units.
package tst

import (
	"reflect"

	"github.com/specvital/harness/pkg/result"
)

// Unit is a runnable thing that reports to a result.
type Unit interface {
	// Run runs the unit, reporting everything to r.
	Run(r result.Result)
}

// Named is implemented by units that have a display name.
type Named interface {
	Name() string
}

// NameOf returns the display name of u, or an empty string if u has none.
func NameOf(u Unit) string {
	if n, ok := u.(Named); ok {
		return n.Name()
	}
	return ""
}

// isNil returns true if u is nil or holds a nil pointer.
func isNil(u any) bool {
	if u == nil {
		return true
	}

	v := reflect.ValueOf(u)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
