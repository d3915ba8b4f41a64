package tst

import (
	"github.com/specvital/harness/pkg/registry"
	"github.com/specvital/harness/pkg/result"
)

// TestFunc is a test function bound to an instance of T.
type TestFunc[T any] func(instance *T, r result.Result)

// SetUpper is implemented by test instances that need preparation before
// each test function.
type SetUpper interface {
	SetUp()
}

// TearDowner is implemented by test instances that need cleanup after each
// test function. TearDown is called even if the test function failed
// fatally.
type TearDowner interface {
	TearDown()
}

// Case is a test case: an ordered set of test functions run against one
// instance. The instance is borrowed for the duration of each run.
type Case[T any] struct {
	instance *T
	name     string
	tests    *registry.Registry[TestFunc[T]]
}

var _ Unit = (*Case[struct{}])(nil)

// NewCase creates a test case for instance. name is optional. It returns nil
// if instance is nil, and suites refuse to add a nil case.
func NewCase[T any](instance *T, name string, opts ...Option) *Case[T] {
	if instance == nil {
		return nil
	}

	options := newOptions(opts)

	return &Case[T]{
		instance: instance,
		name:     name,
		tests:    registry.New[TestFunc[T]](options.Capacity),
	}
}

// Name returns the display name of the case.
func (c *Case[T]) Name() string {
	return c.name
}

// Len returns the number of registered test functions.
func (c *Case[T]) Len() int {
	return c.tests.Len()
}

// Add registers a test function. It returns false if test is nil or the
// case is full.
func (c *Case[T]) Add(test TestFunc[T]) bool {
	if test == nil {
		return false
	}
	return c.tests.Add(test)
}

// Run runs all test functions in registration order as one test. A fatal
// assertion failure or panic in a test function ends only that function.
func (c *Case[T]) Run(r result.Result) {
	r.StartTest(c.name)

	for test := range c.tests.All() {
		r.StartTestFunction()
		c.setUp()
		invoke(r, test, func() { test(c.instance, r) })
		c.tearDown()
		r.EndTestFunction()
	}

	r.EndTest()
}

func (c *Case[T]) setUp() {
	if s, ok := any(c.instance).(SetUpper); ok {
		s.SetUp()
	}
}

func (c *Case[T]) tearDown() {
	if td, ok := any(c.instance).(TearDowner); ok {
		td.TearDown()
	}
}
