package tst

import (
	"reflect"
	"runtime"

	"github.com/specvital/harness/pkg/result"
)

// UnexpectedFailureMessage is the message recorded when a test function
// panics with anything but a fatal assertion failure.
const UnexpectedFailureMessage = "unexpected failure"

// fatalFailure is raised by fatal assertions to abort the rest of the
// current test function. It carries no data and never escapes invoke.
type fatalFailure struct{}

// abort unwinds the current test function.
func abort() {
	panic(fatalFailure{})
}

// invoke calls fn, containing any panic it raises. A fatal failure is
// swallowed, anything else is recorded as one failed assertion at the
// location of the test function fn.
func invoke(r result.Result, fn any, call func()) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		if _, ok := v.(fatalFailure); ok {
			return
		}

		file, line := funcLocation(fn)
		r.Assert(false, file, line, UnexpectedFailureMessage)
	}()

	call()
}

// funcLocation returns the source position of the entry of fn, which must be
// a function value.
func funcLocation(fn any) (file string, line int) {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "unknown", 0
	}

	return f.FileLine(f.Entry())
}
