package tst

import (
	"fmt"
	"runtime"

	"github.com/specvital/harness/pkg/result"
)

// Check records whether cond holds at the caller's position and returns it.
func Check(r result.Result, cond bool) bool {
	return check(r, cond, "")
}

// CheckM is like Check but includes msg in the reported error.
func CheckM(r result.Result, cond bool, msg string) bool {
	return check(r, cond, msg)
}

// Checkf is like CheckM with a formatted message. The message is only
// formatted if cond is false.
func Checkf(r result.Result, cond bool, format string, args ...any) bool {
	if cond {
		return check(r, true, "")
	}
	return check(r, false, fmt.Sprintf(format, args...))
}

// Require records whether cond holds at the caller's position. If it does
// not, the rest of the current test function is skipped.
func Require(r result.Result, cond bool) {
	if !check(r, cond, "") {
		abort()
	}
}

// RequireM is like Require but includes msg in the reported error.
func RequireM(r result.Result, cond bool, msg string) {
	if !check(r, cond, msg) {
		abort()
	}
}

// Fail records a failed assertion with msg at the caller's position.
func Fail(r result.Result, msg string) {
	check(r, false, msg)
}

// FailNow is like Fail but also skips the rest of the current test function.
func FailNow(r result.Result, msg string) {
	check(r, false, msg)
	abort()
}

// check reports cond with the position of the caller of the exported helper.
func check(r result.Result, cond bool, msg string) bool {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	return r.Assert(cond, file, line, msg)
}
