package tst_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/harness/pkg/result"
	"github.com/specvital/harness/pkg/tst"
)

// spyResult records the calls it receives.
type spyResult struct {
	calls []string
}

func (s *spyResult) StartTest(name string) { s.calls = append(s.calls, "start:"+name) }
func (s *spyResult) EndTest()              { s.calls = append(s.calls, "end") }
func (s *spyResult) StartTestFunction()    { s.calls = append(s.calls, "fstart") }
func (s *spyResult) EndTestFunction()      { s.calls = append(s.calls, "fend") }

func (s *spyResult) Assert(cond bool, _ string, _ int, msg string) bool {
	s.calls = append(s.calls, fmt.Sprintf("assert:%t:%s", cond, msg))
	return cond
}

// hooked is a test instance with setup and teardown hooks.
type hooked struct {
	log *[]string
}

func (h *hooked) SetUp()    { *h.log = append(*h.log, "setup") }
func (h *hooked) TearDown() { *h.log = append(*h.log, "teardown") }

func newResult(buf *bytes.Buffer, opts ...result.Option) *result.Default {
	opts = append([]result.Option{result.WithLogger(slogutil.NewDiscardLogger())}, opts...)
	return result.New(buf, opts...)
}

func TestCase_Run_ScenarioA(t *testing.T) {
	t.Parallel()

	// Given
	type sample struct{}
	c := tst.NewCase(&sample{}, "MyTest1")
	require.True(t, c.Add(func(_ *sample, r result.Result) { tst.CheckM(r, false, "x") }))
	require.True(t, c.Add(func(_ *sample, r result.Result) { tst.Check(r, true) }))

	buf := &bytes.Buffer{}
	r := newResult(buf)

	// When
	c.Run(r)

	// Then
	assert.Equal(t, 1, r.TestsRun())
	assert.Equal(t, 1, r.TestsFailed())
	assert.Equal(t, 2, r.AssertionsChecked())
	assert.Equal(t, 1, r.AssertionsFailed())
	assert.Equal(t, 2, r.FunctionsRun())
	assert.Equal(t, 1, r.FunctionsFailed())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Error: "), out)
	assert.Contains(t, out, "case_test.go (")
	assert.True(t, strings.HasSuffix(out, "): MyTest1: x\n"), out)
}

func TestCase_Run_ScenarioC_FatalFailure(t *testing.T) {
	t.Parallel()

	// Given
	type sample struct{ reached bool }
	inst := &sample{}
	c := tst.NewCase(inst, "fatal")
	c.Add(func(s *sample, r result.Result) {
		tst.RequireM(r, false, "stop")
		s.reached = true
		tst.Check(r, false)
	})
	c.Add(func(_ *sample, r result.Result) { tst.Check(r, true) })

	r := newResult(&bytes.Buffer{}, result.WithRecording(true))

	// When
	c.Run(r)

	// Then
	assert.False(t, inst.reached, "code after a fatal failure must not run")
	assert.Equal(t, 2, r.AssertionsChecked())
	assert.Equal(t, 1, r.AssertionsFailed())
	assert.Equal(t, 2, r.FunctionsRun())
	assert.Equal(t, 1, r.FunctionsFailed())
	assert.Equal(t, 1, r.TestsFailed())

	rep := r.Report()
	require.Len(t, rep.Tests, 1)
	require.Len(t, rep.Tests[0].Failures, 1)
	assert.Equal(t, "stop", rep.Tests[0].Failures[0].Message)
}

func TestCase_Run_CallOrder(t *testing.T) {
	t.Parallel()

	// Given
	var log []string
	inst := &hooked{log: &log}
	c := tst.NewCase(inst, "hooks")
	c.Add(func(h *hooked, r result.Result) {
		*h.log = append(*h.log, "first")
		tst.FailNow(r, "abort")
	})
	c.Add(func(h *hooked, _ result.Result) {
		*h.log = append(*h.log, "second")
	})

	spy := &spyResult{}

	// When
	c.Run(spy)

	// Then
	assert.Equal(t, []string{"setup", "first", "teardown", "setup", "second", "teardown"}, log)
	assert.Equal(t, []string{
		"start:hooks",
		"fstart", "assert:false:abort", "fend",
		"fstart", "fend",
		"end",
	}, spy.calls)
}

func TestCase_Run_UnexpectedPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic func()
	}{
		{name: "should contain panic with error", panic: func() { panic(errors.New("boom")) }},
		{name: "should contain panic with string", panic: func() { panic("boom") }},
		{name: "should contain runtime error", panic: func() {
			var m map[string]int
			m["x"] = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Given
			type sample struct{}
			var secondRan bool
			c := tst.NewCase(&sample{}, "panics")
			c.Add(func(_ *sample, r result.Result) {
				tst.Check(r, true)
				tt.panic()
			})
			c.Add(func(_ *sample, r result.Result) {
				secondRan = true
				tst.Check(r, true)
			})

			buf := &bytes.Buffer{}
			r := newResult(buf)

			// When
			require.NotPanics(t, func() { c.Run(r) })

			// Then
			assert.True(t, secondRan)
			assert.Equal(t, 3, r.AssertionsChecked())
			assert.Equal(t, 1, r.AssertionsFailed())
			assert.Equal(t, 1, r.FunctionsFailed())
			assert.Contains(t, buf.String(), ": panics: "+tst.UnexpectedFailureMessage+"\n")
		})
	}
}

func TestCase_Add(t *testing.T) {
	t.Parallel()

	type sample struct{}
	noop := func(*sample, result.Result) {}

	t.Run("should reject nil test function", func(t *testing.T) {
		t.Parallel()

		c := tst.NewCase(&sample{}, "")
		assert.False(t, c.Add(nil))
		assert.Zero(t, c.Len())
	})

	t.Run("should reject once capacity is exhausted", func(t *testing.T) {
		t.Parallel()

		c := tst.NewCase(&sample{}, "", tst.WithCapacity(2))
		assert.True(t, c.Add(noop))
		assert.True(t, c.Add(noop))
		assert.False(t, c.Add(noop))
		assert.Equal(t, 2, c.Len())
	})

	t.Run("should default to 256 functions", func(t *testing.T) {
		t.Parallel()

		c := tst.NewCase(&sample{}, "")
		for range 256 {
			require.True(t, c.Add(noop))
		}
		assert.False(t, c.Add(noop))
	})

	t.Run("should be unbounded with non-positive capacity", func(t *testing.T) {
		t.Parallel()

		c := tst.NewCase(&sample{}, "", tst.WithCapacity(0))
		for range 300 {
			require.True(t, c.Add(noop))
		}
	})
}

func TestNewCase_NilInstance(t *testing.T) {
	t.Parallel()

	// Given
	c := tst.NewCase[hooked](nil, "nil")

	// When
	added := tst.NewSuite().Add(c)

	// Then
	assert.Nil(t, c)
	assert.False(t, added)
}

func TestCase_Run_Empty(t *testing.T) {
	t.Parallel()

	type sample struct{}
	buf := &bytes.Buffer{}
	r := newResult(buf, result.WithVerbose(true))

	tst.NewCase(&sample{}, "empty").Run(r)

	assert.Equal(t, 1, r.TestsRun())
	assert.Zero(t, r.TestsFailed())
	assert.Equal(t, "empty:\n\t0/0 (100%):\tSuccessful\n", buf.String())
}

func TestCheckf(t *testing.T) {
	t.Parallel()

	spy := &spyResult{}

	assert.True(t, tst.Checkf(spy, true, "unused %d", 1))
	assert.False(t, tst.Checkf(spy, false, "got %d, want %d", 1, 2))

	assert.Equal(t, []string{"assert:true:", "assert:false:got 1, want 2"}, spy.calls)
}
