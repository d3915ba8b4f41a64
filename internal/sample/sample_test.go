package sample_test

import (
	"bytes"
	"testing"

	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/stretchr/testify/assert"

	"github.com/specvital/harness/internal/sample"
	"github.com/specvital/harness/pkg/result"
)

func TestNewSuite(t *testing.T) {
	t.Parallel()

	// Given
	buf := &bytes.Buffer{}
	r := result.New(buf, result.WithVerbose(true), result.WithLogger(slogutil.NewDiscardLogger()))

	// When
	sample.NewSuite().Run(r)

	// Then
	s := r.Summary()
	assert.Equal(t, 3, s.TestsRun)
	assert.Equal(t, 2, s.TestsFailed)
	assert.Equal(t, 7, s.FunctionsRun)
	assert.Equal(t, 2, s.FunctionsFailed)
	assert.Equal(t, 8, s.AssertionsChecked)
	assert.Equal(t, 2, s.AssertionsFailed)

	out := buf.String()
	assert.Contains(t, out, ": MyTest1: has to fail!\n")
	assert.Contains(t, out, "MyTest1:\n\t1/2 (50%):\tFailed\n")
	assert.Contains(t, out, "MyTest2:\n\t2/2 (100%):\tSuccessful\n")
	assert.Contains(t, out, ": Builder: builder is empty\n")
	assert.Contains(t, out, "Builder:\n\t2/3 (66%):\tFailed\n")
	assert.NotContains(t, out, "unreachable")
}
