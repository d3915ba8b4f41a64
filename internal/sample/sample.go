// Package sample contains the test cases run by the harness-sample command.
// They illustrate how cases are declared and registered.
package sample

import (
	"strings"

	"github.com/specvital/harness/pkg/result"
	"github.com/specvital/harness/pkg/tst"
)

// MyTest1 demonstrates a failing and a passing assertion.
type MyTest1 struct{}

// NewMyTest1 returns the case for a new MyTest1.
func NewMyTest1() *tst.Case[MyTest1] {
	c := tst.NewCase(&MyTest1{}, "MyTest1")
	c.Add((*MyTest1).TestMe1)
	c.Add((*MyTest1).TestMe2)
	return c
}

// TestMe1 always fails.
func (*MyTest1) TestMe1(r result.Result) {
	tst.CheckM(r, false, "has to fail!")
}

// TestMe2 never fails.
func (*MyTest1) TestMe2(r result.Result) {
	tst.Check(r, true)
}

// MyTest2 only contains passing assertions.
type MyTest2 struct{}

// NewMyTest2 returns the case for a new MyTest2.
func NewMyTest2() *tst.Case[MyTest2] {
	c := tst.NewCase(&MyTest2{}, "MyTest2")
	c.Add((*MyTest2).TestMe1)
	c.Add((*MyTest2).TestMe2)
	return c
}

func (*MyTest2) TestMe1(r result.Result) {
	tst.CheckM(r, true, "must not fail!")
}

func (*MyTest2) TestMe2(r result.Result) {
	tst.CheckM(r, true, "must not fail!")
}

// Builder exercises setup, teardown and fatal assertions against a
// strings.Builder that is reset before every test function.
type Builder struct {
	sb *strings.Builder
}

// NewBuilder returns the case for a new Builder.
func NewBuilder() *tst.Case[Builder] {
	c := tst.NewCase(&Builder{}, "Builder")
	c.Add((*Builder).TestWrite)
	c.Add((*Builder).TestEmptyAfterSetUp)
	c.Add((*Builder).TestFatal)
	return c
}

// SetUp implements the [tst.SetUpper] interface for *Builder.
func (b *Builder) SetUp() {
	b.sb = &strings.Builder{}
}

// TearDown implements the [tst.TearDowner] interface for *Builder.
func (b *Builder) TearDown() {
	b.sb = nil
}

func (b *Builder) TestWrite(r result.Result) {
	b.sb.WriteString("abc")
	tst.Checkf(r, b.sb.Len() == 3, "len = %d, want 3", b.sb.Len())
}

func (b *Builder) TestEmptyAfterSetUp(r result.Result) {
	tst.RequireM(r, b.sb != nil, "setup did not run")
	tst.CheckM(r, b.sb.Len() == 0, "builder not reset")
}

// TestFatal stops at its first assertion; the second is never checked.
func (b *Builder) TestFatal(r result.Result) {
	tst.RequireM(r, b.sb.Len() > 0, "builder is empty")
	tst.Fail(r, "unreachable")
}

// NewSuite returns the suite of all sample cases.
func NewSuite() *tst.Suite {
	s := tst.NewSuite(tst.WithName("sample"))
	s.Add(NewMyTest1())
	s.Add(NewMyTest2())
	s.Add(NewBuilder())
	return s
}
