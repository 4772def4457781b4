package karl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCallSite(t *testing.T) {
	site := resolveCallSite(0)
	require.NotZero(t, site.Line)
	assert.Equal(t, "caller_test.go", site.FileName)
	assert.Equal(t, ".", site.FilePath)
	assert.Contains(t, site.Function, "TestResolveCallSite")
}

func TestResolveCallSiteSkipsFrames(t *testing.T) {
	var site callSite
	capture := func() { site = resolveCallSite(1) }
	capture()
	assert.Contains(t, site.Function, "TestResolveCallSiteSkipsFrames")
}

func TestResolveCallSiteBeyondStack(t *testing.T) {
	site := resolveCallSite(10_000)
	assert.Equal(t, emptySite, site)
}

func TestSiteFromPCZero(t *testing.T) {
	assert.Equal(t, emptySite, siteFromPC(0))
}

func TestShortFuncName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"github.com/KurtPattyn/karl.resolveCallSite", "resolveCallSite"},
		{"github.com/KurtPattyn/karl.(*Logger).Info", "(*Logger).Info"},
		{"main.main", "main"},
		{"main.main.func1", "main.func1"},
		{"", AnonymousFunction},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, shortFuncName(c.in), "input %q", c.in)
	}
}

func TestEmptySiteAppliesSentinel(t *testing.T) {
	var e Event
	emptySite.apply(&e)
	assert.Empty(t, e.FileName)
	assert.Empty(t, e.FilePath)
	assert.Zero(t, e.LineNumber)
	assert.Equal(t, AnonymousFunction, e.FunctionName)
	assert.False(t, e.located())
}

func TestSiteApplyPopulatesAllFields(t *testing.T) {
	s := callSite{FileName: "a.go", FilePath: "pkg", Line: 7, Function: "do"}
	var e Event
	s.apply(&e)
	assert.Equal(t, "a.go", e.FileName)
	assert.Equal(t, "pkg", e.FilePath)
	assert.Equal(t, 7, e.LineNumber)
	assert.Equal(t, "do", e.FunctionName)
	assert.True(t, e.located())
}
