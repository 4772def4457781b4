package karl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyToDefaults(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestOptionsFromJSON(t *testing.T) {
	opts, err := OptionsFromJSON([]byte(`{
		"colorize": true,
		"json": false,
		"includeLocationInformation": false,
		"redirectConsole": false
	}`))
	require.NoError(t, err)

	o := applyToDefaults(opts)
	assert.True(t, o.Colorize)
	assert.False(t, o.JSON)
	assert.False(t, o.IncludeLocation)
	assert.False(t, o.CaptureConsole)
}

func TestOptionsFromJSONPartialDocumentKeepsDefaults(t *testing.T) {
	opts, err := OptionsFromJSON([]byte(`{"colorize": true}`))
	require.NoError(t, err)
	require.Len(t, opts, 1)

	o := applyToDefaults(opts)
	assert.True(t, o.Colorize)
	assert.True(t, o.JSON)
	assert.True(t, o.IncludeLocation)
	assert.True(t, o.CaptureConsole)
}

func TestOptionsFromJSONIgnoresUnknownKeys(t *testing.T) {
	opts, err := OptionsFromJSON([]byte(`{"verbosity": 3, "json": true}`))
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestOptionsFromJSONRejectsInvalidDocument(t *testing.T) {
	_, err := OptionsFromJSON([]byte(`{"colorize": tru`))
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.True(t, o.IncludeLocation)
	assert.False(t, o.Colorize)
	assert.True(t, o.CaptureConsole)
	assert.True(t, o.JSON)
	assert.Nil(t, o.Enrich)
}
