package karl

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() Event {
	return Event{
		Timestamp:    time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC),
		Level:        LevelInfo,
		HostName:     "worker-1",
		Process:      ProcessInfo{Name: "api", PID: 4321},
		Message:      "server started",
		FileName:     "main.go",
		FilePath:     "cmd/api",
		LineNumber:   42,
		FunctionName: "main",
	}
}

func TestJSONFormatFieldOrder(t *testing.T) {
	e := sampleEvent()
	buf := getBuf()
	defer putBuf(buf)
	appendJSONEvent(buf, &e)

	want := `{"timestamp":"2025-03-14T09:26:53.589Z","level":"INFO",` +
		`"hostName":"worker-1","process":{"name":"api","pid":4321},` +
		`"message":"server started","fileName":"main.go",` +
		`"filePath":"cmd/api","lineNumber":42,"functionName":"main"}`
	assert.Equal(t, want, buf.String())
}

func TestJSONFormatNullLocation(t *testing.T) {
	e := sampleEvent()
	e.FileName, e.FilePath, e.LineNumber = "", "", 0
	e.FunctionName = AnonymousFunction

	buf := getBuf()
	defer putBuf(buf)
	appendJSONEvent(buf, &e)

	assert.Contains(t, buf.String(),
		`"fileName":null,"filePath":null,"lineNumber":null,"functionName":"<anonymous>"`)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.b, &m))
}

func TestJSONFormatEscapesMessage(t *testing.T) {
	e := sampleEvent()
	e.Message = "line1\nline2 \"quoted\"\t\\"

	buf := getBuf()
	defer putBuf(buf)
	appendJSONEvent(buf, &e)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.b, &m))
	assert.Equal(t, e.Message, m["message"])
}

func TestJSONFormatExtras(t *testing.T) {
	e := sampleEvent()
	e.Extra = []Field{
		Str("region", "eu-west"),
		Int("shard", 3),
		Bool("primary", true),
		Float64("load", 0.75),
		Dur("elapsed", 1500 * time.Millisecond),
		Err("cause", errors.New("timeout")),
		Any("labels", map[string]string{"a": "b"}),
	}

	buf := getBuf()
	defer putBuf(buf)
	appendJSONEvent(buf, &e)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.b, &m))
	assert.Equal(t, "eu-west", m["region"])
	assert.Equal(t, float64(3), m["shard"])
	assert.Equal(t, true, m["primary"])
	assert.Equal(t, 0.75, m["load"])
	assert.Equal(t, "1.5s", m["elapsed"])
	assert.Equal(t, "timeout", m["cause"])
	assert.Equal(t, map[string]any{"a": "b"}, m["labels"])
}

func TestTextFormatWithLocationBlock(t *testing.T) {
	e := sampleEvent()
	buf := getBuf()
	defer putBuf(buf)
	appendTextEvent(buf, &e)

	want := "[INFO] 2025-03-14T09:26:53.589Z - worker-1 - api[main@cmd/api/main.go(42)]: server started"
	assert.Equal(t, want, buf.String())
}

func TestTextFormatWithoutLocationBlock(t *testing.T) {
	e := sampleEvent()
	e.FileName, e.FilePath, e.LineNumber = "", "", 0
	e.FunctionName = AnonymousFunction

	buf := getBuf()
	defer putBuf(buf)
	appendTextEvent(buf, &e)

	want := "[INFO] 2025-03-14T09:26:53.589Z - worker-1 - api: server started"
	assert.Equal(t, want, buf.String())
}

func TestTextFormatExtras(t *testing.T) {
	e := sampleEvent()
	e.Extra = []Field{Str("user", "ann"), Int("n", 2), Str("note", "two words")}

	buf := getBuf()
	defer putBuf(buf)
	appendTextEvent(buf, &e)

	assert.Contains(t, buf.String(), ` user=ann n=2 note="two words"`)
}

func TestTimestampRendersUTCMilliseconds(t *testing.T) {
	buf := getBuf()
	defer putBuf(buf)

	loc := time.FixedZone("CET", 3600)
	appendTimestamp(buf, time.Date(2025, 12, 31, 23, 59, 59, 999_000_000, loc))
	assert.Equal(t, "2025-12-31T22:59:59.999Z", buf.String())
}
