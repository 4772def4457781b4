package karl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardLogsFatalAndInterrupts(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	defer l.Close()

	interrupts := 0
	orig := sendInterrupt
	sendInterrupt = func() error { interrupts++; return nil }
	defer func() { sendInterrupt = orig }()

	func() {
		defer l.Guard()
		panic("queue corrupted")
	}()

	assert.Equal(t, 1, interrupts)

	line := strings.TrimSuffix(buf.String(), "\n")
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &m))
	assert.Equal(t, "FATAL", m["level"])
	msg, _ := m["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "Uncaught exception: queue corrupted"), "message: %q", msg)
	assert.Contains(t, msg, "goroutine") // stack trace follows the prefix
}

func TestGuardWithoutPanicIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)
	defer l.Close()

	interrupts := 0
	orig := sendInterrupt
	sendInterrupt = func() error { interrupts++; return nil }
	defer func() { sendInterrupt = orig }()

	func() {
		defer l.Guard()
	}()
	l.Flush()

	assert.Zero(t, interrupts)
	assert.Zero(t, buf.Len())
}
