package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestPrintStatusLines(t *testing.T) {
	buf := capture(t)

	PrintSuccess("written", "6 files")
	PrintError("failed", "command \"Toggle\"")
	PrintWarning("skipped", "1 unit")

	out := buf.String()
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "6 files")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "command \"Toggle\"")
	assert.Contains(t, out, "!")
}

func TestPrintDiffColorsLines(t *testing.T) {
	buf := capture(t)

	PrintDiff("--- a/x.cs\n+++ b/x.cs\n@@ -1 +1 @@\n-old\n+new\n same\n")

	out := buf.String()
	assert.Contains(t, out, ColorRed+"-old"+ColorReset+"\n")
	assert.Contains(t, out, ColorGreen+"+new"+ColorReset+"\n")
	assert.Contains(t, out, ColorCyan+"@@ -1 +1 @@"+ColorReset+"\n")
	assert.Contains(t, out, ColorBold+"--- a/x.cs"+ColorReset+"\n")
	assert.Contains(t, out, " same\n")
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	capture(t)

	called := false
	err := RunSpinner("generating", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	s := StartSpinner("again")
	s.Stop()
	s.Stop()
}
