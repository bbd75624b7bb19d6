package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

func TestInitColors(t *testing.T) {
	t.Run("with NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		color.NoColor = false
		InitColors("auto")

		assert.True(t, color.NoColor)
	})

	t.Run("with TERM=dumb", func(t *testing.T) {
		t.Setenv("TERM", "dumb")

		color.NoColor = false
		InitColors("auto")

		assert.True(t, color.NoColor)
	})

	t.Run("never", func(t *testing.T) {
		color.NoColor = false
		InitColors("never")

		assert.True(t, color.NoColor)
	})

	t.Run("always", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		color.NoColor = true
		InitColors("always")

		assert.False(t, color.NoColor)
	})
}

func TestPrintFunctions(t *testing.T) {
	DisableColors()
	defer EnableColors()

	t.Run("PrintSuccess", func(t *testing.T) {
		out, _ := captureOutput(t)
		PrintSuccess("test %s", "message")

		assert.Contains(t, out.String(), "✓")
		assert.Contains(t, out.String(), "test message")
	})

	t.Run("PrintError", func(t *testing.T) {
		out, errOut := captureOutput(t)
		PrintError("test %s", "error")

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "✗")
		assert.Contains(t, errOut.String(), "Error:")
		assert.Contains(t, errOut.String(), "test error")
	})

	t.Run("PrintWarning", func(t *testing.T) {
		_, errOut := captureOutput(t)
		PrintWarning("test %s", "warning")

		assert.Contains(t, errOut.String(), "Warning: test warning")
	})

	t.Run("PrintInfo", func(t *testing.T) {
		out, _ := captureOutput(t)
		PrintInfo("test %s", "info")

		assert.Contains(t, out.String(), "→")
		assert.Contains(t, out.String(), "test info")
	})

	t.Run("PrintKeyValue", func(t *testing.T) {
		out, _ := captureOutput(t)
		PrintKeyValue("Target", "x86_64-apple-darwin")

		assert.Contains(t, out.String(), "Target: x86_64-apple-darwin")
	})

	t.Run("PrintHeader and list", func(t *testing.T) {
		out, _ := captureOutput(t)
		PrintHeader("Diagnostics")
		PrintList([]string{"one", "two"})

		assert.Contains(t, out.String(), "Diagnostics")
		assert.Contains(t, out.String(), "• one")
		assert.Contains(t, out.String(), "• two")
	})
}

func TestColorizeStrategy(t *testing.T) {
	DisableColors()
	defer EnableColors()

	for _, s := range []string{"direct", "public", "authenticated", "other"} {
		assert.Equal(t, s, ColorizeStrategy(s))
	}
}

func TestSetOutput_NilRestores(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, &buf)
	assert.Equal(t, &buf, Stdout())

	SetOutput(nil, nil)
	assert.NotEqual(t, &buf, Stdout())
	assert.NotEqual(t, &buf, Stderr())
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
