package cmd

import (
	"testing"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	t.Run("creates version command", func(t *testing.T) {
		t.Parallel()
		cmd := NewVersionCmd(&config.Config{}, "1.2.3")
		assert.NotNil(t, cmd)
		assert.Equal(t, "version", cmd.Use)
		assert.Equal(t, "Show version information", cmd.Short)
	})

	t.Run("prints shim and binary versions", func(t *testing.T) {
		t.Parallel()
		cfg := &config.Config{Binary: config.BinaryConfig{Name: "capter"}}
		out, err := execute(NewVersionCmd(cfg, "1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, "capter-shim version 1.2.3\ncapter version 1.2.3\n", out)
	})

	t.Run("pinned binary version", func(t *testing.T) {
		t.Parallel()
		cfg := &config.Config{Binary: config.BinaryConfig{Name: "capter", Version: "0.4.0"}}
		out, err := execute(NewVersionCmd(cfg, "1.2.3"))
		require.NoError(t, err)
		assert.Contains(t, out, "capter version 0.4.0")
	})
}

func TestVersionCmd_NilConfig(t *testing.T) {
	t.Parallel()
	out, err := execute(NewVersionCmd(nil, ""))
	require.NoError(t, err)
	assert.Equal(t, "capter-shim version \n", out)
}
