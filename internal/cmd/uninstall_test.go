package cmd

import (
	"path/filepath"
	"testing"

	"github.com/capterqa/capter-shim/internal/fsops"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	calls := 0
	prev := confirmAction
	confirmAction = func(_, _ string) (bool, error) {
		calls++
		return answer, nil
	}
	t.Cleanup(func() { confirmAction = prev })
	return &calls
}

func TestUninstallCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		answer      bool
		wantRemoved bool
		wantPrompts int
	}{
		{name: "yes flag skips prompt", args: []string{"--yes"}, wantRemoved: true, wantPrompts: 0},
		{name: "confirmed", answer: true, wantRemoved: true, wantPrompts: 1},
		{name: "declined", answer: false, wantRemoved: false, wantPrompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "http://127.0.0.1:0")
			calls := stubConfirm(t, tt.answer)

			fs := afero.NewOsFs()
			binDir := filepath.Dir(writeInstalledBinary(t, env, []byte("ok"), 0755))

			_, err := execute(NewUninstallCmd(env.cfg, env.log, "1.0.0"), tt.args...)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPrompts, *calls)
			assert.Equal(t, !tt.wantRemoved, fsops.Exists(fs, binDir))
			if tt.wantRemoved {
				assert.Contains(t, env.out.String(), "tool has been uninstalled")
			} else {
				assert.Contains(t, env.out.String(), "Uninstall cancelled")
			}
		})
	}
}

func TestUninstallCmd_NotInstalled(t *testing.T) {
	env := newTestEnv(t, "http://127.0.0.1:0")
	stubConfirm(t, true)

	_, err := execute(NewUninstallCmd(env.cfg, env.log, "1.0.0"), "-y")
	require.NoError(t, err)
	assert.Contains(t, env.errOut.String(), "tool is not installed")
}
