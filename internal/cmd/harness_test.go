package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/fsops"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testTokenEnv = "CAPTER_SHIM_TEST_TOKEN"

// fakeGitHub serves the three URL shapes the locators produce
type fakeGitHub struct {
	*httptest.Server
	body     string
	requests atomic.Int32
	lastAuth atomic.Value
}

func newFakeGitHub(t *testing.T, body string) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{body: body}
	f.lastAuth.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("/acme/tool/releases/download/v1.0.0/tool-v1.0.0-linux-x64", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, f.body)
	})
	mux.HandleFunc("/repos/acme/tool/releases", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]core.Release{{
			TagName: "v1.0.0",
			Assets: []core.ReleaseAsset{{
				ID:                 1,
				Name:               "tool-v1.0.0-linux-x64",
				BrowserDownloadURL: f.URL + "/dl/tool-v1.0.0-linux-x64",
			}},
		}})
	})
	mux.HandleFunc("/repos/acme/tool/releases/assets/1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, f.body)
	})
	mux.HandleFunc("/dl/tool-v1.0.0-linux-x64", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, f.body)
	})

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		f.lastAuth.Store(r.Header.Get("Authorization"))
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// testEnv wires package hooks to a fake platform and captures ui output
type testEnv struct {
	cfg    *config.Config
	log    *zerolog.Logger
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func testPlatform(target string) core.SupportedPlatform {
	return core.SupportedPlatform{
		OSKind:       runtime.GOOS,
		Architecture: runtime.GOARCH,
		TargetTriple: target,
		BinaryName:   "tool",
	}
}

func newTestEnv(t *testing.T, host string) *testEnv {
	t.Helper()

	prevPlatform := currentPlatform
	currentPlatform = func() (core.SupportedPlatform, error) { return testPlatform("linux-x64"), nil }
	t.Cleanup(func() { currentPlatform = prevPlatform })

	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	ui.DisableColors()
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.EnableColors()
	})

	t.Setenv(testTokenEnv, "")

	logger := zerolog.New(io.Discard)
	return &testEnv{
		cfg: &config.Config{
			Binary: config.BinaryConfig{Name: "tool", Repository: "acme/tool", Version: "1.0.0"},
			Release: config.ReleaseConfig{
				Strategy:     "direct",
				DownloadHost: host,
				APIHost:      host,
				TokenEnv:     testTokenEnv,
				UserAgent:    "capter-shim-test",
			},
			Paths:   config.PathsConfig{InstallRoot: t.TempDir()},
			Logging: config.LoggingConfig{Level: "disabled", Color: "never"},
		},
		log:    &logger,
		out:    &out,
		errOut: &errOut,
	}
}

// execute runs c with args, discarding cobra's own error printing
func execute(c *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

// writeInstalledBinary places content at <install_root>/bin/tool on the real
// filesystem, creating the bin directory first
func writeInstalledBinary(t *testing.T, env *testEnv, content []byte, mode os.FileMode) string {
	t.Helper()
	fs := afero.NewOsFs()
	binDir := filepath.Join(env.cfg.Paths.InstallRoot, "bin")
	require.NoError(t, fsops.EnsureDir(fs, binDir, 0755))

	binaryPath := filepath.Join(binDir, "tool")
	require.NoError(t, afero.WriteFile(fs, binaryPath, content, mode))
	require.NoError(t, fs.Chmod(binaryPath, mode))
	return binaryPath
}
