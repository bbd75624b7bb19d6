package platform

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EveryTableEntry(t *testing.T) {
	t.Parallel()

	for _, want := range Supported() {
		t.Run(want.OSKind+"/"+want.Architecture, func(t *testing.T) {
			got, err := Resolve(want.OSKind, want.Architecture)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolve_Aliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		osKind string
		arch   string
		target string
	}{
		{"Linux", "x64", "x86_64-unknown-linux-musl"},
		{"Darwin", "x64", "x86_64-apple-darwin"},
		{"Windows_NT", "x64", "x86_64-pc-windows-msvc"},
		{"linux", "x86_64", "x86_64-unknown-linux-musl"},
		{"linux", "aarch64", "aarch64-unknown-linux-musl"},
		{" darwin ", "ARM64", "aarch64-apple-darwin"},
	}

	for _, tt := range tests {
		t.Run(tt.osKind+"/"+tt.arch, func(t *testing.T) {
			got, err := Resolve(tt.osKind, tt.arch)
			require.NoError(t, err)
			assert.Equal(t, tt.target, got.TargetTriple)
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		osKind string
		arch   string
	}{
		{"windows", "arm64"},
		{"linux", "386"},
		{"freebsd", "amd64"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.osKind+"/"+tt.arch, func(t *testing.T) {
			_, err := Resolve(tt.osKind, tt.arch)
			require.Error(t, err)

			var unsupported *core.UnsupportedPlatformError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.osKind, unsupported.OSKind)
			assert.Equal(t, tt.arch, unsupported.Architecture)
			assert.Equal(t, Supported(), unsupported.Supported)
		})
	}
}

func TestResolve_WindowsBinaryName(t *testing.T) {
	t.Parallel()

	p, err := Resolve("windows", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "capter.exe", p.BinaryName)
}

func TestSupported_ReturnsCopy(t *testing.T) {
	t.Parallel()

	table := Supported()
	table[0].TargetTriple = "mutated"

	assert.NotEqual(t, "mutated", Supported()[0].TargetTriple)
}

func TestSupported_UniquePairs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range Supported() {
		key := p.OSKind + "/" + p.Architecture
		assert.False(t, seen[key], "duplicate entry for %s", key)
		seen[key] = true
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	p, err := Current()
	if err != nil {
		var unsupported *core.UnsupportedPlatformError
		require.ErrorAs(t, err, &unsupported)
		t.Skipf("host %s/%s is not in the table", runtime.GOOS, runtime.GOARCH)
	}
	assert.Equal(t, runtime.GOOS, p.OSKind)
	assert.Equal(t, runtime.GOARCH, p.Architecture)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query", "", len(Supported())},
		{"by os", "darwin", 2},
		{"by target fragment", "musl", 2},
		{"by arch", "arm64", 2},
		{"no match", "solaris", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, Supported()))

	output := buf.String()
	for _, p := range Supported() {
		assert.Contains(t, output, p.TargetTriple)
	}
	assert.Contains(t, output, "capter.exe")
}

func TestExecutableName(t *testing.T) {
	t.Parallel()

	windows, err := Resolve("windows", "amd64")
	require.NoError(t, err)
	linux, err := Resolve("linux", "amd64")
	require.NoError(t, err)

	tests := []struct {
		name string
		base string
		p    core.SupportedPlatform
		want string
	}{
		{"default on windows", BinaryName, windows, "capter.exe"},
		{"default on linux", BinaryName, linux, "capter"},
		{"empty falls back to table", "", windows, "capter.exe"},
		{"custom on windows", "tool", windows, "tool.exe"},
		{"custom with suffix on windows", "tool.EXE", windows, "tool.EXE"},
		{"custom on linux", "tool", linux, "tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExecutableName(tt.base, tt.p))
		})
	}
}
