package security

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestValidateBinaryName(t *testing.T) {
	tests := []struct {
		name    string
		binary  string
		wantErr bool
	}{
		{name: "valid simple name", binary: "capter", wantErr: false},
		{name: "valid windows name", binary: "capter.exe", wantErr: false},
		{name: "valid with dashes and underscores", binary: "my-tool_v2", wantErr: false},
		{name: "empty name", binary: "", wantErr: true},
		{name: "dot", binary: ".", wantErr: true},
		{name: "dot dot", binary: "..", wantErr: true},
		{name: "name with separator", binary: "bin/capter", wantErr: true},
		{name: "name with backslash", binary: `bin\capter`, wantErr: true},
		{name: "name with spaces", binary: "cap ter", wantErr: true},
		{name: "null byte injection", binary: "capter\x00bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBinaryName(tt.binary)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBinaryName(%q) error = %v, wantErr %v", tt.binary, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRepository(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{name: "valid", repo: "capterqa/cli", wantErr: false},
		{name: "valid with dots", repo: "acme/tool.go", wantErr: false},
		{name: "empty", repo: "", wantErr: true},
		{name: "missing owner", repo: "cli", wantErr: true},
		{name: "extra segment", repo: "a/b/c", wantErr: true},
		{name: "traversal", repo: "acme/..", wantErr: true},
		{name: "query injection", repo: "acme/cli?x=1", wantErr: true},
		{name: "whitespace", repo: "acme/ cli", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepository(tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepository(%q) error = %v, wantErr %v", tt.repo, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "semver", version: "1.0.0", wantErr: false},
		{name: "prerelease", version: "1.2.3-rc.1", wantErr: false},
		{name: "build metadata", version: "1.2.3+build.5", wantErr: false},
		{name: "dev build", version: "dev", wantErr: false},
		{name: "empty", version: "", wantErr: true},
		{name: "slash", version: "1.0/../../x", wantErr: true},
		{name: "percent encoding", version: "1.0%2F", wantErr: true},
		{name: "fragment", version: "1.0#x", wantErr: true},
		{name: "newline", version: "1.0\n", wantErr: true},
		{name: "too long", version: string(make([]byte, 120)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}

func TestIsPathWithinDirectory(t *testing.T) {
	root := "/opt/tool"
	if runtime.GOOS == "windows" {
		root = `C:\opt\tool`
	}

	tests := []struct {
		name    string
		target  string
		base    string
		want    bool
		wantErr bool
	}{
		{name: "child", target: filepath.Join(root, "bin", "capter"), base: root, want: true},
		{name: "base itself", target: root, base: root, want: true},
		{name: "sibling", target: root + "-other", base: root, want: false},
		{name: "parent", target: filepath.Dir(root), base: root, want: false},
		{name: "dotted child name", target: filepath.Join(root, "..hidden"), base: root, want: true},
		{name: "relative target", target: "bin/capter", base: root, wantErr: true},
		{name: "relative base", target: root, base: "opt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPathWithinDirectory(tt.target, tt.base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsPathWithinDirectory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IsPathWithinDirectory(%q, %q) = %v, want %v", tt.target, tt.base, got, tt.want)
			}
		})
	}
}
