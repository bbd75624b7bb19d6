// Package paths resolves where the shim keeps its files and builds the
// descriptor of the binary it manages.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/platform"
	"github.com/capterqa/capter-shim/internal/security"
)

// Resolver centralizes the shim's default locations.
// It derives base directories from HOME and the configuration.
type Resolver struct {
	homeDir string
	cfg     *config.Config
}

// NewResolver creates a Resolver using the current user's HOME
func NewResolver(cfg *config.Config) *Resolver {
	homeDir, _ := os.UserHomeDir()
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// NewResolverWithHome creates a Resolver with an explicit homeDir (for tests)
func NewResolverWithHome(cfg *config.Config, homeDir string) *Resolver {
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// InstallRoot returns paths.install_root, or ~/.local/share/capter-shim
func (r *Resolver) InstallRoot() string {
	if r.cfg != nil && r.cfg.Paths.InstallRoot != "" {
		return r.cfg.Paths.InstallRoot
	}
	return filepath.Join(r.homeDir, ".local", "share", "capter-shim")
}

// ConfigDir returns ~/.config/capter-shim
func (r *Resolver) ConfigDir() string {
	return filepath.Join(r.homeDir, ".config", "capter-shim")
}

// LogDir returns the directory holding the log file
func (r *Resolver) LogDir() string {
	if r.cfg != nil && r.cfg.Paths.LogFile != "" {
		return filepath.Dir(r.cfg.Paths.LogFile)
	}
	return r.InstallRoot()
}

// Descriptor builds the descriptor of the configured binary for p.
// version is used when binary.version is not pinned in the configuration.
func (r *Resolver) Descriptor(p core.SupportedPlatform, version string) (*core.BinaryDescriptor, error) {
	if r.cfg == nil {
		return nil, fmt.Errorf("no configuration")
	}

	if r.cfg.Binary.Version != "" {
		version = r.cfg.Binary.Version
	}
	if err := security.ValidateVersion(version); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(r.InstallRoot())
	if err != nil {
		return nil, fmt.Errorf("resolve install root: %w", err)
	}

	name := platform.ExecutableName(r.cfg.Binary.Name, p)
	if err := security.ValidateBinaryName(name); err != nil {
		return nil, err
	}

	desc := core.NewBinaryDescriptor(name, r.cfg.Binary.Repository, version, p.TargetTriple, root)

	within, err := security.IsPathWithinDirectory(desc.BinaryPath(), root)
	if err != nil {
		return nil, err
	}
	if !within {
		return nil, fmt.Errorf("binary path %s escapes install root %s", desc.BinaryPath(), root)
	}

	return desc, nil
}
