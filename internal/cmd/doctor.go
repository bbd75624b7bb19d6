package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/fsops"
	"github.com/capterqa/capter-shim/internal/helpers"
	"github.com/capterqa/capter-shim/internal/paths"
	"github.com/capterqa/capter-shim/internal/platform"
	"github.com/capterqa/capter-shim/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Swapped in tests
var doctorRunner helpers.CommandRunner = helpers.NewOSCommandRunner()

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check platform, configuration and installation",
		Long: `Check that this platform is supported, the configuration is usable, the
credential is present when required, and the installed binary can run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ui.PrintHeader("System Diagnostics")

			var issues []string
			var warnings []string

			// 1. Host
			ui.PrintSubheader("Host")
			host, err := platform.DescribeHost(ctx)
			if err != nil {
				return err
			}
			ui.PrintKeyValue("OS", host.OS)
			ui.PrintKeyValue("Architecture", host.Arch)
			if host.Distribution != "" {
				ui.PrintKeyValue("Distribution", strings.TrimSpace(host.Distribution+" "+host.Version))
			}
			if host.KernelVersion != "" {
				ui.PrintKeyValue("Kernel", host.KernelVersion)
			}

			// 2. Platform
			ui.PrintSubheader("Platform")
			p, err := currentPlatform()
			if err != nil {
				ui.PrintError("%v", err)
				issues = append(issues, "No prebuilt binary is published for this platform")
			} else {
				ui.PrintSuccess("Target: %s (%s)", p.TargetTriple, p.BinaryName)
			}

			// 3. Configuration
			ui.PrintSubheader("Configuration")
			cfgErr := cfg.Validate()
			if cfgErr != nil {
				ui.PrintError("%v", cfgErr)
				issues = append(issues, fmt.Sprintf("Invalid configuration: %v", cfgErr))
			} else {
				ui.PrintSuccess("Configuration is valid")
			}
			ui.PrintKeyValue("Repository", cfg.Binary.Repository)
			ui.PrintKeyValue("Strategy", ui.ColorizeStrategy(cfg.Release.Strategy))
			ui.PrintKeyValue("Install root", cfg.Paths.InstallRoot)
			configFile := filepath.Join(paths.NewResolver(cfg).ConfigDir(), "config.toml")
			if fsops.Exists(afero.NewOsFs(), configFile) {
				ui.PrintKeyValue("Config file", configFile)
			} else {
				ui.PrintKeyValue("Config file", configFile+" (not found, using defaults)")
			}

			// 4. Credential
			ui.PrintSubheader("Credential")
			if msg, ok := checkCredential(cfg); ok {
				ui.PrintSuccess("%s", msg)
			} else if cfg.Release.Strategy == string(core.StrategyAuthenticated) {
				ui.PrintError("%s", msg)
				issues = append(issues, msg)
			} else {
				ui.PrintInfo("%s", msg)
			}

			// 5. Installation
			ui.PrintSubheader("Installation")
			if cfgErr == nil && p.TargetTriple != "" {
				desc, err := paths.NewResolver(cfg).Descriptor(p, version)
				if err != nil {
					ui.PrintError("%v", err)
					issues = append(issues, fmt.Sprintf("Cannot resolve binary: %v", err))
				} else {
					i, w := checkInstallation(ctx, afero.NewOsFs(), desc, verbose)
					issues = append(issues, i...)
					warnings = append(warnings, w...)
				}
			} else {
				ui.PrintWarning("Skipped: platform or configuration unusable")
			}

			// 6. Directories
			ui.PrintSubheader("Directory Structure")
			resolver := paths.NewResolver(cfg)
			dirs := []struct {
				path string
				name string
			}{
				{resolver.InstallRoot(), "Install root"},
				{resolver.LogDir(), "Log directory"},
			}
			for _, dir := range dirs {
				if checkDirectory(afero.NewOsFs(), dir.path) {
					ui.PrintSuccess("%s: %s", dir.name, dir.path)
				} else {
					ui.PrintWarning("%s: NOT WRITABLE (%s)", dir.name, dir.path)
					warnings = append(warnings, fmt.Sprintf("Directory not writable: %s", dir.path))
				}
			}

			// Summary
			ui.PrintHeader("Summary")

			if len(issues) == 0 {
				ui.PrintSuccess("All critical checks passed!")
			} else {
				ui.PrintError("Found %d issue(s):", len(issues))
				ui.PrintList(issues)
			}

			if len(warnings) > 0 {
				ui.PrintWarning("Found %d warning(s):", len(warnings))
				ui.PrintList(warnings)
			}

			log.Debug().
				Int("issues", len(issues)).
				Int("warnings", len(warnings)).
				Msg("doctor finished")

			if len(issues) > 0 {
				return fmt.Errorf("system check failed with %d issue(s)", len(issues))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also ask the installed binary for its version")

	return cmd
}

// checkCredential reports whether the token variable is set. The value
// itself is never printed.
func checkCredential(cfg *config.Config) (string, bool) {
	if cfg.Release.TokenEnv == "" {
		return "No token variable configured", false
	}
	if readToken(cfg) == "" {
		return fmt.Sprintf("%s is not set", cfg.Release.TokenEnv), false
	}
	return fmt.Sprintf("%s is set", cfg.Release.TokenEnv), true
}

// checkInstallation inspects the installed binary and returns issues and warnings
func checkInstallation(ctx context.Context, fs afero.Fs, desc *core.BinaryDescriptor, verbose bool) (issues, warnings []string) {
	binaryPath := desc.BinaryPath()

	if !fsops.Exists(fs, binaryPath) {
		ui.PrintWarning("%s is not installed (%s)", desc.Name(), binaryPath)
		warnings = append(warnings, fmt.Sprintf("%s is not installed; run capter-shim install", desc.Name()))
		return issues, warnings
	}
	ui.PrintSuccess("Binary: %s", binaryPath)

	if !fsops.IsExecutable(fs, binaryPath) {
		ui.PrintError("Binary is not executable")
		issues = append(issues, fmt.Sprintf("%s lacks execute permission", binaryPath))
		return issues, warnings
	}
	if _, isOS := fs.(*afero.OsFs); isOS {
		if err := fsops.CheckExecAccess(binaryPath); err != nil {
			ui.PrintError("Binary cannot be executed: %v", err)
			issues = append(issues, fmt.Sprintf("%s cannot be executed by this user", binaryPath))
			return issues, warnings
		}
	}

	fileType, err := helpers.DetectFileType(fs, binaryPath)
	if err != nil {
		ui.PrintWarning("Cannot read binary header: %v", err)
		warnings = append(warnings, "Binary header unreadable")
	} else {
		ui.PrintKeyValue("Format", string(fileType))
		switch {
		case fileType.IsArchive():
			issues = append(issues, fmt.Sprintf("%s is a %s archive, not an executable", binaryPath, fileType))
		case fileType.NativeOS() != "" && fileType.NativeOS() != runtime.GOOS:
			issues = append(issues, fmt.Sprintf("%s is built for %s, this host is %s", binaryPath, fileType.NativeOS(), runtime.GOOS))
		}
	}

	if verbose {
		vctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		stdout, _, err := doctorRunner.RunCommandWithOutput(vctx, binaryPath, "--version")
		if err != nil {
			ui.PrintWarning("%s --version failed: %v", desc.Name(), err)
			warnings = append(warnings, fmt.Sprintf("%s --version failed", desc.Name()))
		} else {
			ui.PrintKeyValue("Reported version", strings.TrimSpace(stdout))
		}
	}

	return issues, warnings
}

// checkDirectory checks if a directory exists (creating it if needed) and is writable
func checkDirectory(afs afero.Fs, path string) bool {
	if err := fsops.EnsureDir(afs, path, 0755); err != nil {
		return false
	}
	if !fsops.IsDir(afs, path) {
		return false
	}

	testFile := filepath.Join(path, ".capter-shim-test")
	if err := afero.WriteFile(afs, testFile, []byte("test"), 0644); err != nil {
		return false
	}
	_ = afs.Remove(testFile)

	return true
}
