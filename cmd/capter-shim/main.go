package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/capterqa/capter-shim/internal/cmd"
	"github.com/capterqa/capter-shim/internal/config"
	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/logging"
	"github.com/capterqa/capter-shim/internal/platform"
	"github.com/capterqa/capter-shim/internal/ui"
)

var version = "dev"

// logConsole receives human-readable log events; nil means stderr
var logConsole io.Writer

func main() {
	os.Exit(run(context.Background(), os.Args))
}

// run executes the shim and returns the process exit code. Invoked under
// the wrapped binary's name, every argument goes straight to that binary.
func run(ctx context.Context, argv []string) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return core.ExitGeneral
	}

	ui.InitColors(cfg.Logging.Color)

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
		Console: logConsole,
	})

	if len(argv) > 0 && invokedAs(argv[0], cfg.Binary.Name) {
		err = cmd.Proxy(ctx, cfg, log, version, argv[1:])
	} else {
		rootCmd := cmd.NewRootCmd(cfg, log, version)
		if len(argv) > 0 {
			rootCmd.SetArgs(argv[1:])
		}
		err = rootCmd.ExecuteContext(ctx)
	}

	if err != nil {
		var exitErr *core.ExitError
		// Commands already reported the error to the user
		if !errors.As(err, &exitErr) {
			log.Debug().Err(err).Msg("command failed")
		}
	}

	return core.ExitCodeFor(err)
}

// invokedAs reports whether argv0 names the wrapped binary rather than the shim
func invokedAs(argv0, name string) bool {
	base := argv0
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	if base == "" {
		return false
	}
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	return base == name || base == platform.BinaryName
}
