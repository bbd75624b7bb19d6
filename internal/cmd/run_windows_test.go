//go:build windows

package cmd

import (
	"context"
	"os/exec"
	"strconv"
)

func exitingCommand(ctx context.Context, code int) *exec.Cmd {
	return exec.CommandContext(ctx, "cmd", "/C", "exit "+strconv.Itoa(code))
}
