//go:build windows

package launcher

import (
	"context"
	"os"
	"os/exec"
)

func buildCommand(ctx context.Context, command string, _ *os.File) *exec.Cmd {
	return exec.CommandContext(ctx, "cmd.exe", "/c", command)
}
