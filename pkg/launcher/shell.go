// Package launcher runs menu item commands through the platform shell.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Shell executes a command line through the system shell and waits for it to exit.
type Shell struct {
	// Dir 子进程工作目录，为空时继承当前目录
	Dir string
	// Env 额外的环境变量（KEY=VALUE）
	Env []string
	// Stdout/Stderr 默认继承本进程
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell 创建继承标准输出的 Shell
func NewShell() *Shell {
	return &Shell{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Execute runs command and blocks until it exits. A non-zero exit status is
// returned as the code with a nil error; failures to start return -1.
func (s *Shell) Execute(ctx context.Context, command string) (int, error) {
	if strings.TrimSpace(command) == "" {
		return -1, errors.New("launcher: empty command")
	}

	cmd := buildCommand(ctx, command, os.Stdin)
	if s.Dir != "" {
		cmd.Dir = s.Dir
	}
	if len(s.Env) > 0 {
		cmd.Env = append(cmd.Environ(), s.Env...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("launcher: start %q: %w", command, err)
	}
	log.Printf("[Launcher] Started pid %d: %s", cmd.Process.Pid, command)

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// 被信号终止
		if ctx.Err() != nil {
			return -1, fmt.Errorf("launcher: %q interrupted: %w", command, ctx.Err())
		}
		return -1, fmt.Errorf("launcher: %q terminated: %w", command, err)
	default:
		return -1, fmt.Errorf("launcher: wait %q: %w", command, err)
	}
}
