//go:build !windows

package launcher

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// orphanWaitDelay 只终止 shell 时，等待残留子进程释放输出管道的上限
const orphanWaitDelay = 2 * time.Second

// buildCommand 通过 /bin/sh 运行，子进程放入独立进程组以便整体终止。
// stdin 是终端（字符设备）时例外：后台进程组读取终端会收到 SIGTTIN 而被挂起，
// 此时子进程留在菜单的进程组里，取消时只向它本身发信号。
func buildCommand(ctx context.Context, command string, stdin *os.File) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	if !useProcessGroup(stdin) {
		cmd.Cancel = func() error {
			return cmd.Process.Signal(syscall.SIGTERM)
		}
		cmd.WaitDelay = orphanWaitDelay
		return cmd
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	return cmd
}

// useProcessGroup reports whether the child can run in its own process group
// without losing access to stdin.
func useProcessGroup(stdin *os.File) bool {
	if stdin == nil {
		return true
	}
	info, err := stdin.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice == 0
}
