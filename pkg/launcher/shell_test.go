//go:build !windows

package launcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestShellExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    int
	}{
		{"success", "true", 0},
		{"failure", "false", 1},
		{"explicit status", "exit 42", 42},
		{"pipeline", "echo hi | grep -q hi", 0},
		{"missing program", "definitely-not-a-real-program-xyz", 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			sh := &Shell{Stdout: &out, Stderr: &out}
			got, err := sh.Execute(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Execute(%q) error: %v", tt.command, err)
			}
			if got != tt.want {
				t.Errorf("Execute(%q) = %d, want %d", tt.command, got, tt.want)
			}
		})
	}
}

func TestShellOutputAndDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("ok"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sh := &Shell{Dir: dir, Env: []string{"MENU_TEST=hello"}, Stdout: &out, Stderr: &out}
	if _, err := sh.Execute(context.Background(), `cat marker.txt; echo " $MENU_TEST"`); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "ok hello" {
		t.Errorf("output = %q, want %q", got, "ok hello")
	}
}

func TestShellEmptyCommand(t *testing.T) {
	code, err := NewShell().Execute(context.Background(), "   ")
	if err == nil || code != -1 {
		t.Errorf("Execute(empty) = %d, %v; want -1 and an error", code, err)
	}
}

func TestShellContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	sh := &Shell{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	start := time.Now()
	code, err := sh.Execute(ctx, "sleep 5")
	if err == nil || code != -1 {
		t.Errorf("Execute() = %d, %v; want -1 and an error", code, err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("cancelled command ran for %s", elapsed)
	}
}

func TestUseProcessGroup(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "stdin.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer regular.Close()

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()

	tests := []struct {
		name  string
		stdin *os.File
		want  bool
	}{
		{"no stdin", nil, true},
		{"regular file", regular, true},
		// 字符设备与终端同样处理
		{"character device", devNull, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := useProcessGroup(tt.stdin); got != tt.want {
				t.Errorf("useProcessGroup() = %v, want %v", got, tt.want)
			}

			cmd := buildCommand(context.Background(), "true", tt.stdin)
			grouped := cmd.SysProcAttr != nil && cmd.SysProcAttr.Setpgid
			if grouped != tt.want {
				t.Errorf("buildCommand() Setpgid = %v, want %v", grouped, tt.want)
			}
			if cmd.Cancel == nil {
				t.Error("buildCommand() left Cancel unset")
			}
		})
	}
}
