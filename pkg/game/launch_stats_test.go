package game

import (
	"errors"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/arcademenu/pkg/menu"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestLaunchStatsMemoryOnly(t *testing.T) {
	ls := NewLaunchStats(nil)
	if ls.Persistent() {
		t.Error("nil gdata manager should be memory-only")
	}

	ls.RecordLaunch(menu.LaunchResult{Item: "pacman", Command: "mame pacman", ExitCode: 0, Duration: time.Minute})
	ls.RecordLaunch(menu.LaunchResult{Item: "pacman", Command: "mame pacman", ExitCode: 2, Duration: time.Minute})

	stats, ok := ls.Item("pacman")
	if !ok {
		t.Fatal("Item(pacman) not found")
	}
	if stats.Launches != 2 || stats.Failures != 1 || stats.LastExitCode != 2 {
		t.Errorf("stats: %+v", stats)
	}
	if stats.TotalRuntime != 2*time.Minute {
		t.Errorf("TotalRuntime: got %s, want 2m", stats.TotalRuntime)
	}
	if err := ls.Save(); err != nil {
		t.Errorf("Save() in memory-only mode: %v", err)
	}
}

func TestLaunchStatsCountsErrors(t *testing.T) {
	ls := NewLaunchStats(nil)
	ls.RecordLaunch(menu.LaunchResult{Command: "missing-binary", ExitCode: -1, Err: errors.New("not found")})

	// 没有名称时按命令归档
	stats, ok := ls.Item("missing-binary")
	if !ok || stats.Failures != 1 {
		t.Errorf("stats: %+v, %v", stats, ok)
	}
	if _, ok := ls.Item("unknown"); ok {
		t.Error("Item(unknown) should not exist")
	}
}

func TestLaunchStatsPersistence(t *testing.T) {
	manager := openTestGdata(t, "test_arcademenu_stats")

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ls := NewLaunchStats(manager)
	if !ls.Persistent() {
		t.Fatal("expected persistent stats")
	}
	ls.RecordLaunch(menu.LaunchResult{
		ID:       "launch-1",
		Item:     "galaga",
		Command:  "mame galaga",
		Started:  started,
		Duration: 90 * time.Second,
	})

	reloaded := NewLaunchStats(manager)
	stats, ok := reloaded.Item("galaga")
	if !ok {
		t.Fatal("stats were not persisted")
	}
	if stats.Launches != 1 || stats.LastLaunchID != "launch-1" {
		t.Errorf("reloaded stats: %+v", stats)
	}
	if !stats.LastStarted.Equal(started) {
		t.Errorf("LastStarted: got %v, want %v", stats.LastStarted, started)
	}
	if stats.TotalRuntime != 90*time.Second {
		t.Errorf("TotalRuntime: got %s, want 1m30s", stats.TotalRuntime)
	}
}

func TestLaunchStatsCorruptData(t *testing.T) {
	manager := openTestGdata(t, "test_arcademenu_corrupt")
	if err := manager.SaveObjectProp(statsObject, statsProperty, []byte("items: [not, a, map")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	ls := NewLaunchStats(manager)
	if _, ok := ls.Item("anything"); ok {
		t.Error("corrupt stats should start fresh")
	}
	ls.RecordLaunch(menu.LaunchResult{Item: "digdug"})
	if stats, _ := ls.Item("digdug"); stats.Launches != 1 {
		t.Errorf("Launches: got %d, want 1", stats.Launches)
	}
}

func TestOpenLaunchStats(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ls := OpenLaunchStats("test_arcademenu_open")
	if ls == nil {
		t.Fatal("OpenLaunchStats returned nil")
	}
	ls.RecordLaunch(menu.LaunchResult{Item: "frogger"})
	if _, ok := ls.Item("frogger"); !ok {
		t.Error("RecordLaunch was not applied")
	}
}
