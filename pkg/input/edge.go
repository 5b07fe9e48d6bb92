package input

import "fmt"

// EdgeMode 选择边沿检测策略
type EdgeMode int

const (
	// EdgePerKey tracks every key separately: a held key cannot generate a second
	// press until it is released, and other keys are unaffected.
	EdgePerKey EdgeMode = iota
	// EdgeLatch reproduces a single global latch: after any key-down, further
	// key-downs are ignored until some other event (typically any key-up) arrives.
	EdgeLatch
)

// ParseEdgeMode 解析配置中的 edge_mode 字段（空字符串视为 per_key）
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "", "per_key":
		return EdgePerKey, nil
	case "latch":
		return EdgeLatch, nil
	default:
		return EdgePerKey, fmt.Errorf("unknown edge mode %q (expected per_key or latch)", s)
	}
}

func (m EdgeMode) String() string {
	if m == EdgeLatch {
		return "latch"
	}
	return "per_key"
}

// EdgeFilter turns a raw event stream into first-press transitions so that a
// physically held key (and OS auto-repeat) cannot fire an action repeatedly.
type EdgeFilter struct {
	mode  EdgeMode
	held  map[KeyCode]bool
	latch bool
}

// NewEdgeFilter 创建边沿过滤器
func NewEdgeFilter(mode EdgeMode) *EdgeFilter {
	return &EdgeFilter{
		mode: mode,
		held: make(map[KeyCode]bool),
	}
}

// Pressed feeds one event through the filter and reports whether it is a
// key-down that should generate an action.
func (f *EdgeFilter) Pressed(ev Event) bool {
	if f.mode == EdgeLatch {
		if ev.Kind != EventKeyDown {
			f.latch = false
			return false
		}
		if f.latch {
			return false
		}
		f.latch = true
		return true
	}

	switch ev.Kind {
	case EventKeyDown:
		if f.held[ev.Code] {
			return false
		}
		f.held[ev.Code] = true
		return true
	case EventKeyUp:
		delete(f.held, ev.Code)
	}
	return false
}

// Reset forgets every held key. Called after the menu resumes from a launched
// program, whose key releases the menu never saw.
func (f *EdgeFilter) Reset() {
	f.latch = false
	clear(f.held)
}

// Mode 返回当前策略
func (f *EdgeFilter) Mode() EdgeMode {
	return f.mode
}
