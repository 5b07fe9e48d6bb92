// Package input 定义菜单使用的按键编码、输入事件以及边沿触发过滤器
//
// 按键编码与平台无关：可打印的 ASCII 键使用其小写字符编码，
// 方向键、回车、ESC 使用固定编码。KeyNone (0) 表示无效键，不会触发任何动作。
package input

import "fmt"

// KeyCode is a raw key identifier compared directly against configured keys.
type KeyCode int32

const (
	// KeyNone 无效键（配置中无法解析的按键会退化为此值）
	KeyNone KeyCode = 0

	KeyReturn KeyCode = '\r'
	KeyEscape KeyCode = 0x1B
	KeySpace  KeyCode = ' '

	// 方向键使用超出 ASCII 范围的编码，避免与字符键冲突
	KeyArrowRight KeyCode = 0x4000004F
	KeyArrowLeft  KeyCode = 0x40000050
	KeyArrowDown  KeyCode = 0x40000051
	KeyArrowUp    KeyCode = 0x40000052
)

// ParseKey converts a configured key string into a KeyCode.
//
// Only single printable ASCII characters are accepted. Letters are folded to
// lower case. Anything else (empty, multi-character or non-ASCII strings) yields
// KeyNone and false; callers drop such keys rather than binding code 0.
func ParseKey(s string) (KeyCode, bool) {
	if len(s) != 1 {
		return KeyNone, false
	}
	c := s[0]
	if c < 0x20 || c > 0x7E {
		return KeyNone, false
	}
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return KeyCode(c), true
}

// String 返回便于日志阅读的按键名称
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyReturn:
		return "Return"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	}
	if k > 0x20 && k <= 0x7E {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(0x%X)", int32(k))
}
