package input

// EventKind 输入事件类型
type EventKind int

const (
	// EventQuit 退出请求（如窗口关闭）
	EventQuit EventKind = iota
	// EventKeyDown 按键按下
	EventKeyDown
	// EventKeyUp 按键释放
	EventKeyUp
)

// Event is a single discrete input event.
type Event struct {
	Kind EventKind
	Code KeyCode
}

// Source produces the events that arrived since the previous poll.
//
// Poll must never block. Implementations append to dst and return the
// extended slice, in the manner of inpututil.AppendJustPressedKeys.
type Source interface {
	Poll(dst []Event) []Event
}

// KeyArrowDown 构造按下事件
func KeyDown(code KeyCode) Event { return Event{Kind: EventKeyDown, Code: code} }

// KeyArrowUp 构造释放事件
func KeyUp(code KeyCode) Event { return Event{Kind: EventKeyUp, Code: code} }

// Quit 构造退出事件
func Quit() Event { return Event{Kind: EventQuit} }
