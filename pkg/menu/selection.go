package menu

import (
	"math"

	"github.com/decker502/arcademenu/pkg/config"
	"github.com/decker502/arcademenu/pkg/input"
)

// ActionKind 按键映射出的动作类型
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMoveLeft
	ActionMoveRight
	ActionActivate
	ActionAdjustVolume
)

func (k ActionKind) String() string {
	switch k {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionActivate:
		return "Activate"
	case ActionAdjustVolume:
		return "AdjustVolume"
	default:
		return "None"
	}
}

// Action is the result of a single key press.
// Command is set for ActionActivate, Delta for ActionAdjustVolume.
type Action struct {
	Kind    ActionKind
	Command string
	Item    string
	Delta   int
}

// KeyMap 导航、激活和音量按键
type KeyMap struct {
	Left       input.KeyCode
	Right      input.KeyCode
	Return     input.KeyCode
	VolumeUp   input.KeyCode
	VolumeDown input.KeyCode
	Activation map[input.KeyCode]struct{}
}

// NewKeyMap 由配置中解析出的按键构建 KeyMap，方向键和回车固定
func NewKeyMap(kb config.KeyBindings) KeyMap {
	activation := kb.Activation
	if activation == nil {
		activation = map[input.KeyCode]struct{}{}
	}
	return KeyMap{
		Left:       input.KeyArrowLeft,
		Right:      input.KeyArrowRight,
		Return:     input.KeyReturn,
		VolumeUp:   kb.VolumeUp,
		VolumeDown: kb.VolumeDown,
		Activation: activation,
	}
}

// SelectionState 选中索引与选中动画时间
type SelectionState struct {
	SelectedIndex int
	AnimationTime float64
}

// SelectionController owns the selected index and turns key presses into actions.
//
// It shares the item slice with the Session and keeps the per-item Selected
// flags in sync: whenever the list is non-empty exactly one item is selected.
type SelectionController struct {
	keys        KeyMap
	volumeDelta int
	items       []Item
	state       SelectionState
}

// NewSelectionController 创建选择控制器
func NewSelectionController(keys KeyMap, volumeDelta int) *SelectionController {
	return &SelectionController{
		keys:        keys,
		volumeDelta: volumeDelta,
	}
}

// Attach binds the controller to a freshly loaded item list and selects the
// first item.
func (c *SelectionController) Attach(items []Item) {
	c.items = items
	c.state = SelectionState{}
	c.syncSelected()
}

// OnKey maps a first-press key to an action and applies its selection effects.
//
// With an empty item list, navigation and activation keys yield ActionNone.
func (c *SelectionController) OnKey(code input.KeyCode) Action {
	switch code {
	case c.keys.Left:
		if !c.move(-1) {
			return Action{}
		}
		return Action{Kind: ActionMoveLeft}
	case c.keys.Right:
		if !c.move(1) {
			return Action{}
		}
		return Action{Kind: ActionMoveRight}
	case c.keys.VolumeUp:
		return Action{Kind: ActionAdjustVolume, Delta: c.volumeDelta}
	case c.keys.VolumeDown:
		return Action{Kind: ActionAdjustVolume, Delta: -c.volumeDelta}
	}

	if code == c.keys.Return || c.isActivationKey(code) {
		item, ok := c.Current()
		if !ok {
			return Action{}
		}
		return Action{Kind: ActionActivate, Command: item.Command, Item: item.Name}
	}
	return Action{}
}

func (c *SelectionController) isActivationKey(code input.KeyCode) bool {
	if code == input.KeyNone {
		return false
	}
	_, ok := c.keys.Activation[code]
	return ok
}

// move 移动选中项并钳制到 [0, n-1]；即使已在边界也会重置动画
func (c *SelectionController) move(step int) bool {
	n := len(c.items)
	if n == 0 {
		return false
	}

	idx := c.state.SelectedIndex + step
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	c.state.SelectedIndex = idx
	c.state.AnimationTime = 0
	c.syncSelected()
	return true
}

func (c *SelectionController) syncSelected() {
	for i := range c.items {
		c.items[i].Selected = i == c.state.SelectedIndex
	}
}

// Advance accumulates animation time for the current selection.
func (c *SelectionController) Advance(frameTime, speed float64) {
	if len(c.items) == 0 {
		return
	}
	c.state.AnimationTime += frameTime * speed
}

// AnimatedBorder 返回当前帧选中项的膨胀量：border + border*sin(t)，截断为整数像素
func (c *SelectionController) AnimatedBorder(border int) int {
	b := float64(border)
	return int(b + b*math.Sin(c.state.AnimationTime))
}

// Current 返回当前选中项；列表为空时 ok 为 false
func (c *SelectionController) Current() (*Item, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	return &c.items[c.state.SelectedIndex], true
}

// Selected 返回选中索引
func (c *SelectionController) Selected() int {
	return c.state.SelectedIndex
}

// State 返回选择状态快照
func (c *SelectionController) State() SelectionState {
	return c.state
}
