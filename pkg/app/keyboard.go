package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/arcademenu/pkg/input"
)

// keyCodes maps ebiten keys to menu key codes. Keys not listed are ignored.
var keyCodes = map[ebiten.Key]input.KeyCode{
	ebiten.KeyEnter:        input.KeyReturn,
	ebiten.KeyNumpadEnter:  input.KeyReturn,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyArrowLeft:    input.KeyArrowLeft,
	ebiten.KeyArrowRight:   input.KeyArrowRight,
	ebiten.KeyArrowUp:      input.KeyArrowUp,
	ebiten.KeyArrowDown:    input.KeyArrowDown,
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeySlash:        '/',
	ebiten.KeyBackslash:    '\\',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyQuote:        '\'',
	ebiten.KeyBackquote:    '`',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
}

// 字母与数字键按顺序映射为小写字符
var (
	letterKeys = []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digitKeys = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
)

func init() {
	for i, k := range letterKeys {
		keyCodes[k] = input.KeyCode('a' + i)
	}
	for i, k := range digitKeys {
		keyCodes[k] = input.KeyCode('0' + i)
	}
}

// keyCode 返回 ebiten 按键对应的菜单编码
func keyCode(k ebiten.Key) (input.KeyCode, bool) {
	code, ok := keyCodes[k]
	return code, ok
}

// Keyboard is the input.Source backed by ebiten's keyboard state.
// A window close request is reported as a Quit event.
type Keyboard struct {
	keys []ebiten.Key
}

// NewKeyboard 创建键盘输入源，并接管窗口关闭事件
func NewKeyboard() *Keyboard {
	ebiten.SetWindowClosingHandled(true)
	return &Keyboard{}
}

// Poll appends the key transitions of the current tick: releases first, then
// presses, so a release and re-press within one tick still counts as a press.
func (kb *Keyboard) Poll(dst []input.Event) []input.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, input.Quit())
	}

	kb.keys = inpututil.AppendJustReleasedKeys(kb.keys[:0])
	for _, k := range kb.keys {
		if code, ok := keyCode(k); ok {
			dst = append(dst, input.KeyUp(code))
		}
	}

	kb.keys = inpututil.AppendJustPressedKeys(kb.keys[:0])
	for _, k := range kb.keys {
		if code, ok := keyCode(k); ok {
			dst = append(dst, input.KeyDown(code))
		}
	}
	return dst
}
