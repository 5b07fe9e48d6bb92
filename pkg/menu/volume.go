package menu

import (
	"strconv"
	"strings"
)

// TimerDisarmed is the sentinel value of a hidden volume overlay timer.
const TimerDisarmed = -1.0

// OverlayKind 当前应显示的音量提示图标
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayVolumeUp
	OverlayVolumeDown
)

// VolumeState tracks the system master volume and the overlay timers.
//
// The master volume is applied through an external mixer command, not through
// the menu's own audio players.
type VolumeState struct {
	Master    int
	Min       int
	Max       int
	UpTimer   float64
	DownTimer float64
	TimerMax  float64
}

// NewVolumeState 创建音量状态，初始音量会被钳制到 [min, max]
func NewVolumeState(initial, min, max int, timerMax float64) *VolumeState {
	v := &VolumeState{
		Min:       min,
		Max:       max,
		UpTimer:   TimerDisarmed,
		DownTimer: TimerDisarmed,
		TimerMax:  timerMax,
	}
	v.Master = v.clamp(initial)
	return v
}

// Reconfigure 重新加载配置后更新范围（保留当前音量）
func (v *VolumeState) Reconfigure(min, max int, timerMax float64) {
	v.Min = min
	v.Max = max
	v.TimerMax = timerMax
	v.Master = v.clamp(v.Master)
}

// Adjust changes the master volume by delta, clamped to [Min, Max].
// A positive delta arms the up timer and disarms the down timer; a negative
// delta does the opposite. Returns the new master volume.
func (v *VolumeState) Adjust(delta int) int {
	v.Master = v.clamp(v.Master + delta)
	if delta >= 0 {
		v.UpTimer = v.TimerMax
		v.DownTimer = TimerDisarmed
	} else {
		v.UpTimer = TimerDisarmed
		v.DownTimer = v.TimerMax
	}
	return v.Master
}

// Tick counts the armed timers down by the elapsed frame time.
func (v *VolumeState) Tick(frameTime float64) {
	if v.UpTimer > 0 {
		v.UpTimer -= frameTime
	}
	if v.DownTimer > 0 {
		v.DownTimer -= frameTime
	}
}

// Overlay 返回应显示的图标（up 优先）
func (v *VolumeState) Overlay() OverlayKind {
	switch {
	case v.UpTimer > 0:
		return OverlayVolumeUp
	case v.DownTimer > 0:
		return OverlayVolumeDown
	default:
		return OverlayNone
	}
}

func (v *VolumeState) clamp(vol int) int {
	if vol > v.Max {
		vol = v.Max
	}
	if vol < v.Min {
		vol = v.Min
	}
	return vol
}

// MixerCommand 将命令模板中的占位符替换为音量值
func MixerCommand(template, placeholder string, volume int) string {
	return strings.ReplaceAll(template, placeholder, strconv.Itoa(volume))
}
