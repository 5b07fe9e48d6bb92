package menu

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/arcademenu/pkg/input"
)

// State 菜单循环状态
type State int

const (
	StateRunning State = iota
	StateSuspended
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateSuspended:
		return "Suspended"
	default:
		return "Terminated"
	}
}

// LaunchResult records one execution of an item's command.
type LaunchResult struct {
	ID       string
	Item     string
	Command  string
	ExitCode int
	Err      error
	Started  time.Time
	Duration time.Duration
}

// Deps 菜单循环依赖的外部能力
type Deps struct {
	LoadConfig ConfigSource
	Graphics   Graphics
	Audio      Audio
	Input      input.Source
	Presenter  Presenter
	Executor   Executor

	// Mixer runs the master volume command; defaults to Executor.
	Mixer Executor
	// Stats 可选，记录每次启动结果
	Stats LaunchRecorder
	// Now 可选，默认 time.Now
	Now func() time.Time
	// Rand 可选，用于选择起始曲目
	Rand *rand.Rand
}

// Loop drives the menu: input, state update, music refill, layout, composition
// and presentation, once per Step. Activating an item suspends the menu, runs
// the command synchronously and re-initializes everything afterwards.
type Loop struct {
	deps Deps

	state     State
	session   *Session
	selection *SelectionController
	volume    *VolumeState
	edges     *input.EdgeFilter
	scroll    *ScrollAnimator

	events    []input.Event
	frame     []DrawCommand
	lastFrame time.Time
	frameTime float64

	pending    Action
	retryAt    time.Time
	lastLaunch *LaunchResult
}

// resumeRetryInterval 重新初始化失败后的重试间隔
const resumeRetryInterval = time.Second

// NewLoop 创建菜单循环；需调用 Init 后才能运行
func NewLoop(deps Deps) *Loop {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Mixer == nil {
		deps.Mixer = deps.Executor
	}
	return &Loop{
		deps:  deps,
		state: StateTerminated,
	}
}

// Init loads the configuration and all media and enters Running.
// It is called once at startup and again after every launched command.
func (l *Loop) Init() error {
	if l.deps.LoadConfig == nil || l.deps.Input == nil || l.deps.Presenter == nil || l.deps.Executor == nil {
		return fmt.Errorf("%w: missing capability", ErrInit)
	}

	cfg, err := l.deps.LoadConfig()
	if err != nil {
		return err
	}

	session, err := OpenSession(cfg, l.deps.Graphics, l.deps.Audio, l.deps.Rand)
	if err != nil {
		return err
	}
	l.session = session

	l.selection = NewSelectionController(session.Keys, cfg.Volume.Delta)
	l.selection.Attach(session.Items)

	if l.volume == nil {
		l.volume = NewVolumeState(cfg.Volume.Initial, cfg.Volume.Min, cfg.Volume.Max, cfg.Volume.OverlaySeconds)
	} else {
		l.volume.Reconfigure(cfg.Volume.Min, cfg.Volume.Max, cfg.Volume.OverlaySeconds)
	}

	if mode := cfg.EdgeMode(); l.edges == nil || l.edges.Mode() != mode {
		l.edges = input.NewEdgeFilter(mode)
	} else {
		// 子程序运行期间的按键释放事件菜单收不到
		l.edges.Reset()
	}
	l.scroll = NewScrollAnimator(cfg.Animation.ScrollEaseSeconds)

	// 与原菜单一致：每次初始化都重新应用主音量
	l.applyMixer(context.Background())

	l.lastFrame = l.deps.Now()
	l.frameTime = 0
	l.state = StateRunning
	log.Printf("[Loop] Running (%d items, edge mode %s)", len(session.Items), l.edges.Mode())
	return nil
}

// Step runs one frame and returns the resulting state.
func (l *Loop) Step(ctx context.Context) State {
	if err := ctx.Err(); err != nil && l.state != StateTerminated {
		log.Printf("[Loop] Context done: %v", err)
		l.terminate()
	}

	switch l.state {
	case StateRunning:
		l.runFrame(ctx)
	case StateSuspended:
		l.retryResume()
	}
	return l.state
}

// Run steps until the loop terminates, then releases all resources.
func (l *Loop) Run(ctx context.Context) error {
	if l.state != StateRunning {
		if err := l.Init(); err != nil {
			return err
		}
	}
	for l.Step(ctx) != StateTerminated {
	}
	l.Close()
	return nil
}

// runFrame 单帧：输入 → 状态更新 → 音乐 → 布局 → 合成 → 呈现 → 计时
func (l *Loop) runFrame(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Loop] Frame skipped after panic: %v", r)
		}
	}()

	l.events = l.deps.Input.Poll(l.events[:0])
	for _, ev := range l.events {
		if ev.Kind == input.EventQuit {
			log.Printf("[Loop] Quit requested")
			l.terminate()
			return
		}
		if !l.edges.Pressed(ev) {
			continue
		}
		if l.apply(ctx, l.selection.OnKey(ev.Code)) {
			// 会话已重建，剩余事件属于启动前的旧会话
			return
		}
	}

	s := l.session
	cfg := s.Config
	border := cfg.Animation.BorderSize

	l.selection.Advance(l.frameTime, cfg.Animation.Speed)

	if track, ok := s.Playlist.Tick(l.deps.Audio.IsMusicPlaying()); ok {
		if err := l.deps.Audio.PlayMusic(track, cfg.Volume.EffectVolume); err != nil {
			log.Printf("[Loop] Warning: failed to play music %s: %v", track, err)
		}
	}

	selected := l.selection.Selected()
	offset := l.scroll.Update(ScrollOffset(s.Items, border, selected), l.frameTime)
	rects := ComputeRects(s.Viewport, s.Items, border, offset, selected, l.selection.AnimatedBorder(border))

	l.frame = Compose(l.frame[:0], s.Viewport, s.Background, s.Items, rects, Overlay{
		Kind:   l.volume.Overlay(),
		Up:     s.VolumeUp,
		Down:   s.VolumeDown,
		Width:  cfg.Volume.OverlayWidth,
		Height: cfg.Volume.OverlayHeight,
	})
	if err := l.deps.Presenter.Present(l.frame); err != nil {
		log.Printf("[Loop] Frame skipped: present failed: %v", err)
	}

	l.volume.Tick(l.frameTime)
	l.measureFrame()
}

func (l *Loop) measureFrame() {
	now := l.deps.Now()
	l.frameTime = now.Sub(l.lastFrame).Seconds()
	l.lastFrame = now
}

// apply 执行动作的副作用；返回 true 表示发生了启动（会话已替换）
func (l *Loop) apply(ctx context.Context, action Action) bool {
	switch action.Kind {
	case ActionMoveLeft, ActionMoveRight:
		cfg := l.session.Config
		if err := l.deps.Audio.PlayClip(l.session.SelectSound, cfg.Volume.EffectVolume); err != nil {
			log.Printf("[Loop] Warning: failed to play select sound: %v", err)
		}
	case ActionAdjustVolume:
		vol := l.volume.Adjust(action.Delta)
		log.Printf("[Loop] Master volume -> %d", vol)
		l.applyMixer(ctx)
	case ActionActivate:
		l.launch(ctx, action)
		return true
	}
	return false
}

func (l *Loop) applyMixer(ctx context.Context) {
	cfg := l.session.Config
	if cfg.Volume.DisableMixer {
		return
	}
	cmd := MixerCommand(cfg.Volume.Command, cfg.Volume.Placeholder, l.volume.Master)
	log.Printf("[Loop] Executing sound command: %s", cmd)
	code, err := l.deps.Mixer.Execute(ctx, cmd)
	if err != nil {
		log.Printf("[Loop] Warning: mixer command failed: %v", err)
	} else if code != 0 {
		log.Printf("[Loop] Warning: mixer command exited with %d", code)
	}
}

// launch performs the Running → Suspended → Running transition: release every
// device resource, run the command to completion, then reload the
// configuration and media from scratch. The presenter is resumed and
// re-initialization attempted even if the launch panics.
func (l *Loop) launch(ctx context.Context, action Action) {
	l.state = StateSuspended
	l.pending = action
	log.Printf("[Loop] Suspending to run %q (%s)", action.Command, action.Item)

	l.session.Close()
	l.deps.Presenter.Suspend()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Loop] ERROR: launch of %q panicked: %v", action.Command, r)
		}
		l.deps.Presenter.Resume()
		l.resume()
	}()

	res := LaunchResult{
		ID:      uuid.NewString(),
		Item:    action.Item,
		Command: action.Command,
		Started: l.deps.Now(),
	}
	res.ExitCode, res.Err = l.deps.Executor.Execute(ctx, action.Command)
	res.Duration = l.deps.Now().Sub(res.Started)

	switch {
	case res.Err != nil:
		log.Printf("[Loop] ERROR: launch %s of %q failed: %v", res.ID, res.Command, res.Err)
	case res.ExitCode != 0:
		log.Printf("[Loop] %v: launch %s of %q returned %d after %s",
			ErrChildNonZero, res.ID, res.Command, res.ExitCode, res.Duration.Round(time.Millisecond))
	default:
		log.Printf("[Loop] Launch %s of %q finished after %s", res.ID, res.Command, res.Duration.Round(time.Millisecond))
	}

	l.lastLaunch = &res
	if l.deps.Stats != nil {
		l.deps.Stats.RecordLaunch(res)
	}
}

// resume 重新初始化；失败时保持挂起，稍后重试
func (l *Loop) resume() {
	if err := l.Init(); err != nil {
		log.Printf("[Loop] ERROR: re-initialization after %q failed: %v (retrying in %s)",
			l.pending.Command, err, resumeRetryInterval)
		l.state = StateSuspended
		l.retryAt = l.deps.Now().Add(resumeRetryInterval)
		return
	}
	l.pending = Action{}
}

func (l *Loop) retryResume() {
	l.events = l.deps.Input.Poll(l.events[:0])
	for _, ev := range l.events {
		if ev.Kind == input.EventQuit {
			log.Printf("[Loop] Quit requested while suspended")
			l.terminate()
			return
		}
	}
	if l.deps.Now().Before(l.retryAt) {
		return
	}
	l.resume()
}

func (l *Loop) terminate() {
	l.state = StateTerminated
	l.pending = Action{}
}

// Close releases the current session. Safe to call more than once.
func (l *Loop) Close() {
	if l.session != nil {
		l.session.Close()
	}
	l.state = StateTerminated
	log.Printf("[Loop] Closed")
}

// State 返回当前状态
func (l *Loop) State() State {
	return l.state
}

// Session 返回当前会话（可能已关闭）
func (l *Loop) Session() *Session {
	return l.session
}

// Selection 返回选择控制器
func (l *Loop) Selection() *SelectionController {
	return l.selection
}

// Volume 返回音量状态
func (l *Loop) Volume() *VolumeState {
	return l.volume
}

// LastLaunch 返回最近一次启动的结果，尚未启动过时为 nil
func (l *Loop) LastLaunch() *LaunchResult {
	return l.lastLaunch
}

// Viewport 返回当前屏幕尺寸（未初始化时为零值）
func (l *Loop) Viewport() Viewport {
	if l.session == nil {
		return Viewport{}
	}
	return l.session.Viewport
}
