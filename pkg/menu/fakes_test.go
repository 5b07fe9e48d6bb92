package menu

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/arcademenu/pkg/config"
	"github.com/decker502/arcademenu/pkg/input"
)

// testMenuYAML 三个菜单项的测试配置
const testMenuYAML = `
background_image: bg.bmp
background_musics: [m1.ogg, m2.ogg, m3.ogg]
activate_keys: ["x"]
select_sound: select.wav
volume_up_image: up.bmp
volume_down_image: down.bmp
display:
  width: 1000
  height: 600
  item_height_percent: 0.5
items:
  - {name: alpha, image: a.bmp, command: run-alpha}
  - {name: beta, image: b.bmp, command: run-beta}
  - {name: gamma, image: c.bmp, command: run-gamma}
`

func mustParseConfig(t *testing.T, data string) *config.MenuConfig {
	t.Helper()
	cfg, err := config.Parse([]byte(data), config.FormatYAML)
	if err != nil {
		t.Fatalf("config.Parse() error: %v", err)
	}
	return cfg
}

// fakeImage 只记录尺寸的假图片
type fakeImage struct {
	name string
	w, h int
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

// fakeGraphics 记录加载和释放情况
type fakeGraphics struct {
	sizes        map[string][2]int
	loaded       []*fakeImage
	released     map[Drawable]bool
	placeholders int
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{
		sizes: map[string][2]int{
			"bg.bmp":   {1000, 600},
			"up.bmp":   {128, 64},
			"down.bmp": {128, 64},
			"a.bmp":    {200, 100},
			"b.bmp":    {100, 100},
			"c.bmp":    {300, 100},
		},
		released: make(map[Drawable]bool),
	}
}

func (g *fakeGraphics) LoadImage(path string) (Drawable, error) {
	size, ok := g.sizes[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, ErrImageNotFound)
	}
	img := &fakeImage{name: path, w: size[0], h: size[1]}
	g.loaded = append(g.loaded, img)
	return img, nil
}

func (g *fakeGraphics) Placeholder(w, h int) Drawable {
	g.placeholders++
	img := &fakeImage{name: "placeholder", w: w, h: h}
	g.loaded = append(g.loaded, img)
	return img
}

func (g *fakeGraphics) Release(d Drawable) {
	g.released[d] = true
}

// live 返回尚未释放的图片数量
func (g *fakeGraphics) live() int {
	n := 0
	for _, img := range g.loaded {
		if !g.released[img] {
			n++
		}
	}
	return n
}

// fakeAudio 记录播放请求；playing 由测试控制
type fakeAudio struct {
	clips      []string
	music      []string
	playing    bool
	stops      int
	panicMusic bool
}

func (a *fakeAudio) PlayClip(path string, volume float64) error {
	a.clips = append(a.clips, path)
	return nil
}

func (a *fakeAudio) PlayMusic(path string, volume float64) error {
	if a.panicMusic {
		a.panicMusic = false
		panic("music: decoder crashed")
	}
	a.music = append(a.music, path)
	return nil
}

func (a *fakeAudio) IsMusicPlaying() bool { return a.playing }

func (a *fakeAudio) StopAll() { a.stops++ }

// fakeInput 每次 Poll 返回一帧的事件
type fakeInput struct {
	frames [][]input.Event
}

func (f *fakeInput) push(events ...input.Event) {
	f.frames = append(f.frames, events)
}

func (f *fakeInput) Poll(dst []input.Event) []input.Event {
	if len(f.frames) == 0 {
		return dst
	}
	dst = append(dst, f.frames[0]...)
	f.frames = f.frames[1:]
	return dst
}

// fakePresenter 保存每一帧的副本
type fakePresenter struct {
	frames    [][]DrawCommand
	suspends  int
	resumes   int
	failNext  bool
	panicNext bool
}

func (p *fakePresenter) Present(frame []DrawCommand) error {
	if p.panicNext {
		p.panicNext = false
		panic("present: nil texture")
	}
	if p.failNext {
		p.failNext = false
		return errors.New("device lost")
	}
	p.frames = append(p.frames, append([]DrawCommand(nil), frame...))
	return nil
}

func (p *fakePresenter) Suspend() { p.suspends++ }
func (p *fakePresenter) Resume()  { p.resumes++ }

func (p *fakePresenter) last() []DrawCommand {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}

// fakeExecutor 记录执行的命令
type fakeExecutor struct {
	commands []string
	codes    map[string]int
	err      error
	onRun    func(command string)
}

func (e *fakeExecutor) Execute(ctx context.Context, command string) (int, error) {
	e.commands = append(e.commands, command)
	if e.onRun != nil {
		e.onRun(command)
	}
	if e.err != nil {
		return -1, e.err
	}
	return e.codes[command], nil
}

// fakeClock 每次调用前进固定步长
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

// fakeStats 记录启动结果
type fakeStats struct {
	results   []LaunchResult
	panicNext bool
}

func (s *fakeStats) RecordLaunch(r LaunchResult) {
	if s.panicNext {
		s.panicNext = false
		panic("stats: store corrupted")
	}
	s.results = append(s.results, r)
}

// testRig 组装一个使用假能力的菜单循环
type testRig struct {
	loop      *Loop
	cfgLoads  int
	cfgErr    error
	graphics  *fakeGraphics
	audio     *fakeAudio
	input     *fakeInput
	presenter *fakePresenter
	executor  *fakeExecutor
	mixer     *fakeExecutor
	clock     *fakeClock
	stats     *fakeStats
}

func newTestRig(t *testing.T, yamlDoc string) *testRig {
	t.Helper()
	r := &testRig{
		graphics:  newFakeGraphics(),
		audio:     &fakeAudio{},
		input:     &fakeInput{},
		presenter: &fakePresenter{},
		executor:  &fakeExecutor{codes: map[string]int{}},
		mixer:     &fakeExecutor{codes: map[string]int{}},
		clock:     &fakeClock{t: time.Unix(1000, 0), step: 100 * time.Millisecond},
		stats:     &fakeStats{},
	}
	r.loop = NewLoop(Deps{
		LoadConfig: func() (*config.MenuConfig, error) {
			r.cfgLoads++
			if r.cfgErr != nil {
				return nil, r.cfgErr
			}
			return config.Parse([]byte(yamlDoc), config.FormatYAML)
		},
		Graphics:  r.graphics,
		Audio:     r.audio,
		Input:     r.input,
		Presenter: r.presenter,
		Executor:  r.executor,
		Mixer:     r.mixer,
		Stats:     r.stats,
		Now:       r.clock.Now,
		Rand:      rand.New(rand.NewSource(1)),
	})
	if err := r.loop.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return r
}

// press 推入一次完整的按下+释放，并运行一帧
func (r *testRig) press(code input.KeyCode) State {
	r.input.push(input.KeyDown(code), input.KeyUp(code))
	return r.loop.Step(context.Background())
}
