package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/arcademenu/pkg/menu"
)

// windowControl 窗口操作，测试中可替换
type windowControl interface {
	SetFullscreen(bool)
	Minimize()
	Restore()
}

type ebitenWindow struct{}

func (ebitenWindow) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }
func (ebitenWindow) Minimize()             { ebiten.MinimizeWindow() }
func (ebitenWindow) Restore()              { ebiten.RestoreWindow() }

// Presenter keeps the most recently composed frame and replays it in Draw.
//
// ebiten draws in its own callback, so Present only records the frame; the
// pixels reach the screen on the next Draw.
type Presenter struct {
	frame      []menu.DrawCommand
	windowed   bool
	suspended  bool
	window     windowControl
	drawOption ebiten.DrawImageOptions
}

// NewPresenter 创建呈现器；windowed 为 false 时恢复后回到全屏
func NewPresenter(windowed bool) *Presenter {
	return &Presenter{
		windowed: windowed,
		window:   ebitenWindow{},
	}
}

// Present implements menu.Presenter.
func (p *Presenter) Present(frame []menu.DrawCommand) error {
	for i, cmd := range frame {
		if _, ok := cmd.Image.(*ebiten.Image); !ok {
			return fmt.Errorf("draw command %d: unsupported drawable %T", i, cmd.Image)
		}
	}
	p.frame = append(p.frame[:0], frame...)
	return nil
}

// Suspend drops the frame (its images are about to be released) and gets the
// window out of the way of the launched program.
func (p *Presenter) Suspend() {
	p.frame = p.frame[:0]
	p.suspended = true
	if !p.windowed {
		p.window.SetFullscreen(false)
	}
	p.window.Minimize()
	log.Printf("[App] Window minimized")
}

// Resume 恢复窗口（及全屏）
func (p *Presenter) Resume() {
	p.window.Restore()
	if !p.windowed {
		p.window.SetFullscreen(true)
	}
	p.suspended = false
	log.Printf("[App] Window restored")
}

// Draw replays the last frame onto screen, stretching each image into its rectangle.
func (p *Presenter) Draw(screen *ebiten.Image) {
	if p.suspended {
		return
	}
	for _, cmd := range p.frame {
		img, ok := cmd.Image.(*ebiten.Image)
		if !ok || cmd.Dst.W <= 0 || cmd.Dst.H <= 0 {
			continue
		}
		bounds := img.Bounds()
		if bounds.Dx() == 0 || bounds.Dy() == 0 {
			continue
		}

		op := &p.drawOption
		op.GeoM.Reset()
		op.GeoM.Scale(float64(cmd.Dst.W)/float64(bounds.Dx()), float64(cmd.Dst.H)/float64(bounds.Dy()))
		op.GeoM.Translate(float64(cmd.Dst.X), float64(cmd.Dst.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// Frame 返回当前保存的帧
func (p *Presenter) Frame() []menu.DrawCommand {
	return p.frame
}

// SetWindowed 设置恢复后是否保持窗口模式
func (p *Presenter) SetWindowed(windowed bool) {
	p.windowed = windowed
}
