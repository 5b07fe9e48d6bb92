// Package app 将菜单循环接入 ebiten
//
// ebiten 负责窗口、按键和绘制；每个 tick 的 Update 推进一帧菜单循环，
// Draw 重放循环最近合成的画面。
package app

import (
	"context"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/arcademenu/pkg/menu"
)

// App 是菜单应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx       context.Context
	loop      *menu.Loop
	presenter *Presenter
}

// NewApp 包装一个已初始化的菜单循环
//
// presenter 必须与创建 loop 时传入的 Presenter 相同
func NewApp(ctx context.Context, loop *menu.Loop, presenter *Presenter) *App {
	return &App{
		ctx:       ctx,
		loop:      loop,
		presenter: presenter,
	}
}

// Update 推进一帧菜单循环
// 启动外部程序时本次调用会阻塞到程序退出
func (a *App) Update() error {
	if a.loop.Step(a.ctx) == menu.StateTerminated {
		log.Printf("[App] Menu terminated")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制最近一帧
func (a *App) Draw(screen *ebiten.Image) {
	a.presenter.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 缩放时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回配置的屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := a.loop.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return vp.Width, vp.Height
}

// Configure 按视口设置窗口属性，须在 ebiten.RunGame 之前调用
func Configure(title string, vp menu.Viewport, windowed bool) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetFullscreen(!windowed)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetRunnableOnUnfocused(true)
}
