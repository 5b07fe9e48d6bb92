package menu

import (
	"context"
	"image"

	"github.com/decker502/arcademenu/pkg/config"
)

// Drawable is an opaque handle to decoded pixel data. It is exclusively owned
// by whoever created it (normally the Session) and released through Graphics.
type Drawable interface {
	Bounds() image.Rectangle
}

// Graphics decodes images into drawables and releases them.
type Graphics interface {
	// LoadImage returns ErrImageNotFound (possibly wrapped) when the file is missing.
	LoadImage(path string) (Drawable, error)
	// Placeholder returns a stand-in drawable for a missing asset.
	Placeholder(width, height int) Drawable
	Release(d Drawable)
}

// Audio plays sound clips and background music tracks.
type Audio interface {
	PlayClip(path string, volume float64) error
	PlayMusic(path string, volume float64) error
	IsMusicPlaying() bool
	StopAll()
}

// Presenter shows a composed frame.
//
// Suspend and Resume bracket the execution of an external program so the
// display can be handed over to it.
type Presenter interface {
	Present(frame []DrawCommand) error
	Suspend()
	Resume()
}

// Executor runs a command synchronously and returns its exit code.
type Executor interface {
	Execute(ctx context.Context, command string) (int, error)
}

// ConfigSource 每次（重新）初始化时调用，返回完整的菜单配置
type ConfigSource func() (*config.MenuConfig, error)

// LaunchRecorder receives the outcome of every launch. Optional.
type LaunchRecorder interface {
	RecordLaunch(result LaunchResult)
}
