package menu

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/arcademenu/pkg/config"
)

// Session owns every resource handle created from one configuration load:
// decoded images, the playlist, the key map. It is created by OpenSession and
// fully released by Close before an external program runs.
type Session struct {
	Config      *config.MenuConfig
	Viewport    Viewport
	Background  Drawable
	VolumeUp    Drawable
	VolumeDown  Drawable
	Items       []Item
	SelectSound string
	Playlist    *Playlist
	Keys        KeyMap

	graphics Graphics
	audio    Audio
	owned    []Drawable
	closed   bool
}

// OpenSession loads all media described by cfg.
//
// A missing or undecodable image is logged and replaced with a placeholder so
// that no item ever holds an absent handle. The first item is selected by the
// SelectionController on Attach; the playlist starts at a random track.
func OpenSession(cfg *config.MenuConfig, gfx Graphics, audio Audio, rng *rand.Rand) (*Session, error) {
	if cfg == nil || gfx == nil || audio == nil {
		return nil, fmt.Errorf("%w: session requires config, graphics and audio", ErrInit)
	}

	s := &Session{
		Config:      cfg,
		Viewport:    Viewport{Width: cfg.Display.Width, Height: cfg.Display.Height},
		SelectSound: cfg.ResolvePath(cfg.SelectSound),
		Keys:        NewKeyMap(cfg.KeyBindings()),
		graphics:    gfx,
		audio:       audio,
	}

	var err error
	if s.Background, err = s.loadImage(cfg.BackgroundImage, s.Viewport.Width, s.Viewport.Height); err != nil {
		return nil, err
	}
	ow, oh := cfg.Volume.OverlayWidth, cfg.Volume.OverlayHeight
	if s.VolumeUp, err = s.loadImage(cfg.VolumeUpImage, ow, oh); err != nil {
		s.Close()
		return nil, err
	}
	if s.VolumeDown, err = s.loadImage(cfg.VolumeDownImage, ow, oh); err != nil {
		s.Close()
		return nil, err
	}

	baseHeight := int(cfg.Display.ItemHeightPercent * float64(cfg.Display.Height))
	s.Items = make([]Item, 0, len(cfg.Items))
	for _, ic := range cfg.Items {
		img, err := s.loadImage(ic.Image, baseHeight, baseHeight)
		if err != nil {
			s.Close()
			return nil, err
		}

		aspect := 1.0
		if b := img.Bounds(); b.Dy() > 0 {
			aspect = float64(b.Dx()) / float64(b.Dy())
		}
		s.Items = append(s.Items, Item{
			Name:       ic.ItemName(),
			Command:    ic.Command,
			Image:      img,
			Aspect:     aspect,
			BaseHeight: baseHeight,
			BaseWidth:  int(float64(baseHeight) * aspect),
		})
	}

	start := 0
	if n := len(cfg.BackgroundMusic); n > 0 && rng != nil {
		start = rng.Intn(n)
	}
	music := make([]string, len(cfg.BackgroundMusic))
	for i, m := range cfg.BackgroundMusic {
		music[i] = cfg.ResolvePath(m)
	}
	s.Playlist = NewPlaylist(music, start)

	log.Printf("[Session] Media loaded: %d items, %d music tracks (starting at %d)",
		len(s.Items), s.Playlist.Len(), start)
	return s, nil
}

// loadImage 加载图片；缺失时记录错误并返回占位图
func (s *Session) loadImage(path string, w, h int) (Drawable, error) {
	resolved := s.Config.ResolvePath(path)

	img, err := s.graphics.LoadImage(resolved)
	if err == nil && img == nil {
		err = ErrImageNotFound
	}
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			log.Printf("[Session] ERROR: image not found: %s (using placeholder)", resolved)
		} else {
			log.Printf("[Session] ERROR: failed to load image %s: %v (using placeholder)", resolved, err)
		}
		img = s.graphics.Placeholder(w, h)
		if img == nil {
			return nil, fmt.Errorf("%w: cannot create placeholder for %s", ErrInit, resolved)
		}
	}

	s.owned = append(s.owned, img)
	return img, nil
}

// Close stops all audio and releases every drawable the session created.
// It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.audio.StopAll()
	for _, d := range s.owned {
		s.graphics.Release(d)
	}
	s.owned = nil
	for i := range s.Items {
		s.Items[i].Image = nil
	}
	s.Items = nil
	s.Background = nil
	s.VolumeUp = nil
	s.VolumeDown = nil

	log.Printf("[Session] Resources released")
}

// Closed 报告资源是否已释放
func (s *Session) Closed() bool {
	return s.closed
}
