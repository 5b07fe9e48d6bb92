package menu

import "testing"

// TestComposeOrder 背景 → 菜单项（列表顺序）→ 音量图标
func TestComposeOrder(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 600}
	bg := &fakeImage{name: "bg"}
	up := &fakeImage{name: "up"}
	down := &fakeImage{name: "down"}
	items := []Item{
		{Image: &fakeImage{name: "a"}},
		{Image: &fakeImage{name: "b"}},
	}
	rects := []Rect{{X: 1, W: 10, H: 10}, {X: 20, W: 10, H: 10}}

	cmds := Compose(nil, vp, bg, items, rects, Overlay{
		Kind: OverlayVolumeDown, Up: up, Down: down, Width: 128, Height: 64,
	})

	if len(cmds) != 4 {
		t.Fatalf("got %d commands, want 4", len(cmds))
	}
	if cmds[0].Image != bg || cmds[0].Dst != (Rect{W: 1000, H: 600}) {
		t.Errorf("background command: %+v", cmds[0])
	}
	if cmds[1].Image != items[0].Image || cmds[1].Dst != rects[0] {
		t.Errorf("item 0 command: %+v", cmds[1])
	}
	if cmds[2].Image != items[1].Image || cmds[2].Dst != rects[1] {
		t.Errorf("item 1 command: %+v", cmds[2])
	}
	if cmds[3].Image != down || cmds[3].Dst != (Rect{X: 872, Y: 536, W: 128, H: 64}) {
		t.Errorf("overlay command: %+v", cmds[3])
	}
}

func TestComposeWithoutOverlay(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	cmds := Compose(nil, vp, &fakeImage{}, nil, nil, Overlay{Kind: OverlayNone, Up: &fakeImage{}})
	if len(cmds) != 1 {
		t.Errorf("got %d commands, want only the background", len(cmds))
	}
}

func TestComposeReusesBuffer(t *testing.T) {
	buf := make([]DrawCommand, 0, 8)
	vp := Viewport{Width: 100, Height: 100}
	cmds := Compose(buf[:0], vp, &fakeImage{}, nil, nil, Overlay{})
	if cap(cmds) != 8 {
		t.Errorf("expected buffer reuse, cap=%d", cap(cmds))
	}
}
