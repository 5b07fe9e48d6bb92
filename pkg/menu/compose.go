package menu

// DrawCommand draws Image stretched into Dst.
type DrawCommand struct {
	Image Drawable
	Dst   Rect
}

// Overlay describes the volume indicator for one frame.
type Overlay struct {
	Kind   OverlayKind
	Up     Drawable
	Down   Drawable
	Width  int
	Height int
}

// Compose appends the frame's draw commands to dst, back to front:
// the background stretched over the viewport, the items in list order, and
// finally the active volume icon anchored at the bottom-right corner.
func Compose(dst []DrawCommand, vp Viewport, background Drawable, items []Item, rects []Rect, ov Overlay) []DrawCommand {
	if background != nil {
		dst = append(dst, DrawCommand{
			Image: background,
			Dst:   Rect{W: vp.Width, H: vp.Height},
		})
	}

	for i, item := range items {
		if item.Image == nil || i >= len(rects) {
			continue
		}
		dst = append(dst, DrawCommand{Image: item.Image, Dst: rects[i]})
	}

	var icon Drawable
	switch ov.Kind {
	case OverlayVolumeUp:
		icon = ov.Up
	case OverlayVolumeDown:
		icon = ov.Down
	}
	if icon != nil {
		dst = append(dst, DrawCommand{
			Image: icon,
			Dst: Rect{
				X: vp.Width - ov.Width,
				Y: vp.Height - ov.Height,
				W: ov.Width,
				H: ov.Height,
			},
		})
	}
	return dst
}
