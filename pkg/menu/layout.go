package menu

import "math"

// Rect 目标矩形（像素）
type Rect struct {
	X, Y, W, H int
}

// Viewport 屏幕尺寸
type Viewport struct {
	Width  int
	Height int
}

// Item is one entry of the menu row.
type Item struct {
	Name       string
	Command    string
	Image      Drawable
	Aspect     float64
	BaseWidth  int
	BaseHeight int
	Selected   bool
}

// ScrollOffset returns the horizontal offset that puts the centre of the
// selected item on the centre of the viewport:
//
//	-(Σ_{i<k} (w_i + border) + (w_k + border)/2)
//
// An out-of-range selection is clamped; an empty list yields 0.
func ScrollOffset(items []Item, border, selected int) float64 {
	if len(items) == 0 {
		return 0
	}
	selected = clampIndex(selected, len(items))

	offset := 0.0
	for i := 0; i < selected; i++ {
		offset -= float64(items[i].BaseWidth + border)
	}
	offset -= float64(items[selected].BaseWidth+border) / 2
	return offset
}

// ComputeRects lays the items out left to right.
//
// Each item is vertically centred; x starts at Width/2 + offset and advances by
// BaseWidth + border. The selected item is inflated by animatedBorder*Aspect
// horizontally and animatedBorder vertically, keeping its centre.
func ComputeRects(vp Viewport, items []Item, border int, offset float64, selected, animatedBorder int) []Rect {
	rects := make([]Rect, len(items))

	x := float64(vp.Width)/2 + offset
	for i, item := range items {
		w := float64(item.BaseWidth)
		h := float64(item.BaseHeight)
		y := float64(vp.Height)/2 - h/2
		fx := x

		if i == selected {
			dw := float64(animatedBorder) * item.Aspect
			dh := float64(animatedBorder)
			fx -= dw / 2
			y -= dh / 2
			w += dw
			h += dh
		}

		rects[i] = Rect{
			X: int(math.Round(fx)),
			Y: int(math.Round(y)),
			W: int(math.Round(w)),
			H: int(math.Round(h)),
		}
		x += float64(item.BaseWidth + border)
	}
	return rects
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
