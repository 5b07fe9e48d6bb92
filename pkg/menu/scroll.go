package menu

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollAnimator eases the displayed row offset towards the layout target.
// A zero duration snaps immediately.
type ScrollAnimator struct {
	duration    float32
	tween       *gween.Tween
	current     float64
	target      float64
	initialized bool
}

// NewScrollAnimator 创建滚动缓动器，seconds <= 0 表示不缓动
func NewScrollAnimator(seconds float64) *ScrollAnimator {
	return &ScrollAnimator{duration: float32(seconds)}
}

// Update advances the easing by frameTime and returns the offset to draw with.
// A new target restarts the tween from the currently displayed offset.
func (s *ScrollAnimator) Update(target, frameTime float64) float64 {
	if !s.initialized || s.duration <= 0 {
		s.current = target
		s.target = target
		s.initialized = true
		return target
	}

	if target != s.target {
		s.tween = gween.New(float32(s.current), float32(target), s.duration, ease.OutQuad)
		s.target = target
	}

	if s.tween != nil {
		v, finished := s.tween.Update(float32(frameTime))
		s.current = float64(v)
		if finished {
			s.current = s.target
			s.tween = nil
		}
	}
	return s.current
}
