package input

import "testing"

// pressedSequence 将事件序列依次送入过滤器，返回每个事件的判定结果
func pressedSequence(f *EdgeFilter, events ...Event) []bool {
	out := make([]bool, len(events))
	for i, ev := range events {
		out[i] = f.Pressed(ev)
	}
	return out
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestEdgeFilterPerKey 测试按键级边沿检测
func TestEdgeFilterPerKey(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []bool
	}{
		{
			name:   "Held key repeats are suppressed",
			events: []Event{KeyDown(KeyArrowLeft), KeyDown(KeyArrowLeft), KeyDown(KeyArrowLeft)},
			want:   []bool{true, false, false},
		},
		{
			name:   "Release re-arms the key",
			events: []Event{KeyDown(KeyArrowLeft), KeyUp(KeyArrowLeft), KeyDown(KeyArrowLeft)},
			want:   []bool{true, false, true},
		},
		{
			name:   "Other keys are independent",
			events: []Event{KeyDown(KeyArrowLeft), KeyDown(KeyArrowRight), KeyUp(KeyArrowRight), KeyDown(KeyArrowRight)},
			want:   []bool{true, true, false, true},
		},
		{
			name:   "Quit never counts as press",
			events: []Event{Quit()},
			want:   []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewEdgeFilter(EdgePerKey)
			got := pressedSequence(f, tt.events...)
			if !equalBools(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEdgeFilterLatch 测试全局锁存模式（一个按键按住时屏蔽所有按键）
func TestEdgeFilterLatch(t *testing.T) {
	f := NewEdgeFilter(EdgeLatch)

	got := pressedSequence(f,
		KeyDown(KeyArrowLeft),
		KeyDown(KeyArrowRight), // 锁存中，被屏蔽
		KeyUp(KeyArrowRight),   // 任意非按下事件解除锁存
		KeyDown(KeyArrowRight),
	)
	want := []bool{true, false, false, true}
	if !equalBools(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEdgeFilterReset(t *testing.T) {
	f := NewEdgeFilter(EdgePerKey)
	f.Pressed(KeyDown(KeyReturn))
	if f.Pressed(KeyDown(KeyReturn)) {
		t.Fatal("held Return should not fire twice")
	}

	f.Reset()
	if !f.Pressed(KeyDown(KeyReturn)) {
		t.Error("Return should fire again after Reset")
	}
}

func TestParseEdgeMode(t *testing.T) {
	tests := []struct {
		input   string
		want    EdgeMode
		wantErr bool
	}{
		{"", EdgePerKey, false},
		{"per_key", EdgePerKey, false},
		{"latch", EdgeLatch, false},
		{"sticky", EdgePerKey, true},
	}

	for _, tt := range tests {
		got, err := ParseEdgeMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEdgeMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEdgeMode(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}
