package timeline

import (
	"math"
	"testing"
)

// TestWindowOpacity 测试可见性窗口的分段线性渐变
func TestWindowOpacity(t *testing.T) {
	w := Window{FadeInStart: 0.2, FadeInEnd: 0.3, FadeOutStart: 0.5, FadeOutEnd: 0.6}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"窗口前", 0.0, 0},
		{"淡入起点", 0.2, 0},
		{"淡入中点", 0.25, 0.5},
		{"淡入终点", 0.3, 1},
		{"保持区", 0.4, 1},
		{"淡出起点", 0.5, 1},
		{"淡出中点", 0.55, 0.5},
		{"淡出终点", 0.6, 0},
		{"窗口后", 0.9, 0},
		{"负进度", -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Opacity(tt.p)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Opacity(%v) = %v, 期望 %v", tt.p, got, tt.expected)
			}
		})
	}
}

// TestWindowDegenerate 退化区段（起止相等）按阶跃处理，不得除零
func TestWindowDegenerate(t *testing.T) {
	w := Window{FadeInStart: 0.3, FadeInEnd: 0.3, FadeOutStart: 0.7, FadeOutEnd: 0.7}

	for _, p := range []float64{0.3, 0.5, 0.7} {
		got := w.Opacity(p)
		if math.IsNaN(got) {
			t.Fatalf("Opacity(%v) = NaN（退化区段除零）", p)
		}
		if got != 1 {
			t.Errorf("Opacity(%v) = %v, 期望保持区值 1", p, got)
		}
	}

	if got := w.Opacity(0.71); got != 0 {
		t.Errorf("窗口后 Opacity = %v, 期望 0", got)
	}
}

// TestWindowValid 测试窗口断点校验
func TestWindowValid(t *testing.T) {
	tests := []struct {
		name  string
		w     Window
		valid bool
	}{
		{"合法窗口", Window{0.1, 0.2, 0.5, 0.6}, true},
		{"断点乱序", Window{0.5, 0.2, 0.4, 0.6}, false},
		{"越下界", Window{-0.1, 0.2, 0.5, 0.6}, false},
		{"越上界", Window{0.1, 0.2, 0.5, 1.2}, false},
		{"全零退化", Window{0, 0, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, 期望 %v", got, tt.valid)
			}
		})
	}
}
