package theme

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func mustHex(t *testing.T, s string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(s)
	if err != nil {
		t.Fatalf("colorful.Hex(%q) = %v", s, err)
	}
	return c
}

// newTestTheme 三个桶：深夜(0)、正午(12)、黄昏(18)
func newTestTheme(t *testing.T) *Theme {
	t.Helper()
	th, err := New([]Stop{
		{Hour: 0, SkyTop: mustHex(t, "#000010"), Horizon: mustHex(t, "#101030"), StarIntensity: 1},
		{Hour: 12, SkyTop: mustHex(t, "#4080ff"), Horizon: mustHex(t, "#c0e0ff"), StarIntensity: 0},
		{Hour: 18, SkyTop: mustHex(t, "#402060"), Horizon: mustHex(t, "#ff8040"), StarIntensity: 0.4},
	})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return th
}

// TestThemeAtExactStops 桶小时处的采样等于桶本身
func TestThemeAtExactStops(t *testing.T) {
	th := newTestTheme(t)

	tests := []struct {
		name      string
		hour      float64
		intensity float64
	}{
		{"深夜", 0, 1},
		{"正午", 12, 0},
		{"黄昏", 18, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := th.At(tt.hour)
			if math.Abs(s.StarIntensity-tt.intensity) > 1e-9 {
				t.Errorf("At(%v).StarIntensity = %v, 期望 %v", tt.hour, s.StarIntensity, tt.intensity)
			}
		})
	}
}

// TestThemeInterpolation 相邻桶中点应得到线性中间值
func TestThemeInterpolation(t *testing.T) {
	th := newTestTheme(t)

	// 0 点与 12 点的中点（6 点）：星光强度 0.5
	s := th.At(6)
	if math.Abs(s.StarIntensity-0.5) > 1e-9 {
		t.Errorf("At(6).StarIntensity = %v, 期望 0.5", s.StarIntensity)
	}

	// 颜色通道线性插值（RGB 空间）
	night := mustHex(t, "#000010")
	noon := mustHex(t, "#4080ff")
	wantR := (night.R + noon.R) / 2
	if math.Abs(s.SkyTop.R-wantR) > 1e-9 {
		t.Errorf("At(6).SkyTop.R = %v, 期望 %v", s.SkyTop.R, wantR)
	}
}

// TestThemeWraparound 18 点 → 次日 0 点之间环绕插值
func TestThemeWraparound(t *testing.T) {
	th := newTestTheme(t)

	// 21 点：18 与 24(=0) 的中点，强度 (0.4+1)/2 = 0.7
	s := th.At(21)
	if math.Abs(s.StarIntensity-0.7) > 1e-9 {
		t.Errorf("At(21).StarIntensity = %v, 期望 0.7", s.StarIntensity)
	}

	// 负小时与 >24 小时按 24 取模
	if a, b := th.At(-3), th.At(21); math.Abs(a.StarIntensity-b.StarIntensity) > 1e-9 {
		t.Errorf("At(-3) 与 At(21) 不一致：%v != %v", a.StarIntensity, b.StarIntensity)
	}
	if a, b := th.At(30), th.At(6); math.Abs(a.StarIntensity-b.StarIntensity) > 1e-9 {
		t.Errorf("At(30) 与 At(6) 不一致：%v != %v", a.StarIntensity, b.StarIntensity)
	}
}

// TestThemeValidation 测试主题构造的校验
func TestThemeValidation(t *testing.T) {
	tests := []struct {
		name    string
		stops   []Stop
		wantErr bool
	}{
		{"空桶序列", nil, true},
		{"单桶", []Stop{{Hour: 12}}, false},
		{"小时越界", []Stop{{Hour: 24}}, true},
		{"负小时", []Stop{{Hour: -1}}, true},
		{"重复小时", []Stop{{Hour: 6}, {Hour: 6}}, true},
		{"强度越界", []Stop{{Hour: 6, StarIntensity: 1.5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.stops)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

// TestBlend 双采样插值
func TestBlend(t *testing.T) {
	th := newTestTheme(t)
	a, b := th.At(0), th.At(12)

	mid := Blend(a, b, 0.5)
	if math.Abs(mid.StarIntensity-0.5) > 1e-9 {
		t.Errorf("Blend(夜, 昼, 0.5).StarIntensity = %v, 期望 0.5", mid.StarIntensity)
	}
	if got := Blend(a, b, 0); got.StarIntensity != a.StarIntensity {
		t.Errorf("Blend(t=0) 应返回第一个采样")
	}
	if got := Blend(a, b, 1); got.StarIntensity != b.StarIntensity {
		t.Errorf("Blend(t=1) 应返回第二个采样")
	}
}
