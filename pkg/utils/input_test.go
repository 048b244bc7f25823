package utils

import (
	"testing"
)

// TestApplyScrollModifiers 测试灵敏度倍率与反转方向
func TestApplyScrollModifiers(t *testing.T) {
	tests := []struct {
		name        string
		delta       float64
		sensitivity float64
		invert      bool
		want        float64
	}{
		{"默认灵敏度", 96, 1.0, false, 96},
		{"双倍灵敏度", 96, 2.0, false, 192},
		{"低灵敏度", 100, 0.25, false, 25},
		{"反转方向", 96, 1.0, true, -96},
		{"反转加倍率", -50, 1.5, true, 75},
		{"零增量不受影响", 0, 3.0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ScrollInputConfig{Sensitivity: tt.sensitivity, Invert: tt.invert}
			got := applyScrollModifiers(tt.delta, cfg)
			if got != tt.want {
				t.Errorf("applyScrollModifiers(%v) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

// TestNewScrollInput 测试采样器初始状态：无残留的拖拽锚点
func TestNewScrollInput(t *testing.T) {
	si := NewScrollInput()
	if si.touchActive || si.dragActive {
		t.Error("新建采样器不应携带激活的拖拽状态")
	}
}
