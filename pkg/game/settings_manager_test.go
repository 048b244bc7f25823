package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录里创建 gdata manager
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "test_skyfolio_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultViewerSettings 测试默认设置
func TestDefaultViewerSettings(t *testing.T) {
	s := DefaultViewerSettings()
	if s.ScrollSensitivity != 1.0 {
		t.Errorf("ScrollSensitivity: got %v, want 1.0", s.ScrollSensitivity)
	}
	if s.InvertScroll || s.ReducedMotion || s.Fullscreen {
		t.Error("布尔设置的默认值应全部为 false")
	}
	if s.FixedHour >= 0 {
		t.Errorf("FixedHour: got %v, 默认应为负值（跟随系统时钟）", s.FixedHour)
	}
}

// TestNewSettingsManagerNilGdata 降级模式：gdata 为 nil 时使用内存设置
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.GetSettings().ScrollSensitivity != 1.0 {
		t.Error("降级模式应使用默认设置")
	}
	// 降级模式下 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save() = %v, 期望 nil", err)
	}
}

// TestSettingsSaveLoadRoundTrip 设置保存后重新加载应保持一致
func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	m := newTestGdata(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.SetScrollSensitivity(1.8)
	sm.SetInvertScroll(true)
	sm.SetReducedMotion(true)
	sm.SetFixedHour(21.5)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 用同一个 gdata manager 创建新实例模拟重启
	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	got := sm2.GetSettings()
	if got.ScrollSensitivity != 1.8 {
		t.Errorf("ScrollSensitivity: got %v, want 1.8", got.ScrollSensitivity)
	}
	if !got.InvertScroll || !got.ReducedMotion {
		t.Error("布尔设置未能在重新加载后保持")
	}
	if got.FixedHour != 21.5 {
		t.Errorf("FixedHour: got %v, want 21.5", got.FixedHour)
	}
}

// TestSetScrollSensitivityClamping 灵敏度越界取值被钳制
func TestSetScrollSensitivityClamping(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"过小", 0.01, 0.25},
		{"过大", 10, 3.0},
		{"正常", 1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetScrollSensitivity(tt.input)
			if got := sm.GetSettings().ScrollSensitivity; got != tt.expected {
				t.Errorf("SetScrollSensitivity(%v) → %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestSetFixedHour 固定时刻的取模与恢复
func TestSetFixedHour(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetFixedHour(25.5)
	if got := sm.GetSettings().FixedHour; got != 1.5 {
		t.Errorf("SetFixedHour(25.5) → %v, 期望 1.5", got)
	}

	sm.SetFixedHour(-3)
	if got := sm.GetSettings().FixedHour; got != -1 {
		t.Errorf("SetFixedHour(-3) → %v, 期望 -1（跟随时钟）", got)
	}
}
