package config

import (
	"testing"
)

// TestLoadThemeConfig 加载仓库内置的昼夜主题
func TestLoadThemeConfig(t *testing.T) {
	th, err := LoadThemeConfig("../../data/themes.yaml")
	if err != nil {
		t.Fatalf("LoadThemeConfig() = %v", err)
	}

	// 正午无星光，深夜星光最亮
	noon := th.At(12)
	if noon.StarIntensity != 0 {
		t.Errorf("At(12).StarIntensity = %v, 期望 0", noon.StarIntensity)
	}
	midnight := th.At(0)
	if midnight.StarIntensity != 1 {
		t.Errorf("At(0).StarIntensity = %v, 期望 1", midnight.StarIntensity)
	}
}

// TestParseThemeConfigBadColor 非法十六进制颜色是加载期错误
func TestParseThemeConfigBadColor(t *testing.T) {
	bad := `
stops:
  - hour: 0
    skyTop: "not-a-color"
    horizon: "#102030"
    fog: "#102030"
    accent: "#102030"
    starIntensity: 1.0
`
	if _, err := ParseThemeConfig([]byte(bad)); err == nil {
		t.Error("期望非法颜色返回错误，实际为 nil")
	}
}
