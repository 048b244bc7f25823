package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/qiuyin/skyfolio/pkg/theme"
)

// ThemeStopConfig 单个小时桶的 yaml 表示（data/themes.yaml）
// 颜色以十六进制字符串给出，加载时解析为 colorful.Color。
type ThemeStopConfig struct {
	Hour          float64 `yaml:"hour"`          // 小时（0 ~ 23.99）
	SkyTop        string  `yaml:"skyTop"`        // 天空顶部颜色，如 "#0a0a2e"
	Horizon       string  `yaml:"horizon"`       // 地平线颜色
	Fog           string  `yaml:"fog"`           // 雾带颜色
	Accent        string  `yaml:"accent"`        // 文案强调色
	StarIntensity float64 `yaml:"starIntensity"` // 星光强度 0.0 ~ 1.0
}

// ThemeConfig 昼夜主题配置
type ThemeConfig struct {
	Stops []ThemeStopConfig `yaml:"stops"`
}

// Build 将配置转换为可采样的主题
// 任何非法十六进制颜色都是加载期错误（不做静默降级）。
func (c *ThemeConfig) Build() (*theme.Theme, error) {
	stops := make([]theme.Stop, 0, len(c.Stops))
	for i, s := range c.Stops {
		parsed := theme.Stop{Hour: s.Hour, StarIntensity: s.StarIntensity}
		var err error
		if parsed.SkyTop, err = colorful.Hex(s.SkyTop); err != nil {
			return nil, fmt.Errorf("stop %d: bad skyTop color %q: %w", i, s.SkyTop, err)
		}
		if parsed.Horizon, err = colorful.Hex(s.Horizon); err != nil {
			return nil, fmt.Errorf("stop %d: bad horizon color %q: %w", i, s.Horizon, err)
		}
		if parsed.Fog, err = colorful.Hex(s.Fog); err != nil {
			return nil, fmt.Errorf("stop %d: bad fog color %q: %w", i, s.Fog, err)
		}
		if parsed.Accent, err = colorful.Hex(s.Accent); err != nil {
			return nil, fmt.Errorf("stop %d: bad accent color %q: %w", i, s.Accent, err)
		}
		stops = append(stops, parsed)
	}
	return theme.New(stops)
}

// ParseThemeConfig 从 yaml 字节解析并构建昼夜主题
func ParseThemeConfig(data []byte) (*theme.Theme, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal theme config: %w", err)
	}
	return cfg.Build()
}

// LoadThemeConfig 从文件加载昼夜主题
func LoadThemeConfig(path string) (*theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme config %s: %w", path, err)
	}
	return ParseThemeConfig(data)
}
