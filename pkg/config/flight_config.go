package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qiuyin/skyfolio/pkg/timeline"
)

// FlightConfig 飞行体验配置（data/flight.yaml）
//
// 包含时间轴阈值与滚动输入调参。所有字段都可在 yaml 中省略，
// 省略的字段取默认值。
type FlightConfig struct {
	// Timeline 时间轴阈值（单位 vh，见 pkg/timeline）
	Timeline timeline.Config `yaml:"timeline"`

	// WheelPixelsPerNotch 每格滚轮对应的滚动像素数
	WheelPixelsPerNotch float64 `yaml:"wheelPixelsPerNotch"`

	// KeyScrollPixels 方向键每帧滚动像素数
	KeyScrollPixels float64 `yaml:"keyScrollPixels"`

	// PageScrollFraction PageUp/PageDown/空格滚动的视口高度比例
	PageScrollFraction float64 `yaml:"pageScrollFraction"`

	// DragFactor 触摸拖拽距离到滚动距离的放大系数
	DragFactor float64 `yaml:"dragFactor"`

	// SmoothingRate 呈现偏移向目标偏移逼近的速率（1/秒）
	// 越大越"跟手"；减少动态效果设置开启时直接跳变
	SmoothingRate float64 `yaml:"smoothingRate"`
}

// DefaultFlightConfig 返回默认飞行配置
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		Timeline:            timeline.DefaultConfig(),
		WheelPixelsPerNotch: 96,
		KeyScrollPixels:     14,
		PageScrollFraction:  0.85,
		DragFactor:          1.6,
		SmoothingRate:       7.5,
	}
}

// Validate 校验飞行配置并填充零值字段的默认值
func (c *FlightConfig) Validate() error {
	def := DefaultFlightConfig()
	if c.WheelPixelsPerNotch == 0 {
		c.WheelPixelsPerNotch = def.WheelPixelsPerNotch
	}
	if c.KeyScrollPixels == 0 {
		c.KeyScrollPixels = def.KeyScrollPixels
	}
	if c.PageScrollFraction == 0 {
		c.PageScrollFraction = def.PageScrollFraction
	}
	if c.DragFactor == 0 {
		c.DragFactor = def.DragFactor
	}
	if c.SmoothingRate == 0 {
		c.SmoothingRate = def.SmoothingRate
	}

	if err := c.Timeline.Validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	if c.WheelPixelsPerNotch < 0 || c.KeyScrollPixels < 0 || c.DragFactor < 0 {
		return fmt.Errorf("scroll input factors must be non-negative")
	}
	if c.PageScrollFraction <= 0 || c.PageScrollFraction > 1 {
		return fmt.Errorf("pageScrollFraction must be in (0, 1], got %v", c.PageScrollFraction)
	}
	if c.SmoothingRate <= 0 {
		return fmt.Errorf("smoothingRate must be positive, got %v", c.SmoothingRate)
	}
	return nil
}

// ParseFlightConfig 从 yaml 字节解析飞行配置
func ParseFlightConfig(data []byte) (*FlightConfig, error) {
	cfg := DefaultFlightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flight config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flight config: %w", err)
	}
	return &cfg, nil
}

// LoadFlightConfig 从文件加载飞行配置
func LoadFlightConfig(path string) (*FlightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight config %s: %w", path, err)
	}
	return ParseFlightConfig(data)
}
