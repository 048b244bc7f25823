// Package theme 实现按时段取色的昼夜主题
//
// 主题由若干"小时桶"组成，每个桶给出该时刻的天空顶部色、
// 地平线色、雾色、文案强调色与星光强度。采样时按小时查找
// 相邻两个桶并做线性插值（颜色插值使用 go-colorful），
// 24 点与 0 点之间环绕插值。
package theme

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop 单个小时桶
// 所有颜色字段在配置中以十六进制字符串给出，加载时解析。
type Stop struct {
	// Hour 桶对应的小时（0 ~ 23.99）
	Hour float64

	// SkyTop 天空顶部颜色
	SkyTop colorful.Color

	// Horizon 地平线颜色
	Horizon colorful.Color

	// Fog 雾带颜色
	Fog colorful.Color

	// Accent 文案强调色
	Accent colorful.Color

	// StarIntensity 星光强度（0 白天不可见 ~ 1 深夜最亮）
	StarIntensity float64
}

// Sample 某一时刻的采样结果，已在相邻桶间插值
type Sample struct {
	SkyTop        colorful.Color
	Horizon       colorful.Color
	Fog           colorful.Color
	Accent        colorful.Color
	StarIntensity float64
}

// Theme 昼夜主题：按小时排序的桶序列
type Theme struct {
	stops []Stop
}

// New 根据桶序列创建主题
// 桶会按小时排序；至少需要一个桶，小时必须在 [0, 24) 范围内。
func New(stops []Stop) (*Theme, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("theme requires at least one stop")
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Hour < sorted[j].Hour })

	for i, s := range sorted {
		if s.Hour < 0 || s.Hour >= 24 {
			return nil, fmt.Errorf("stop %d: hour must be in [0, 24), got %v", i, s.Hour)
		}
		if i > 0 && s.Hour == sorted[i-1].Hour {
			return nil, fmt.Errorf("duplicate stop hour %v", s.Hour)
		}
		if s.StarIntensity < 0 || s.StarIntensity > 1 {
			return nil, fmt.Errorf("stop %d: star intensity must be in [0, 1], got %v", i, s.StarIntensity)
		}
	}
	return &Theme{stops: sorted}, nil
}

// At 采样 hour 时刻的主题
// hour 接受任意实数，按 24 小时取模；单桶主题直接返回该桶。
func (t *Theme) At(hour float64) Sample {
	h := math.Mod(hour, 24)
	if h < 0 {
		h += 24
	}

	if len(t.stops) == 1 {
		return stopSample(t.stops[0])
	}

	// 查找 h 所在的相邻桶对（环绕：最后一个桶 → 第一个桶）
	prev := t.stops[len(t.stops)-1]
	next := t.stops[0]
	span := 24 - prev.Hour + next.Hour
	frac := 0.0
	if h >= prev.Hour {
		frac = (h - prev.Hour) / span
	} else if h < next.Hour {
		frac = (24 - prev.Hour + h) / span
	} else {
		for i := 1; i < len(t.stops); i++ {
			if h < t.stops[i].Hour {
				prev = t.stops[i-1]
				next = t.stops[i]
				frac = (h - prev.Hour) / (next.Hour - prev.Hour)
				break
			}
		}
	}

	return Sample{
		SkyTop:        prev.SkyTop.BlendRgb(next.SkyTop, frac),
		Horizon:       prev.Horizon.BlendRgb(next.Horizon, frac),
		Fog:           prev.Fog.BlendRgb(next.Fog, frac),
		Accent:        prev.Accent.BlendRgb(next.Accent, frac),
		StarIntensity: prev.StarIntensity + (next.StarIntensity-prev.StarIntensity)*frac,
	}
}

func stopSample(s Stop) Sample {
	return Sample{
		SkyTop:        s.SkyTop,
		Horizon:       s.Horizon,
		Fog:           s.Fog,
		Accent:        s.Accent,
		StarIntensity: s.StarIntensity,
	}
}

// Blend 在两个采样之间按 t 插值（用于"爬升高度"与时段的双因子混合）
func Blend(a, b Sample, t float64) Sample {
	return Sample{
		SkyTop:        a.SkyTop.BlendRgb(b.SkyTop, t),
		Horizon:       a.Horizon.BlendRgb(b.Horizon, t),
		Fog:           a.Fog.BlendRgb(b.Fog, t),
		Accent:        a.Accent.BlendRgb(b.Accent, t),
		StarIntensity: a.StarIntensity + (b.StarIntensity-a.StarIntensity)*t,
	}
}
