package timeline

import "github.com/qiuyin/skyfolio/pkg/utils"

// Window 可见性窗口
//
// 文案块（项目卡片、滚动提示等）的透明度按固定进度断点
// 做分段线性渐变：淡入 → 保持 → 淡出。四个断点均为
// 归一化进度值（0~1），要求 FadeInStart <= FadeInEnd <=
// FadeOutStart <= FadeOutEnd。
type Window struct {
	FadeInStart  float64 `yaml:"fadeInStart"`  // 开始淡入的进度
	FadeInEnd    float64 `yaml:"fadeInEnd"`    // 完全可见的进度
	FadeOutStart float64 `yaml:"fadeOutStart"` // 开始淡出的进度
	FadeOutEnd   float64 `yaml:"fadeOutEnd"`   // 完全隐藏的进度
}

// Valid 返回窗口断点是否有序且都在 [0, 1] 范围内
func (w Window) Valid() bool {
	if w.FadeInStart < 0 || w.FadeOutEnd > 1 {
		return false
	}
	return w.FadeInStart <= w.FadeInEnd &&
		w.FadeInEnd <= w.FadeOutStart &&
		w.FadeOutStart <= w.FadeOutEnd
}

// Opacity 计算进度 p 处的透明度（0~1）
//
// 分段规则：
//   - p < FadeInStart 或 p > FadeOutEnd：0
//   - FadeInStart ~ FadeInEnd：线性淡入
//   - FadeInEnd ~ FadeOutStart：保持 1
//   - FadeOutStart ~ FadeOutEnd：线性淡出
//
// 退化区段（起止相等）按阶跃处理，不产生除零。
func (w Window) Opacity(p float64) float64 {
	switch {
	case p < w.FadeInStart || p > w.FadeOutEnd:
		return 0
	case p < w.FadeInEnd:
		span := w.FadeInEnd - w.FadeInStart
		if span <= 0 {
			return 1
		}
		return utils.Clamp01((p - w.FadeInStart) / span)
	case p <= w.FadeOutStart:
		return 1
	default:
		span := w.FadeOutEnd - w.FadeOutStart
		if span <= 0 {
			return 0
		}
		return utils.Clamp01((w.FadeOutEnd - p) / span)
	}
}
