// Package timeline 实现滚动驱动的动画时间轴核心
//
// 该包将一维滚动偏移 + 视口尺寸转换为一组命名动画参数
// （进度、缓动进度、退场子进度、整层平移量、整层透明度、阶段枚举），
// 供独立的渲染层（天空、云层、文案覆盖层）消费。
//
// 设计要点：
//   - 所有阈值都按"视口高度百分比"定义，视口尺寸变化时必须调用
//     Resize 重新计算像素阈值（过期阈值是明确要防御的 bug 类型）
//   - 进入退场阶段由迟滞（armed 标志 + 入场缓冲）守护，
//     防止用户在边界附近来回滚动时退场动画闪烁
//   - 除 prevOffset / scrollingDown / armed 三个跨事件状态外，
//     所有输出都是输入的纯函数，每帧重新计算
package timeline

import (
	"fmt"

	"github.com/qiuyin/skyfolio/pkg/utils"
)

// 经验调优常量
//
// 这些值只是"避免闪烁的小缓冲"，不承载其他语义，
// 可通过 Config 覆盖。
const (
	// DefaultScrollHeightVh 入场阶段滚动总高度（视口高度的百分比）
	DefaultScrollHeightVh = 700.0

	// DefaultDwellVh 驻留区高度（进度固定为 1 的区段）
	DefaultDwellVh = 100.0

	// DefaultExitVh 退场动画覆盖的滚动区段高度
	DefaultExitVh = 100.0

	// DefaultEntryBufferFraction 退场武装缓冲（视口高度的比例）
	// 轻微越过边界不应立即触发退场
	DefaultEntryBufferFraction = 0.2

	// DefaultExitEpsilon 退场进度吸附阈值
	// 低于该值的退场进度直接归零，避免细微的伪动画
	DefaultExitEpsilon = 0.06

	// layerHiddenThreshold 退场进度达到该值后整层视为完全隐藏
	layerHiddenThreshold = 0.999
)

// Config 时间轴静态配置
// 所有高度类字段的单位都是 vh（视口高度的百分比），
// 像素阈值在 Resize 时根据实际视口尺寸派生。
type Config struct {
	// ScrollHeightVh 入场阶段的名义滚动高度（vh）
	ScrollHeightVh float64 `yaml:"scrollHeightVh"`

	// DwellVh 驻留区高度（vh）
	DwellVh float64 `yaml:"dwellVh"`

	// ExitVh 退场区高度（vh）
	ExitVh float64 `yaml:"exitVh"`

	// EntryBufferFraction 退场武装缓冲，视口高度的比例（0~1）
	EntryBufferFraction float64 `yaml:"entryBufferFraction"`

	// ExitEpsilon 退场进度的归零吸附阈值
	ExitEpsilon float64 `yaml:"exitEpsilon"`
}

// DefaultConfig 返回默认时间轴配置
func DefaultConfig() Config {
	return Config{
		ScrollHeightVh:      DefaultScrollHeightVh,
		DwellVh:             DefaultDwellVh,
		ExitVh:              DefaultExitVh,
		EntryBufferFraction: DefaultEntryBufferFraction,
		ExitEpsilon:         DefaultExitEpsilon,
	}
}

// Validate 校验配置合法性
// 零值字段会被替换为默认值（允许 yaml 省略字段）
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.ScrollHeightVh == 0 {
		c.ScrollHeightVh = def.ScrollHeightVh
	}
	if c.DwellVh == 0 {
		c.DwellVh = def.DwellVh
	}
	if c.ExitVh == 0 {
		c.ExitVh = def.ExitVh
	}
	if c.EntryBufferFraction == 0 {
		c.EntryBufferFraction = def.EntryBufferFraction
	}
	if c.ExitEpsilon == 0 {
		c.ExitEpsilon = def.ExitEpsilon
	}

	if c.ScrollHeightVh < 100 {
		return fmt.Errorf("scrollHeightVh must be >= 100, got %v", c.ScrollHeightVh)
	}
	if c.DwellVh < 0 || c.ExitVh <= 0 {
		return fmt.Errorf("dwellVh must be >= 0 and exitVh > 0, got dwell=%v exit=%v", c.DwellVh, c.ExitVh)
	}
	if c.EntryBufferFraction < 0 || c.EntryBufferFraction >= 1 {
		return fmt.Errorf("entryBufferFraction must be in [0, 1), got %v", c.EntryBufferFraction)
	}
	if c.ExitEpsilon < 0 || c.ExitEpsilon >= 0.5 {
		return fmt.Errorf("exitEpsilon must be in [0, 0.5), got %v", c.ExitEpsilon)
	}
	return nil
}

// Frame 单帧时间轴输出
// 渲染层只读取该结构，不回写；所有比例字段都已限制在 [0, 1]。
type Frame struct {
	// Progress 原始归一化滚动进度（0 顶部 ~ 1 名义滚动终点）
	Progress float64

	// EasedProgress 经过四次方缓出的入场进度
	EasedProgress float64

	// EffectiveProgress 渲染层实际使用的"接近"进度
	// 退场平移开始后固定为 1，使到达画面在退场期间保持稳定
	EffectiveProgress float64

	// ExitProgress 退场子进度，仅在退场武装后非零
	ExitProgress float64

	// LayerTranslateY 飞行层垂直平移量（像素，已缓动）
	LayerTranslateY float64

	// LayerOpacity 飞行层整体透明度（1 完全可见 ~ 0 完全隐藏）
	LayerOpacity float64

	// Phase 当前阶段
	Phase Phase

	// LayerHidden 飞行层是否已完全隐藏（渲染层可整体跳过绘制）
	LayerHidden bool
}

// Timeline 滚动时间轴
//
// 跨事件持久状态只有三个字段：prevOffset（方向检测）、
// scrollingDown（方向保持，偏移不变时沿用上一方向）、armed（退场迟滞）。
// 其余字段是 Resize 时缓存的像素阈值。
type Timeline struct {
	cfg Config

	// 视口相关缓存阈值（Resize 时重算）
	viewportW float64
	viewportH float64

	// maxScrollPx 入场阶段的名义最大滚动距离
	maxScrollPx float64
	// scrollRangePx 整个可滚动范围（入场 + 驻留 + 退场）
	scrollRangePx float64
	// exitRangePx 退场动画覆盖的滚动距离
	exitRangePx float64
	// scrollStartTranslatePx 退场平移开始的滚动偏移
	scrollStartTranslatePx float64
	// entryBufferPx 退场武装缓冲（像素）
	entryBufferPx float64

	// 跨事件状态
	prevOffset    float64
	scrollingDown bool
	armed         bool
}

// New 创建时间轴
// 调用方必须随后调用 Resize 设置视口尺寸，否则所有输出保持中性值。
func New(cfg Config) *Timeline {
	return &Timeline{cfg: cfg}
}

// Config 返回时间轴配置
func (t *Timeline) Config() Config {
	return t.cfg
}

// Resize 根据新的视口尺寸重新计算所有像素阈值
//
// 阈值全部按视口高度百分比设计，而不是固定像素值，
// 因此窗口尺寸变化后必须调用本方法。对同一绝对滚动偏移，
// 阶段判定始终与最新的视口高度保持一致。
func (t *Timeline) Resize(viewportW, viewportH float64) {
	t.viewportW = viewportW
	t.viewportH = viewportH

	if viewportH <= 0 {
		// 退化视口：所有阈值清零，Update 输出中性值
		t.maxScrollPx = 0
		t.scrollRangePx = 0
		t.exitRangePx = 0
		t.scrollStartTranslatePx = 0
		t.entryBufferPx = 0
		return
	}

	// tallDivHeightPx：整个"高容器"的像素高度
	totalVh := t.cfg.ScrollHeightVh + t.cfg.DwellVh + t.cfg.ExitVh
	tallDivHeightPx := totalVh / 100.0 * viewportH

	t.maxScrollPx = t.cfg.ScrollHeightVh/100.0*viewportH - viewportH
	t.exitRangePx = t.cfg.ExitVh / 100.0 * viewportH
	t.scrollRangePx = tallDivHeightPx - viewportH
	t.scrollStartTranslatePx = tallDivHeightPx - viewportH - t.exitRangePx
	t.entryBufferPx = t.cfg.EntryBufferFraction * viewportH
}

// MaxOffset 返回可滚动范围的最大偏移（像素）
// 输入层（滚轮/触摸累积）用它约束目标偏移。
func (t *Timeline) MaxOffset() float64 {
	if t.scrollRangePx < 0 {
		return 0
	}
	return t.scrollRangePx
}

// Viewport 返回最近一次 Resize 设置的视口尺寸
func (t *Timeline) Viewport() (w, h float64) {
	return t.viewportW, t.viewportH
}

// Update 处理一次滚动偏移采样，返回该帧的全部动画参数
//
// 算法（每帧执行）：
//  1. progress = clamp(offset / maxScrollPx)，maxScrollPx <= 0 时退化为 0
//  2. easedProgress = EaseOutQuart(progress)
//  3. 武装规则（迟滞）：向下滚动且越过 scrollStart + entryBuffer 时武装；
//     向上滚动且原始退场进度回落到 exitEpsilon 以下时解除武装
//  4. 武装后 exitProgress = clamp((offset - scrollStart) / exitRange)，
//     低于 exitEpsilon 吸附为 0
//  5. effectiveProgress：向上滚动时始终取 easedProgress；
//     否则退场平移已开始时固定为 1
//  6. layerTranslateY = EaseInOutQuart(exitProgress) * viewportH
//  7. layerOpacity = 1 - EaseInOutQuart(exitProgress)
func (t *Timeline) Update(offsetPx float64) Frame {
	// 方向检测：偏移不变时沿用上一方向
	if offsetPx > t.prevOffset {
		t.scrollingDown = true
	} else if offsetPx < t.prevOffset {
		t.scrollingDown = false
	}
	t.prevOffset = offsetPx

	var f Frame

	// 入场进度（除零防御：退化配置直接输出 0 进度）
	if t.maxScrollPx > 0 {
		f.Progress = utils.Clamp01(offsetPx / t.maxScrollPx)
	}
	f.EasedProgress = utils.EaseOutQuart(f.Progress)

	// 原始退场进度（未过武装与吸附规则，仅用于迟滞判定）
	exitRaw := 0.0
	if t.exitRangePx > 0 && offsetPx > t.scrollStartTranslatePx {
		exitRaw = utils.Clamp01((offsetPx - t.scrollStartTranslatePx) / t.exitRangePx)
	}

	// 迟滞：武装 / 解除武装
	if t.scrollingDown {
		if offsetPx >= t.scrollStartTranslatePx+t.entryBufferPx && t.exitRangePx > 0 {
			t.armed = true
		}
	} else {
		if exitRaw <= t.cfg.ExitEpsilon {
			t.armed = false
		}
	}

	// 退场子进度
	if t.armed {
		f.ExitProgress = exitRaw
		if f.ExitProgress < t.cfg.ExitEpsilon {
			f.ExitProgress = 0
		}
	}

	// 整层平移与透明度
	f.LayerOpacity = 1.0
	if f.ExitProgress > 0 {
		eased := utils.EaseInOutQuart(f.ExitProgress)
		f.LayerTranslateY = eased * t.viewportH
		f.LayerOpacity = 1 - eased
	}
	f.LayerHidden = f.ExitProgress >= layerHiddenThreshold

	// 有效进度：退场平移期间到达画面保持稳定
	switch {
	case !t.scrollingDown:
		f.EffectiveProgress = f.EasedProgress
	case f.LayerTranslateY > 0:
		f.EffectiveProgress = 1
	default:
		f.EffectiveProgress = f.EasedProgress
	}

	// 阶段判定
	switch {
	case f.ExitProgress >= 1:
		f.Phase = PhaseExitComplete
	case f.ExitProgress > 0:
		f.Phase = PhaseExiting
	case f.Progress >= 1:
		f.Phase = PhaseDwell
	default:
		f.Phase = PhaseEntry
	}

	return f
}

// Armed 返回退场迟滞标志当前状态（verify 工具与测试用）
func (t *Timeline) Armed() bool {
	return t.armed
}
