package game

import "math"

// ScrollState 滚动偏移累积与平滑
//
// 输入层（滚轮 / 触摸拖拽 / 键盘）把增量写入目标偏移，
// 每帧呈现偏移按指数逼近目标，得到惯性感。时间轴只消费
// 呈现偏移这一个标量，对输入来源一无所知。
//
// 与时间轴相同，本结构是单线程事件驱动的：所有方法都在
// 帧回调里同步调用，没有并发访问。
type ScrollState struct {
	target    float64 // 目标偏移（输入直接驱动）
	offset    float64 // 呈现偏移（平滑后，喂给时间轴）
	maxOffset float64 // 目标偏移的上界（来自 Timeline.MaxOffset）

	smoothingRate float64 // 指数逼近速率（1/秒）
	snap          bool    // 减少动态效果：跳过平滑直接跳变
}

// snapDistance 呈现偏移与目标小于该距离时直接对齐，
// 避免尾部无限逼近产生的亚像素抖动
const snapDistance = 0.5

// NewScrollState 创建滚动状态
// smoothingRate 必须为正（配置校验保证）。
func NewScrollState(smoothingRate float64) *ScrollState {
	return &ScrollState{smoothingRate: smoothingRate}
}

// SetMaxOffset 更新可滚动范围上界（视口尺寸变化后调用）
// 现有目标与呈现偏移会被重新钳制。
func (s *ScrollState) SetMaxOffset(max float64) {
	if max < 0 {
		max = 0
	}
	s.maxOffset = max
	s.target = clampOffset(s.target, max)
	s.offset = clampOffset(s.offset, max)
}

// SetReducedMotion 切换减少动态效果模式
func (s *ScrollState) SetReducedMotion(enabled bool) {
	s.snap = enabled
}

// AddDelta 累积一段滚动增量（像素，正值向下）
func (s *ScrollState) AddDelta(px float64) {
	s.target = clampOffset(s.target+px, s.maxOffset)
}

// JumpTo 直接设定目标偏移（Home/End 键）
func (s *ScrollState) JumpTo(px float64) {
	s.target = clampOffset(px, s.maxOffset)
}

// Step 推进一帧平滑，返回新的呈现偏移
// dt 为本帧时长（秒）。减少动态效果模式下直接返回目标偏移。
func (s *ScrollState) Step(dt float64) float64 {
	if s.snap {
		s.offset = s.target
		return s.offset
	}

	diff := s.target - s.offset
	if math.Abs(diff) < snapDistance {
		s.offset = s.target
		return s.offset
	}

	// 指数逼近：帧率无关的平滑
	s.offset += diff * (1 - math.Exp(-s.smoothingRate*dt))
	return s.offset
}

// Offset 返回当前呈现偏移
func (s *ScrollState) Offset() float64 {
	return s.offset
}

// Target 返回当前目标偏移
func (s *ScrollState) Target() float64 {
	return s.target
}

func clampOffset(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
