package timeline

// Phase 表示滚动旅程的粗粒度阶段
//
// 阶段流转：
//
//	Entry → Dwell → Exiting → ExitComplete
//
// 向上滚动时可以反向回退，Exiting → Dwell 的回退由迟滞
// （armed 标志）守护，避免在边界附近来回滚动时闪烁。
type Phase int

const (
	// PhaseEntry 入场阶段：飞行层随滚动爬升（progress 0 → 1）
	PhaseEntry Phase = iota

	// PhaseDwell 驻留阶段：progress 固定为 1，到达画面保持稳定
	PhaseDwell

	// PhaseExiting 退场阶段：飞行层整体平移淡出（exitProgress 0 → 1）
	PhaseExiting

	// PhaseExitComplete 退场完成：飞行层完全隐藏，仅渲染落地层
	PhaseExitComplete
)

// String 返回阶段的可读名称（用于日志和 verify 工具）
func (p Phase) String() string {
	switch p {
	case PhaseEntry:
		return "Entry"
	case PhaseDwell:
		return "Dwell"
	case PhaseExiting:
		return "Exiting"
	case PhaseExitComplete:
		return "ExitComplete"
	default:
		return "Unknown"
	}
}
