// verify_timeline - 时间轴行为验证工具
//
// 模拟一次完整的滚动轨迹（匀速下滑 → 边界附近抖动 → 回滚 →
// 再次下滑到底），打印每个采样点的时间轴输出与阶段变化。
// 用于肉眼检查迟滞行为：抖动段不应出现阶段来回翻转。
//
// 运行：go run ./cmd/verify_timeline
package main

import (
	"fmt"

	"github.com/qiuyin/skyfolio/pkg/timeline"
)

func main() {
	cfg := timeline.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	tl := timeline.New(cfg)
	tl.Resize(1600, 1000)

	fmt.Printf("视口 1600x1000，最大滚动偏移 %.0f px\n\n", tl.MaxOffset())

	// 滚动轨迹：下滑 → 退场边界附近抖动 → 回滚出退场区 → 滚到底
	var trace []float64
	for off := 0.0; off <= 7200; off += 400 {
		trace = append(trace, off)
	}
	trace = append(trace, 7195, 7202, 7196, 7203, 7197) // 抖动段
	trace = append(trace, 7000, 6600, 6200)             // 回滚
	for off := 6600.0; off <= 8000; off += 350 {
		trace = append(trace, off)
	}
	trace = append(trace, 8000)

	prevPhase := timeline.PhaseEntry
	transitions := 0
	for _, off := range trace {
		f := tl.Update(off)
		marker := "  "
		if f.Phase != prevPhase {
			marker = "=>"
			transitions++
		}
		fmt.Printf("%s offset=%6.0f progress=%.3f eased=%.3f effective=%.3f exit=%.3f translateY=%6.1f opacity=%.3f armed=%-5v phase=%s\n",
			marker, off, f.Progress, f.EasedProgress, f.EffectiveProgress,
			f.ExitProgress, f.LayerTranslateY, f.LayerOpacity, tl.Armed(), f.Phase)
		prevPhase = f.Phase
	}

	fmt.Printf("\n共 %d 次阶段变化（抖动段不应贡献额外变化）\n", transitions)
}
