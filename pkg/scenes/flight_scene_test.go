package scenes

import (
	"math"
	"testing"
	"time"

	"github.com/qiuyin/skyfolio/pkg/game"
)

// TestCurrentThemeHour 主题时刻：固定时刻优先，否则取系统时钟
func TestCurrentThemeHour(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

	st := game.DefaultViewerSettings()
	if got := currentThemeHour(st, now); math.Abs(got-14.5) > 1e-9 {
		t.Errorf("跟随时钟模式 hour = %v, 期望 14.5", got)
	}

	st.FixedHour = 21.25
	if got := currentThemeHour(st, now); got != 21.25 {
		t.Errorf("固定时刻模式 hour = %v, 期望 21.25", got)
	}
}

// TestCloudLayerAlpha 云层随爬升消散：远层先消失，近层更持久
func TestCloudLayerAlpha(t *testing.T) {
	const layers = 3

	// 地面：所有层全显
	for i := 0; i < layers; i++ {
		if got := cloudLayerAlpha(0, i, layers); got != 1 {
			t.Errorf("p=0 层 %d alpha = %v, 期望 1", i, got)
		}
	}

	// 顶点：所有层消散（最近层的消散终点 0.95 < 1）
	for i := 0; i < layers; i++ {
		if got := cloudLayerAlpha(1, i, layers); got != 0 {
			t.Errorf("p=1 层 %d alpha = %v, 期望 0", i, got)
		}
	}

	// 中途：远层比近层更透明
	far := cloudLayerAlpha(0.5, 0, layers)
	near := cloudLayerAlpha(0.5, layers-1, layers)
	if far >= near {
		t.Errorf("p=0.5 远层 alpha=%v 应小于近层 alpha=%v", far, near)
	}

	// 零层数防御
	if got := cloudLayerAlpha(0.5, 0, 0); got != 0 {
		t.Errorf("零层数 alpha = %v, 期望 0", got)
	}
}

// TestStarVisibility 星空可见度：时段与爬升高度取并
func TestStarVisibility(t *testing.T) {
	// 深夜地面：全亮
	if got := starVisibility(1, 0); got != 1 {
		t.Errorf("深夜地面可见度 = %v, 期望 1", got)
	}

	// 正午地面：不可见
	if got := starVisibility(0, 0); got != 0 {
		t.Errorf("正午地面可见度 = %v, 期望 0", got)
	}

	// 正午爬到顶点：依然全亮（爬出大气层）
	if got := starVisibility(0, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("正午顶点可见度 = %v, 期望 1", got)
	}

	// 单调性：可见度随爬升不减
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.05 {
		cur := starVisibility(0.2, p)
		if cur < prev-1e-12 {
			t.Fatalf("可见度在 p=%v 处回退", p)
		}
		prev = cur
	}
}

// TestAssetStepCount 加载步数 = 云层数 + 极光 + 星场
func TestAssetStepCount(t *testing.T) {
	if got := assetStepCount(); got != 5 {
		t.Errorf("assetStepCount() = %d, 期望 5", got)
	}
}
