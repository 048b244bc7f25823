package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qiuyin/skyfolio/internal/skygen"
	"github.com/qiuyin/skyfolio/pkg/config"
)

// SkyAssets 预生成的天空素材
// 由 LoadingScene 分帧生成，FlightScene 只读消费。
type SkyAssets struct {
	// CloudTiles 视差云层纹理，索引 0 为最远（最慢）的一层
	CloudTiles []*ebiten.Image

	// Aurora 极光强度条带（预乘白色，渲染时染色）
	Aurora *ebiten.Image

	// Stars 星场（归一化位置）
	Stars []skygen.Star
}

// skyAssetSeed 素材生成种子
// 固定种子保证每次启动看到相同的天空（刻意为之，便于复现视觉问题）
const skyAssetSeed int64 = 20240601

// assetStepCount 素材生成的总步数（加载进度的分母）
func assetStepCount() int {
	return config.CloudLayerCount + 2 // 云层 + 极光 + 星场
}

// generateAssetStep 执行第 step 步素材生成
// 每步耗时可控（最大一张 256² 噪声纹理），加载场景按帧推进。
func (a *SkyAssets) generateAssetStep(step int) {
	switch {
	case step < config.CloudLayerCount:
		// 远层云更平缓（低倍频），近层云更破碎
		opt := skygen.DefaultCloudTileOptions(config.CloudTileSize)
		opt.Octaves = 4 + step
		opt.Scale = 0.008 + 0.004*float64(step)
		opt.Coverage = 0.44 + 0.04*float64(step)
		tile := skygen.CloudTile(skyAssetSeed+int64(step), opt)
		a.CloudTiles = append(a.CloudTiles, ebiten.NewImageFromImage(tile))

	case step == config.CloudLayerCount:
		strip := skygen.AuroraStrip(skyAssetSeed+100, 512, 160)
		a.Aurora = ebiten.NewImageFromImage(strip)

	default:
		a.Stars = skygen.StarField(skyAssetSeed+200, config.StarCount)
	}
}
