package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qiuyin/skyfolio/pkg/utils"
)

// 云层视差参数（索引 0 为最远层）
var cloudLayerSpeeds = []float64{0.35, 0.65, 1.1} // 垂直视差系数
var cloudLayerScales = []float64{1.6, 2.2, 3.0}   // 纹理放大倍率
var cloudLayerDrifts = []float64{4.0, 7.0, 12.0}  // 水平漂移速度（像素/秒）
var cloudLayerBaseY = []float64{0.15, 0.42, 0.72} // 初始垂直位置（视口比例）

// cloudLayerAlpha 第 layer 层云在进度 p 处的不透明度
//
// 爬升时云层变薄：远层先消失，近层坚持到更高。
// 返回值已钳制在 [0, 1]。
func cloudLayerAlpha(p float64, layer, layerCount int) float64 {
	if layerCount <= 0 {
		return 0
	}
	// 每层的消散终点错开：远层 0.6，近层 0.95
	fadeEnd := 0.6 + 0.35*float64(layer)/float64(maxInt(layerCount-1, 1))
	return utils.Clamp01(1 - p/fadeEnd)
}

// drawClouds 绘制视差云层
//
// 每层用一张云纹理横向平铺，随 EffectiveProgress 向下掠过
// （相机在爬升），随时间缓慢水平漂移。
func (s *FlightScene) drawClouds(dst *ebiten.Image, w, h float64) {
	p := s.frame.EffectiveProgress

	for i, tile := range s.assets.CloudTiles {
		alpha := cloudLayerAlpha(p, i, len(s.assets.CloudTiles))
		if alpha <= 0.004 {
			continue
		}

		scale := cloudLayerScales[i%len(cloudLayerScales)]
		speed := cloudLayerSpeeds[i%len(cloudLayerSpeeds)]
		drift := cloudLayerDrifts[i%len(cloudLayerDrifts)]
		baseY := cloudLayerBaseY[i%len(cloudLayerBaseY)]

		tileW := float64(tile.Bounds().Dx()) * scale
		// 爬升让云向下掠过；缓出让"接近顶点"时云的移动变慢
		y := baseY*h + utils.EaseOutCubic(p)*speed*h
		offsetX := math.Mod(s.elapsed*drift, tileW)

		// 染色：云接近地平线色，远层更暗
		sky := s.skySample()
		tint := sky.Fog.BlendRgb(sky.Horizon, 0.5)
		shade := 0.7 + 0.3*float64(i)/float64(maxInt(len(s.assets.CloudTiles)-1, 1))

		for x := -offsetX - tileW; x < w+tileW; x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, y)
			op.ColorScale.Scale(
				float32(tint.R*shade),
				float32(tint.G*shade),
				float32(tint.B*shade),
				1,
			)
			op.ColorScale.ScaleAlpha(float32(alpha))
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(tile, op)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
