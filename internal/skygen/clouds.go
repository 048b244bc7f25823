// Package skygen 生成程序化天空素材
//
// 本包只产出标准库的 image.RGBA，不依赖渲染后端；
// 场景层负责把结果转换为 GPU 纹理。所有生成都由种子决定，
// 相同种子得到相同素材（加载进度可复现）。
package skygen

import (
	"image"
	"image/color"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// CloudTileOptions 云纹理生成参数
type CloudTileOptions struct {
	// Size 纹理边长（像素），必须为正
	Size int

	// Octaves 分形布朗运动叠加的倍频数（典型 4~6）
	Octaves int

	// Persistence 每个倍频的振幅衰减（典型 0.5）
	Persistence float64

	// Scale 噪声采样尺度，越小云团越大
	Scale float64

	// Coverage 云量阈值（0~1），低于阈值的噪声值为全透明
	// 越小云越多
	Coverage float64

	// Softness 阈值以上到全不透明的过渡宽度
	Softness float64
}

// DefaultCloudTileOptions 返回一组柔和的积云参数
func DefaultCloudTileOptions(size int) CloudTileOptions {
	return CloudTileOptions{
		Size:        size,
		Octaves:     5,
		Persistence: 0.5,
		Scale:       0.012,
		Coverage:    0.48,
		Softness:    0.3,
	}
}

// fbm 分形布朗运动：多倍频 opensimplex 噪声叠加，输出归一化到 [0, 1]
func fbm(noise opensimplex.Noise, x, y float64, octaves int, persistence float64) float64 {
	var total, frequency, amplitude, maxValue float64 = 0, 1, 1, 0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	// Eval2 输出约 [-1, 1]，折算到 [0, 1]
	return (total/maxValue + 1) / 2
}

// CloudTile 生成一张带软边透明度的白色云纹理
//
// 噪声值经过 coverage 阈值与 softness 过渡得到 alpha：
// 阈值以下全透明，阈值 + softness 以上全不透明，中间平滑过渡。
// 预乘 alpha 的白色像素可直接用颜色缩放染色。
func CloudTile(seed int64, opt CloudTileOptions) *image.RGBA {
	if opt.Size <= 0 {
		opt = DefaultCloudTileOptions(256)
	}
	noise := opensimplex.New(seed)

	img := image.NewRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	half := float64(opt.Size) / 2
	for y := 0; y < opt.Size; y++ {
		for x := 0; x < opt.Size; x++ {
			v := fbm(noise, float64(x)*opt.Scale, float64(y)*opt.Scale, opt.Octaves, opt.Persistence)

			// 径向衰减：纹理边缘透明，避免平铺时出现接缝感
			dx := (float64(x) - half) / half
			dy := (float64(y) - half) / half
			falloff := 1 - (dx*dx + dy*dy)
			if falloff < 0 {
				falloff = 0
			}
			v *= falloff

			a := smoothstep(opt.Coverage, opt.Coverage+opt.Softness, v)
			px := uint8(a * 255)
			img.SetRGBA(x, y, color.RGBA{R: px, G: px, B: px, A: px})
		}
	}
	return img
}

// AuroraStrip 生成极光强度条带（宽 width、高 height）
//
// 每一列的强度由低频噪声决定，竖直方向上从顶部向下衰减，
// 形成"帘幕"形态。输出同样是预乘白色，由场景层染色。
func AuroraStrip(seed int64, width, height int) *image.RGBA {
	noise := opensimplex.New(seed)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for x := 0; x < width; x++ {
		// 每列的帘幕强度与起始高度
		colNoise := fbm(noise, float64(x)*0.004, 0, 3, 0.5)
		curtain := fbm(noise, float64(x)*0.018, 7.3, 4, 0.5)
		top := colNoise * float64(height) * 0.35

		for y := 0; y < height; y++ {
			fy := float64(y)
			if fy < top {
				continue
			}
			// 离帘幕顶部越远越暗
			fall := 1 - (fy-top)/(float64(height)-top)
			if fall < 0 {
				fall = 0
			}
			a := curtain * fall * fall
			px := uint8(a * 200)
			img.SetRGBA(x, y, color.RGBA{R: px, G: px, B: px, A: px})
		}
	}
	return img
}

// smoothstep 经典三次平滑阶跃：edge0 以下 0，edge1 以上 1
func smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
