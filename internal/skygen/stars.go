package skygen

import "math/rand"

// Star 单颗星星的静态属性
// 位置为归一化坐标（0~1），场景层按视口尺寸展开。
type Star struct {
	X, Y float64 // 归一化位置
	Size float64 // 半径（像素，1 ~ 2.4）

	// Twinkle 闪烁相位（0 ~ 2π），场景按时间正弦调制亮度
	Twinkle float64

	// Brightness 基础亮度（0.4 ~ 1.0），与主题星光强度相乘
	Brightness float64
}

// StarField 生成 count 颗星星，分布偏向画面上部（高空更密）
// 相同种子产出相同星场。
func StarField(seed int64, count int) []Star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	for i := range stars {
		y := rng.Float64()
		// 上部加密：y 平方偏置，线性分布会让地平线附近过于拥挤
		y = y * y

		stars[i] = Star{
			X:          rng.Float64(),
			Y:          y,
			Size:       1 + rng.Float64()*1.4,
			Twinkle:    rng.Float64() * 6.28318,
			Brightness: 0.4 + rng.Float64()*0.6,
		}
	}
	return stars
}
