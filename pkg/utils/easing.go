package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuart 四次方缓出
// 特点：前段快、尾段非常缓慢，适合"接近目的地减速"的飞行动画
// 公式：f(t) = 1 - (1-t)⁴
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseInOutQuart 四次方缓入缓出
// 特点：两端缓慢、中段迅速，适合整层平移/淡出类过渡
// 公式：
//
//	t < 0.5: f(t) = 8t⁴
//	t >= 0.5: f(t) = 1 - (-2t + 2)⁴ / 2
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于视差云层的漂移）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（用于滚动提示淡出）
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 v 限制在 [0, 1] 范围内
// 滚动超程（负偏移或超过最大滚动距离）是预期输入，
// 所有派生比例在使用前都必须经过该函数，避免负透明度等非法视觉值。
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
