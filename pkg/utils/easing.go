package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 落地页上的过渡都按 CSS timing function 的定义来实现，
// 所以这里的核心是一个 cubic-bezier 求解器，常用曲线是它的预设。
//
// 参考：https://www.w3.org/TR/css-easing-1/#cubic-bezier-easing-functions

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// CubicBezier 返回 CSS cubic-bezier(x1, y1, x2, y2) 对应的缓动函数
//
// 曲线端点固定为 (0,0) 和 (1,1)。给定进度 t（即 x），
// 先用牛顿迭代求出参数 u 使 bx(u) = t，失败时退回二分，再返回 by(u)。
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	// 多项式系数（Horner 形式）
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(u float64) float64 { return ((ax*u+bx)*u + cx) * u }
	sampleY := func(u float64) float64 { return ((ay*u+by)*u + cy) * u }
	sampleDX := func(u float64) float64 { return (3*ax*u+2*bx)*u + cx }

	const epsilon = 1e-7

	solve := func(x float64) float64 {
		u := x
		for i := 0; i < 8; i++ {
			dx := sampleX(u) - x
			if math.Abs(dx) < epsilon {
				return u
			}
			d := sampleDX(u)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= dx / d
		}

		lo, hi := 0.0, 1.0
		u = x
		for lo < hi {
			v := sampleX(u)
			if math.Abs(v-x) < epsilon {
				return u
			}
			if x > v {
				lo = u
			} else {
				hi = u
			}
			if hi-lo < epsilon {
				break
			}
			u = (lo + hi) / 2
		}
		return u
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// CSS 预设曲线
var (
	// EaseCSS 对应 CSS 的 ease（关键帧默认曲线）
	EaseCSS = CubicBezier(0.25, 0.1, 0.25, 1)
	// EaseInCSS 对应 CSS 的 ease-in（目标词填色）
	EaseInCSS = CubicBezier(0.42, 0, 1, 1)
	// EaseOutCSS 对应 CSS 的 ease-out（居中滑动）
	EaseOutCSS = CubicBezier(0, 0, 0.58, 1)
	// EasePageTransition 翻页曲线 cubic-bezier(0.77,0,0.175,1)
	EasePageTransition = CubicBezier(0.77, 0, 0.175, 1)
)

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
