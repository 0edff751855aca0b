package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestCubicBezierEndpoints 所有预设曲线在端点处必须精确为 0 和 1
func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]EasingFunc{
		"ease":     EaseCSS,
		"ease-in":  EaseInCSS,
		"ease-out": EaseOutCSS,
		"page":     EasePageTransition,
	}

	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); got != 0 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); got != 1 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
			// 超出范围的输入被截断
			if got := fn(-0.5); got != 0 {
				t.Errorf("%s(-0.5) = %v, 期望 0", name, got)
			}
			if got := fn(1.5); got != 1 {
				t.Errorf("%s(1.5) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestCubicBezierLinear cubic-bezier(0,0,1,1) 等价于线性
func TestCubicBezierLinear(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	for p := 0.0; p <= 1.0; p += 0.05 {
		if got := linear(p); math.Abs(got-p) > 1e-4 {
			t.Errorf("cubic-bezier(0,0,1,1)(%v) = %v, 期望 %v", p, got, p)
		}
	}
}

// TestCubicBezierMonotonic 预设曲线单调不减
func TestCubicBezierMonotonic(t *testing.T) {
	curves := map[string]EasingFunc{
		"ease":     EaseCSS,
		"ease-in":  EaseInCSS,
		"ease-out": EaseOutCSS,
		"page":     EasePageTransition,
	}

	for name, fn := range curves {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-1e-6 {
				t.Errorf("%s 在 %v 处不单调: %v < %v", name, float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}

// TestEaseOutFasterThanEaseIn 缓出曲线前半段领先，缓入曲线落后
func TestEaseOutFasterThanEaseIn(t *testing.T) {
	for p := 0.1; p < 0.95; p += 0.1 {
		out := EaseOutCSS(p)
		in := EaseInCSS(p)
		if out <= p {
			t.Errorf("ease-out(%v) = %v 应该大于线性值", p, out)
		}
		if in >= p {
			t.Errorf("ease-in(%v) = %v 应该小于线性值", p, in)
		}
	}
}

// TestPageTransitionShape 翻页曲线两头慢中间快
func TestPageTransitionShape(t *testing.T) {
	mid := EasePageTransition(0.5)
	if mid < 0.3 || mid > 0.8 {
		t.Errorf("page(0.5) = %v, 期望在中段", mid)
	}
	// 结束很慢
	if v := EasePageTransition(0.9); v < 0.95 {
		t.Errorf("page(0.9) = %v, 期望结束阶段接近终点", v)
	}
	// 开始很慢
	if v := EasePageTransition(0.1); v > 0.05 {
		t.Errorf("page(0.1) = %v, 期望开始阶段很慢", v)
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 should clamp to [0, 1]")
	}
}
