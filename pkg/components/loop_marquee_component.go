package components

import "github.com/noguen/landing/pkg/config"

// LoopMarqueeComponent 无限循环跑马灯
//
// Text/Direction/Speed 是输入；其余字段由 LoopMarqueeSystem 计算。
// 修改输入字段后，下一次 Update 会自动重算。
type LoopMarqueeComponent struct {
	Text      string
	Direction config.Direction
	Speed     float64 // 像素/秒

	// SafeText 空格替换为不换行空格后的单份文本
	SafeText string
	// TextWidth 单份文本的像素宽度（测量结果缓存，视口变化不重新测量）
	TextWidth float64
	// RepeatCount 重复次数，min(ceil(2·vw/w), 100)
	RepeatCount int
	// Repeated 重复后的整串文本，为空表示不渲染
	Repeated string
	// Duration 一个循环的时长（秒）
	Duration float64
	// Elapsed 当前循环已播放时间
	Elapsed float64

	// 上一次计算时使用的输入，用于检测变化
	appliedText     string
	appliedSpeed    float64
	appliedViewport float64
	computed        bool
}

// NeedsMeasure 文本或速度与上次计算不一致时需要重新测量
func (c *LoopMarqueeComponent) NeedsMeasure() bool {
	return !c.computed || c.Text != c.appliedText || c.Speed != c.appliedSpeed
}

// NeedsRelayout 只有视口宽度变化时，复用已测量的宽度重算
func (c *LoopMarqueeComponent) NeedsRelayout(viewportWidth float64) bool {
	return c.computed && c.appliedViewport != viewportWidth
}

// MarkApplied 记录本次计算使用的输入
func (c *LoopMarqueeComponent) MarkApplied(viewportWidth float64) {
	c.appliedText = c.Text
	c.appliedSpeed = c.Speed
	c.appliedViewport = viewportWidth
	c.computed = true
}

// IsEmpty 是否没有任何内容可渲染
func (c *LoopMarqueeComponent) IsEmpty() bool {
	return c.Repeated == ""
}
