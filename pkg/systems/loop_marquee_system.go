package systems

import (
	"math"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/utils"
)

// LoopMarqueeSystem 无限循环跑马灯的时序计算
//
// 重复文本至少覆盖两倍视口宽度，两份重复文本首尾相接平移 -100%，
// 形成无缝循环。循环时长 = 总宽度 / 速度，所以不同视口下像素速度相同。
type LoopMarqueeSystem struct {
	entityManager *ecs.EntityManager
	measurer      utils.TextMeasurer
	viewportWidth float64
}

// NewLoopMarqueeSystem 创建无限跑马灯系统
func NewLoopMarqueeSystem(em *ecs.EntityManager, measurer utils.TextMeasurer) *LoopMarqueeSystem {
	return &LoopMarqueeSystem{
		entityManager: em,
		measurer:      measurer,
	}
}

// SetMeasurer 更换测量实现（字体就绪后注入）
func (s *LoopMarqueeSystem) SetMeasurer(m utils.TextMeasurer) {
	s.measurer = m
}

// SetViewportWidth 更新视口宽度，下一次 Update 重算重复次数和时长
func (s *LoopMarqueeSystem) SetViewportWidth(w float64) {
	s.viewportWidth = w
}

// Update 检测输入/视口变化并推进循环
func (s *LoopMarqueeSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.LoopMarqueeComponent](s.entityManager)
	for _, entity := range entities {
		comp, ok := ecs.GetComponent[*components.LoopMarqueeComponent](s.entityManager, entity)
		if !ok {
			continue
		}

		switch {
		case comp.NeedsMeasure():
			s.Recompute(comp, true)
		case comp.NeedsRelayout(s.viewportWidth):
			s.Recompute(comp, false)
		}

		if comp.Duration > 0 {
			comp.Elapsed = math.Mod(comp.Elapsed+dt, comp.Duration)
		}
	}
}

// Recompute 重新计算重复文本与时长
//
// measure 为 false 时复用已缓存的 TextWidth（视口变化的情况）。
// 没有测量能力或视口尚未布局时保持不变，等下一帧再算。
func (s *LoopMarqueeSystem) Recompute(comp *components.LoopMarqueeComponent, measure bool) {
	if utils.IsBlank(comp.Text) {
		comp.SafeText = ""
		comp.TextWidth = 0
		comp.RepeatCount = 0
		comp.Repeated = ""
		comp.Duration = 0
		comp.Elapsed = 0
		comp.MarkApplied(s.viewportWidth)
		return
	}

	if s.measurer == nil || s.viewportWidth <= 0 {
		return
	}

	if measure {
		comp.SafeText = utils.SafeSpaces(comp.Text)
		comp.TextWidth = s.measurer.MeasureWidth(comp.SafeText)
	}
	if comp.TextWidth <= 0 {
		return
	}

	speed := comp.Speed
	if speed <= 0 {
		speed = config.LoopMarqueeDefaultSpeed
	}

	comp.RepeatCount = RepeatCount(s.viewportWidth, comp.TextWidth)
	comp.Repeated = utils.RepeatText(comp.SafeText, comp.RepeatCount)
	comp.Duration = LoopDuration(comp.TextWidth, comp.RepeatCount, speed)
	comp.Elapsed = 0
	comp.MarkApplied(s.viewportWidth)
}

// RepeatCount 计算重复次数：min(ceil(2·vw/w), 100)
func RepeatCount(viewportWidth, textWidth float64) int {
	if textWidth <= 0 {
		return 0
	}
	n := int(math.Ceil(config.LoopMarqueeViewportFactor * viewportWidth / textWidth))
	if n > config.LoopMarqueeMaxRepeat {
		n = config.LoopMarqueeMaxRepeat
	}
	return n
}

// LoopDuration 计算循环时长：w·repeat / speed
func LoopDuration(textWidth float64, repeatCount int, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return textWidth * float64(repeatCount) / speed
}

// LoopOffset 返回第一份重复文本的水平位置，第二份紧随其后（+SpanWidth）
//
// left:  0 → -100%
// right: -100% → 0
func LoopOffset(comp *components.LoopMarqueeComponent) float64 {
	span := SpanWidth(comp)
	if span <= 0 || comp.Duration <= 0 {
		return 0
	}
	progress := comp.Elapsed / comp.Duration
	if comp.Direction == config.DirectionRight {
		return -span + progress*span
	}
	return -progress * span
}

// SpanWidth 一份重复文本的总宽度
func SpanWidth(comp *components.LoopMarqueeComponent) float64 {
	return comp.TextWidth * float64(comp.RepeatCount)
}
