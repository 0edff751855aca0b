package systems

import (
	"log"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/utils"
)

// CenterStopSystem 居中停止跑马灯的状态机
//
// 阶段：
//
//	Pending → Positioned（初始偏移，无过渡）→ 50ms → Sliding（ease-out 滑向居中）
//	        → 过渡结束 → FadeIn（目标词 0.5s ease-in 填色）
//
// 找不到目标词时进入 Static，只描边不滑动。
// FullText、TargetText、Direction 任一变化都从 Pending 重新开始。
type CenterStopSystem struct {
	entityManager  *ecs.EntityManager
	measurer       utils.TextMeasurer
	containerWidth float64

	// onSlideEnd 滑动结束通知（对应 transform 的 transitionend）
	onSlideEnd func(entity ecs.EntityID)
}

// NewCenterStopSystem 创建居中停止跑马灯系统
func NewCenterStopSystem(em *ecs.EntityManager, measurer utils.TextMeasurer) *CenterStopSystem {
	return &CenterStopSystem{
		entityManager: em,
		measurer:      measurer,
	}
}

// SetMeasurer 更换测量实现
func (s *CenterStopSystem) SetMeasurer(m utils.TextMeasurer) {
	s.measurer = m
}

// SetContainerWidth 更新容器宽度（整行宽度等于视口宽度）
// 已开始的序列不受影响，只在下次重新开始时使用新宽度
func (s *CenterStopSystem) SetContainerWidth(w float64) {
	s.containerWidth = w
}

// SetSlideEndHandler 注册滑动结束回调
func (s *CenterStopSystem) SetSlideEndHandler(fn func(entity ecs.EntityID)) {
	s.onSlideEnd = fn
}

// Update 推进所有居中停止跑马灯
func (s *CenterStopSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.CenterStopComponent](s.entityManager)
	for _, entity := range entities {
		comp, ok := ecs.GetComponent[*components.CenterStopComponent](s.entityManager, entity)
		if !ok {
			continue
		}

		if comp.InputsChanged() {
			comp.Reset()
			comp.MarkApplied()
		}

		s.step(entity, comp, dt)
	}
}

func (s *CenterStopSystem) step(entity ecs.EntityID, comp *components.CenterStopComponent, dt float64) {
	switch comp.Phase {
	case components.CenterStopPending:
		// 测量成功后同一帧内放到初始位置，延迟从下一帧开始计时
		s.position(comp)

	case components.CenterStopPositioned:
		comp.DelayRemaining -= dt
		if comp.DelayRemaining <= timeEpsilon {
			comp.DelayRemaining = 0
			comp.TransitionEnabled = true
			comp.SlideElapsed = 0
			comp.Phase = components.CenterStopSliding
			comp.TranslateX = comp.InitialOffset
		}

	case components.CenterStopSliding:
		comp.SlideElapsed += dt
		duration := comp.Duration
		if duration <= 0 {
			duration = config.CenterStopDefaultDuration
		}
		t := utils.Clamp01(comp.SlideElapsed / duration)
		comp.TranslateX = utils.Lerp(comp.InitialOffset, comp.FinalOffset, utils.EaseOutCSS(t))
		if t >= 1 {
			comp.TranslateX = comp.FinalOffset
			comp.FadeIn = true
			comp.FadeElapsed = 0
			comp.Phase = components.CenterStopFadeIn
			if s.onSlideEnd != nil {
				s.onSlideEnd(entity)
			}
		}

	case components.CenterStopFadeIn:
		if comp.FadeProgress >= 1 {
			return
		}
		comp.FadeElapsed += dt
		t := utils.Clamp01(comp.FadeElapsed / config.CenterStopFadeDuration)
		comp.FadeProgress = utils.EaseInCSS(t)
	}
}

// position 测量并计算初始/最终偏移，进入 Positioned 或 Static
// 没有测量能力或容器宽度为 0 时保持 Pending
func (s *CenterStopSystem) position(comp *components.CenterStopComponent) {
	prefix, suffix, found := utils.SplitAtTarget(comp.FullText, comp.TargetText)
	if !found {
		comp.TargetFound = false
		comp.TranslateX = 0
		comp.TransitionEnabled = false
		comp.Phase = components.CenterStopStatic
		log.Printf("[CenterStop] target %q not found, rendering outline only", comp.TargetText)
		return
	}

	if s.measurer == nil || s.containerWidth <= 0 {
		return
	}

	comp.Prefix = prefix
	comp.Suffix = suffix
	comp.TargetFound = true

	comp.ContainerWidth = s.containerWidth
	comp.ContentWidth = s.measurer.MeasureWidth(comp.FullText)
	comp.TargetLeft = s.measurer.MeasureWidth(prefix)
	comp.TargetWidth = s.measurer.MeasureWidth(comp.TargetText)

	comp.InitialOffset, comp.FinalOffset = CenterStopOffsets(
		comp.ContainerWidth, comp.ContentWidth, comp.TargetLeft, comp.TargetWidth, comp.Direction)

	comp.TranslateX = comp.InitialOffset
	comp.TransitionEnabled = false
	comp.FadeIn = false
	comp.DelayRemaining = config.CenterStopStartDelay
	comp.Phase = components.CenterStopPositioned
}

// CenterStopOffsets 计算初始和最终水平偏移
//
//	final   = containerWidth/2 - (targetLeft + targetWidth/2)，与方向无关
//	initial = containerWidth - contentWidth（right，先露出右端）或 0（left）
func CenterStopOffsets(containerWidth, contentWidth, targetLeft, targetWidth float64, dir config.Direction) (initial, final float64) {
	containerCenter := containerWidth / 2
	targetCenter := targetLeft + targetWidth/2
	final = containerCenter - targetCenter

	if dir == config.DirectionRight {
		initial = containerWidth - contentWidth
	}
	return initial, final
}
