package systems

import (
	"math"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/utils"
)

// BlinkingArrowSystem 滚动提示箭头的闪烁时序
type BlinkingArrowSystem struct {
	entityManager *ecs.EntityManager
}

// NewBlinkingArrowSystem 创建箭头系统
func NewBlinkingArrowSystem(em *ecs.EntityManager) *BlinkingArrowSystem {
	return &BlinkingArrowSystem{entityManager: em}
}

// NewBlinkingArrowComponent 使用默认参数创建箭头组
func NewBlinkingArrowComponent() *components.BlinkingArrowComponent {
	return &components.BlinkingArrowComponent{
		Count:   config.ArrowCount,
		Period:  config.ArrowBlinkPeriod,
		Stagger: config.ArrowBlinkStagger,
	}
}

// Update 推进所有箭头组的时钟
func (s *BlinkingArrowSystem) Update(dt float64) {
	for _, entity := range ecs.GetEntitiesWith1[*components.BlinkingArrowComponent](s.entityManager) {
		comp, ok := ecs.GetComponent[*components.BlinkingArrowComponent](s.entityManager, entity)
		if !ok {
			continue
		}
		comp.Elapsed += dt
	}
}

// Opacity 第 i 个箭头的当前不透明度
//
// 延迟 i·Stagger 之前保持 0；之后按 0 → 1 → 0 的关键帧循环，
// 每段关键帧使用 CSS ease 曲线。
func Opacity(comp *components.BlinkingArrowComponent, i int) float64 {
	if comp == nil || comp.Period <= 0 || i < 0 || i >= comp.Count {
		return 0
	}

	local := comp.Elapsed - float64(i)*comp.Stagger
	if local < 0 {
		return 0
	}

	phase := math.Mod(local, comp.Period) / comp.Period
	if phase < 0.5 {
		return utils.EaseCSS(phase * 2)
	}
	return 1 - utils.EaseCSS((phase-0.5)*2)
}
