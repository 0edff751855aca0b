package systems

import (
	"log"
	"math"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/utils"
)

// PaginatorSystem 整屏滚动分页系统
//
// 滚动量累积超过阈值后提交一次翻页，每次提交最多移动一页，
// 提交后进入冷却，冷却期间到达的滚动量直接丢弃。
// 在首页/末页继续朝边界方向滚动同样会提交（页码不变），并清零累积量、进入冷却。
type PaginatorSystem struct {
	entityManager *ecs.EntityManager
}

// NewPaginatorSystem 创建分页系统
func NewPaginatorSystem(em *ecs.EntityManager) *PaginatorSystem {
	return &PaginatorSystem{entityManager: em}
}

// CreatePaginator 创建分页器实体
func CreatePaginator(em *ecs.EntityManager, sectionsCount int) ecs.EntityID {
	if sectionsCount < 1 {
		sectionsCount = 1
	}
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PaginatorComponent{
		SectionsCount: sectionsCount,
	})
	return entity
}

func (s *PaginatorSystem) paginator() *components.PaginatorComponent {
	_, p, ok := ecs.FirstWith[*components.PaginatorComponent](s.entityManager)
	if !ok {
		return nil
	}
	return p
}

// HandleWheel 处理一次滚动输入
//
// 参数：
//   - deltaY: 浏览器语义的滚动量，正数向下（下一页），负数向上
//
// 返回：
//   - bool: 本次输入是否提交了一次翻页（包括边界处的空提交）
func (s *PaginatorSystem) HandleWheel(deltaY float64) bool {
	p := s.paginator()
	if p == nil || deltaY == 0 {
		return false
	}

	if p.InCooldown() {
		return false
	}

	p.Accumulator += deltaY
	if math.Abs(p.Accumulator) <= config.WheelThreshold {
		return false
	}

	prev := p.PageIndex
	if p.Accumulator > 0 && p.PageIndex < p.SectionsCount-1 {
		p.PageIndex++
	} else if p.Accumulator < 0 && p.PageIndex > 0 {
		p.PageIndex--
	}

	p.Accumulator = 0
	p.CooldownRemaining = config.PageCooldown

	if p.PageIndex != prev {
		s.startTransition(p)
		log.Printf("[Paginator] page %d -> %d", prev, p.PageIndex)
	}
	return true
}

// startTransition 从当前绘制位置开始向 PageIndex 过渡
func (s *PaginatorSystem) startTransition(p *components.PaginatorComponent) {
	p.TransitionFrom = p.VisualPage
	p.TransitionElapsed = 0
	p.TransitionActive = true
}

// Update 推进冷却计时和翻页过渡
func (s *PaginatorSystem) Update(dt float64) {
	p := s.paginator()
	if p == nil {
		return
	}

	if p.CooldownRemaining > 0 {
		p.CooldownRemaining -= dt
		if p.CooldownRemaining <= timeEpsilon {
			p.CooldownRemaining = 0
		}
	}

	if !p.TransitionActive {
		p.VisualPage = float64(p.PageIndex)
		return
	}

	p.TransitionElapsed += dt
	t := utils.Clamp01(p.TransitionElapsed / config.PageTransitionDuration)
	p.VisualPage = utils.Lerp(p.TransitionFrom, float64(p.PageIndex), utils.EasePageTransition(t))
	if t >= 1 {
		p.VisualPage = float64(p.PageIndex)
		p.TransitionActive = false
	}
}

// OffsetY 页面栈当前的纵向偏移（translateY）
func (s *PaginatorSystem) OffsetY(viewportHeight float64) float64 {
	p := s.paginator()
	if p == nil {
		return 0
	}
	return -p.VisualPage * viewportHeight
}

// PageIndex 返回当前页码
func (s *PaginatorSystem) PageIndex() int {
	p := s.paginator()
	if p == nil {
		return 0
	}
	return p.PageIndex
}

// SetSectionsCount 内容重新加载后更新总页数，必要时把当前页夹回范围内
func (s *PaginatorSystem) SetSectionsCount(n int) {
	p := s.paginator()
	if p == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	p.SectionsCount = n
	if p.PageIndex > n-1 {
		p.PageIndex = n - 1
		s.startTransition(p)
	}
}
