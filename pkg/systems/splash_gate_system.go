package systems

import (
	"log"
	"math"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/utils"
)

// SplashGateSystem 字体加载遮罩
//
// 加载圈至少显示 SplashMinDuration（从挂载开始计），字体就绪且时间足够后
// 用 SplashFadeDuration 淡出，淡出结束后移除加载圈并打开主内容入场开关。
type SplashGateSystem struct {
	entityManager *ecs.EntityManager

	// onOpen 闸门打开时调用一次（挂载主内容）
	onOpen func()
}

// NewSplashGateSystem 创建闸门系统
func NewSplashGateSystem(em *ecs.EntityManager) *SplashGateSystem {
	return &SplashGateSystem{entityManager: em}
}

// CreateSplashGate 创建闸门实体，时间从此刻开始计算
func CreateSplashGate(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, components.NewSplashGateComponent())
	return entity
}

// SetOpenHandler 注册闸门打开回调
func (s *SplashGateSystem) SetOpenHandler(fn func()) {
	s.onOpen = fn
}

func (s *SplashGateSystem) gate() *components.SplashGateComponent {
	_, g, ok := ecs.FirstWith[*components.SplashGateComponent](s.entityManager)
	if !ok {
		return nil
	}
	return g
}

// Gate 返回当前闸门状态（渲染用），没有闸门实体时返回 nil
func (s *SplashGateSystem) Gate() *components.SplashGateComponent {
	return s.gate()
}

// Update 推进闸门
//
// 参数：
//   - dt: 帧间隔（秒）
//   - fontsReady: 字体是否已就绪（非阻塞轮询的结果）
func (s *SplashGateSystem) Update(dt float64, fontsReady bool) {
	g := s.gate()
	if g == nil {
		return
	}

	g.Elapsed += dt

	switch g.Phase {
	case components.SplashWaitingFonts:
		if !fontsReady {
			return
		}
		g.FontsReadyAt = g.Elapsed
		g.HoldRemaining = math.Max(0, config.SplashMinDuration-g.Elapsed)
		log.Printf("[SplashGate] fonts ready after %.0fms, holding %.0fms",
			g.FontsReadyAt*1000, g.HoldRemaining*1000)
		if g.HoldRemaining <= timeEpsilon {
			s.startFade(g)
			return
		}
		g.Phase = components.SplashHolding

	case components.SplashHolding:
		g.HoldRemaining -= dt
		if g.HoldRemaining <= timeEpsilon {
			g.HoldRemaining = 0
			s.startFade(g)
		}

	case components.SplashFadingOut:
		g.FadeElapsed += dt
		t := utils.Clamp01(g.FadeElapsed / config.SplashFadeDuration)
		g.SpinnerAlpha = 1 - utils.EaseCSS(t)
		if t >= 1 {
			g.SpinnerAlpha = 0
			g.SpinnerVisible = false
			g.ContentEntered = true
			g.EnterElapsed = 0
			g.Phase = components.SplashDone
			log.Printf("[SplashGate] spinner removed, content entering")
			if s.onOpen != nil {
				s.onOpen()
			}
		}

	case components.SplashDone:
		if g.ContentAlpha >= 1 {
			return
		}
		g.EnterElapsed += dt
		g.ContentAlpha = utils.EaseOutCSS(utils.Clamp01(g.EnterElapsed / config.ContentEnterDuration))
	}
}

func (s *SplashGateSystem) startFade(g *components.SplashGateComponent) {
	g.FadeStartedAt = g.Elapsed
	g.FadeElapsed = 0
	g.Phase = components.SplashFadingOut
}

// IsOpen 主内容是否已允许入场
func (s *SplashGateSystem) IsOpen() bool {
	g := s.gate()
	return g != nil && g.ContentEntered
}
