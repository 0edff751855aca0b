package scenes

import (
	"log"
	"math"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/game"
	"github.com/noguen/landing/pkg/systems"
	"github.com/noguen/landing/pkg/utils"
)

// ContentLoader 重新读取内容配置（R 键热重载）
type ContentLoader func() (*config.ContentConfig, error)

// LandingScene 落地页场景
//
// 启动时只有加载圈；字体就绪且满足最短显示时间后，加载圈淡出，
// 随后挂载各屏的跑马灯实体并淡入。之后由滚轮/方向键/触摸逐屏切换。
type LandingScene struct {
	entityManager *ecs.EntityManager
	fontManager   *game.FontManager
	content       *config.ContentConfig
	loader        ContentLoader

	paginatorSystem  *systems.PaginatorSystem
	loopSystem       *systems.LoopMarqueeSystem
	centerStopSystem *systems.CenterStopSystem
	splashSystem     *systems.SplashGateSystem
	arrowSystem      *systems.BlinkingArrowSystem

	atlas      *GlyphAtlas
	fontFailed bool

	width, height int

	// mounted 跑马灯实体是否已挂载（闸门打开后）
	mounted bool

	// 加载圈旋转角度（弧度）
	spinnerAngle float64

	disposed bool

	touch utils.TouchDrag
}

// NewLandingScene 创建落地页场景
//
// 参数：
//   - fm: 字体管理器（可以尚未就绪，场景会轮询）
//   - content: 已校验的内容配置
func NewLandingScene(fm *game.FontManager, content *config.ContentConfig) *LandingScene {
	em := ecs.NewEntityManager()

	s := &LandingScene{
		entityManager:    em,
		fontManager:      fm,
		content:          content,
		paginatorSystem:  systems.NewPaginatorSystem(em),
		loopSystem:       systems.NewLoopMarqueeSystem(em, nil),
		centerStopSystem: systems.NewCenterStopSystem(em, nil),
		splashSystem:     systems.NewSplashGateSystem(em),
		arrowSystem:      systems.NewBlinkingArrowSystem(em),
	}

	systems.CreatePaginator(em, len(content.Sections))
	systems.CreateSplashGate(em)
	s.splashSystem.SetOpenHandler(s.mountContent)
	s.centerStopSystem.SetSlideEndHandler(func(entity ecs.EntityID) {
		if row, ok := ecs.GetComponent[*components.RowComponent](em, entity); ok {
			log.Printf("[LandingScene] section %d row %d reached center", row.Section, row.Row)
		}
	})

	log.Printf("[LandingScene] created with %d sections", len(content.Sections))
	return s
}

// SetContentLoader 设置 R 键热重载使用的加载函数
func (s *LandingScene) SetContentLoader(loader ContentLoader) {
	s.loader = loader
}

// Resize 实现 game.Resizable
func (s *LandingScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.loopSystem.SetViewportWidth(float64(width))
	s.centerStopSystem.SetContainerWidth(float64(width))
	log.Printf("[LandingScene] resized to %dx%d", width, height)
}

// Update 实现 game.Scene
func (s *LandingScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.handleInput()
	s.advance(deltaTime)
}

// advance 推进所有系统（不读取输入）
func (s *LandingScene) advance(dt float64) {
	fontsReady := s.fontManager.IsReady()
	if fontsReady && s.atlas == nil && !s.fontFailed {
		s.initAtlas()
	}

	s.splashSystem.Update(dt, fontsReady)
	s.paginatorSystem.Update(dt)
	s.loopSystem.Update(dt)
	s.centerStopSystem.Update(dt)
	s.arrowSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()

	if g := s.splashSystem.Gate(); g != nil && g.SpinnerVisible {
		s.spinnerAngle = math.Mod(s.spinnerAngle+dt/config.SpinnerPeriod*2*math.Pi, 2*math.Pi)
	}
}

// initAtlas 字体就绪后创建字形缓存并注入给测量方
// 字体解析失败时不再重试，闸门照常打开，文本不绘制
func (s *LandingScene) initAtlas() {
	face, err := s.fontManager.Face(config.MarqueeFontSize)
	if err != nil {
		log.Printf("[LandingScene] font unavailable, marquees will not render: %v", err)
		s.fontFailed = true
		return
	}
	s.atlas = NewGlyphAtlas(face)
	s.loopSystem.SetMeasurer(s.atlas)
	s.centerStopSystem.SetMeasurer(s.atlas)
}

// mountContent 闸门打开后挂载所有行
func (s *LandingScene) mountContent() {
	if s.mounted {
		return
	}
	s.mounted = true
	rows := systems.MountContent(s.entityManager, s.content)
	log.Printf("[LandingScene] mounted %d rows", rows)
}

// ApplyContent 应用新的内容配置
//
// 页数和行类型不变时原地更新输入字段，各组件在下一次 Update 中自行重算
// （居中停止跑马灯只在文本/目标/方向变化时重新开始）；否则重建所有行。
func (s *LandingScene) ApplyContent(content *config.ContentConfig) {
	if content == nil {
		return
	}

	if s.content.SameLayout(content) {
		s.content = content
		if s.mounted {
			systems.UpdateRowsInPlace(s.entityManager, content)
		}
		log.Printf("[LandingScene] content updated in place")
		return
	}

	s.content = content
	s.paginatorSystem.SetSectionsCount(len(content.Sections))
	if s.mounted {
		systems.UnmountContent(s.entityManager)
		s.mounted = false
		s.mountContent()
	}
	log.Printf("[LandingScene] content rebuilt: %d sections", len(content.Sections))
}

// reload 通过 loader 重新读取内容，失败时保留当前内容
func (s *LandingScene) reload() {
	if s.loader == nil {
		return
	}
	content, err := s.loader()
	if err != nil {
		log.Printf("[LandingScene] reload failed, keeping current content: %v", err)
		return
	}
	s.ApplyContent(content)
}

// PageIndex 当前页
func (s *LandingScene) PageIndex() int {
	return s.paginatorSystem.PageIndex()
}

// Dispose 实现 game.Disposable：销毁全部实体和字形缓存
func (s *LandingScene) Dispose() {
	s.entityManager.DestroyAll()
	if s.atlas != nil {
		s.atlas.Dispose()
		s.atlas = nil
	}
	s.mounted = false
	s.disposed = true
	log.Printf("[LandingScene] disposed")
}
