package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/systems"
)

// frameInterval 动画帧间隔
const frameInterval = time.Second / 30

// ContentLoader 重新读取内容配置（r 键）
type ContentLoader func() (*config.ContentConfig, error)

// Config wires runtime options into the TUI program.
type Config struct {
	Content *config.ContentConfig
	Loader  ContentLoader
}

// frameMsg 驱动所有系统前进一帧
type frameMsg time.Time

type model struct {
	entityManager *ecs.EntityManager
	content       *config.ContentConfig
	loader        ContentLoader

	paginatorSystem  *systems.PaginatorSystem
	loopSystem       *systems.LoopMarqueeSystem
	centerStopSystem *systems.CenterStopSystem
	splashSystem     *systems.SplashGateSystem
	arrowSystem      *systems.BlinkingArrowSystem

	spinner spinner.Model
	styles  styles

	cols, rows int
	mounted    bool

	// statusMessage 底部提示（重载失败等），为空时显示页码
	statusMessage string
}

// New returns a tea.Model ready to be mounted into a Program.
//
// 终端版与窗口版共用同一套系统：文本按单元格宽度测量，
// 字体视为立即就绪，因此加载圈只显示最短时长。
func New(cfg Config) tea.Model {
	return newModel(cfg)
}

func newModel(cfg Config) *model {
	em := ecs.NewEntityManager()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &model{
		entityManager:    em,
		content:          cfg.Content,
		loader:           cfg.Loader,
		paginatorSystem:  systems.NewPaginatorSystem(em),
		loopSystem:       systems.NewLoopMarqueeSystem(em, cellMeasurer{}),
		centerStopSystem: systems.NewCenterStopSystem(em, cellMeasurer{}),
		splashSystem:     systems.NewSplashGateSystem(em),
		arrowSystem:      systems.NewBlinkingArrowSystem(em),
		styles:           newStyles(),
	}
	spin.Style = m.styles.spinner
	m.spinner = spin

	systems.CreatePaginator(em, len(cfg.Content.Sections))
	systems.CreateSplashGate(em)
	m.splashSystem.SetOpenHandler(m.mountContent)
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, nextFrame())
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			m.paginatorSystem.HandleWheel(-config.WheelLineHeight)
		case tea.MouseWheelDown:
			m.paginatorSystem.HandleWheel(config.WheelLineHeight)
		}
		return m, nil

	case frameMsg:
		m.advance(frameInterval.Seconds())
		return m, nextFrame()

	case spinner.TickMsg:
		if g := m.splashSystem.Gate(); g == nil || !g.SpinnerVisible {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "down", "pgdown", " ", "j":
		m.paginatorSystem.HandleWheel(config.KeyStepDelta)
	case "up", "pgup", "k":
		m.paginatorSystem.HandleWheel(-config.KeyStepDelta)
	case "r":
		m.reload()
	}
	return m, nil
}

// resize 终端尺寸换算为逻辑像素宽度交给系统
func (m *model) resize(cols, rows int) {
	m.cols, m.rows = cols, rows
	widthPx := float64(cols) * cellWidthPx
	m.loopSystem.SetViewportWidth(widthPx)
	m.centerStopSystem.SetContainerWidth(widthPx)
}

// advance 推进所有系统
func (m *model) advance(dt float64) {
	m.splashSystem.Update(dt, true)
	m.paginatorSystem.Update(dt)
	m.loopSystem.Update(dt)
	m.centerStopSystem.Update(dt)
	m.arrowSystem.Update(dt)
	m.entityManager.RemoveMarkedEntities()
}

func (m *model) mountContent() {
	if m.mounted {
		return
	}
	m.mounted = true
	rows := systems.MountContent(m.entityManager, m.content)
	log.Printf("[TUI] mounted %d rows", rows)
}

// applyContent 结构不变时原地更新，否则重建所有行
func (m *model) applyContent(content *config.ContentConfig) {
	if m.content.SameLayout(content) {
		m.content = content
		if m.mounted {
			systems.UpdateRowsInPlace(m.entityManager, content)
		}
		return
	}

	m.content = content
	m.paginatorSystem.SetSectionsCount(len(content.Sections))
	if m.mounted {
		systems.UnmountContent(m.entityManager)
		m.mounted = false
		m.mountContent()
	}
}

func (m *model) reload() {
	if m.loader == nil {
		return
	}
	content, err := m.loader()
	if err != nil {
		log.Printf("[TUI] reload failed: %v", err)
		m.statusMessage = "reload failed: " + err.Error()
		return
	}
	m.statusMessage = ""
	m.applyContent(content)
}
