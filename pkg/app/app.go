// Package app 提供落地页应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/game"
	"github.com/noguen/landing/pkg/scenes"
	"github.com/noguen/landing/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentPath 内容配置路径，"data/" 前缀从内嵌资源读取
	ContentPath string
	// Fullscreen 强制全屏启动（覆盖已保存的偏好）
	Fullscreen bool
	// NoSave 不读写显示偏好
	NoSave bool
}

// App 是落地页应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	fontManager     *game.FontManager
	content         *config.ContentConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	contentPath := cfg.ContentPath
	if contentPath == "" {
		contentPath = config.DefaultContentPath
	}

	content, err := config.LoadContentConfig(contentPath)
	if err != nil {
		return nil, fmt.Errorf("内容配置加载失败: %w", err)
	}
	log.Printf("[App] content loaded from %s: %d sections", contentPath, len(content.Sections))

	// --no-save 时使用降级模式（仅内存设置）
	var storage *gdata.Manager
	if !cfg.NoSave {
		storage = game.OpenSettingsStorage()
	}
	settingsManager, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	// 字体在后台解析，第一帧只显示加载圈
	fontManager := game.NewFontManager()
	fontManager.LoadDefaultAsync()

	sceneManager := game.NewSceneManager()
	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		fontManager:     fontManager,
		content:         content,
		verbose:         cfg.Verbose,
	}

	// F5 从头重新打开页面（重新读取内容，重放加载圈和入场动画）
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		if err := a.loadContent(contentPath); err != nil {
			return nil, err
		}
		return a.newLandingScene(contentPath), nil
	})

	sceneManager.SwitchTo(a.newLandingScene(contentPath))
	return a, nil
}

// loadContent 重新读取内容配置，失败时保留当前内容
func (a *App) loadContent(contentPath string) error {
	content, err := config.LoadContentConfig(contentPath)
	if err != nil {
		return fmt.Errorf("reload %s: %w", contentPath, err)
	}
	a.content = content
	return nil
}

// newLandingScene 用当前内容创建落地页，R 键从 contentPath 原地重新读取
func (a *App) newLandingScene(contentPath string) *scenes.LandingScene {
	scene := scenes.NewLandingScene(a.fontManager, a.content)
	scene.SetContentLoader(func() (*config.ContentConfig, error) {
		if err := a.loadContent(contentPath); err != nil {
			return nil, err
		}
		return a.content, nil
	})
	return scene
}

// Title 窗口标题：内容配置中的 title，未配置时使用默认值
func (a *App) Title() string {
	if a.content.Title != "" {
		return a.content.Title
	}
	return config.WindowTitle
}

// Settings 返回显示偏好（main 用来设置初始窗口）
func (a *App) Settings() *game.DisplaySettings {
	return a.settingsManager.GetSettings()
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确恢复窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			s := a.settingsManager.GetSettings()
			ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", s.WindowWidth, s.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.sceneManager.Reload(); err != nil {
			log.Printf("[App] restart failed: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		// 进入全屏前记下窗口尺寸
		a.settingsManager.SetWindowSize(ebiten.WindowSize())
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸等于窗口尺寸（页面随窗口缩放而不是拉伸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// SaveOnExit 保存显示偏好并释放场景
func (a *App) SaveOnExit() {
	if !utils.IsMobile() && !ebiten.IsFullscreen() {
		a.settingsManager.SetWindowSize(ebiten.WindowSize())
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	a.sceneManager.Dispose()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
