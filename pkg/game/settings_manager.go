package game

import (
	"fmt"
	"log"

	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 显示偏好
// 只记录窗口相关的偏好，页面状态（当前页、动画进度）不持久化
type DisplaySettings struct {
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	WindowWidth  int  `yaml:"windowWidth"`  // 上次退出时的窗口宽度
	WindowHeight int  `yaml:"windowHeight"` // 上次退出时的窗口高度
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen:   false,
		WindowWidth:  config.DefaultWindowWidth,
		WindowHeight: config.DefaultWindowHeight,
	}
}

// SettingsManager 设置管理器
// 负责显示偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings // 当前设置
}

// 存储路径常量
const (
	settingsAppName  = "noguen_landing"
	settingsObject   = "settings"
	settingsProperty = "display"
)

// OpenSettingsStorage 打开 gdata 存储
// 失败时返回 nil，调用方进入降级模式（仅内存设置）
func OpenSettingsStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: storage dir unavailable: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: settingsAppName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查；加载失败只记录日志，不影响创建
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值上反序列化，旧文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sanitizeSettings(loaded)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowSize 记录窗口尺寸，非正数忽略（全屏或最小化时的尺寸不记录）
func (sm *SettingsManager) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sm.settings.WindowWidth = width
	sm.settings.WindowHeight = height
}

// sanitizeSettings 把损坏的窗口尺寸恢复为默认值
func sanitizeSettings(s *DisplaySettings) {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		s.WindowWidth = config.DefaultWindowWidth
		s.WindowHeight = config.DefaultWindowHeight
	}
}
