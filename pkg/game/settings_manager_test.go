package game

import (
	"os"
	"testing"

	"github.com/noguen/landing/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowWidth != config.DefaultWindowWidth || settings.WindowHeight != config.DefaultWindowHeight {
		t.Errorf("window size: got %dx%d, want %dx%d",
			settings.WindowWidth, settings.WindowHeight, config.DefaultWindowWidth, config.DefaultWindowHeight)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下 Save() 不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	// 降级模式下 Load() 恢复默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should restore defaults")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_landing_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetWindowSize(1600, 900)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowWidth != 1600 || settings.WindowHeight != 900 {
		t.Errorf("Loaded window size: got %dx%d, want 1600x900", settings.WindowWidth, settings.WindowHeight)
	}
}

// TestSettingsLoadPartialFile 旧文件缺少的字段保持默认值
func TestSettingsLoadPartialFile(t *testing.T) {
	gdataManager := openTestStorage(t, "test_landing_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen should be loaded from file")
	}
	if settings.WindowWidth != config.DefaultWindowWidth {
		t.Errorf("WindowWidth: got %d, want default %d", settings.WindowWidth, config.DefaultWindowWidth)
	}
}

// TestSettingsLoadCorruptFile 损坏的文件回退到默认设置
func TestSettingsLoadCorruptFile(t *testing.T) {
	gdataManager := openTestStorage(t, "test_landing_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() should not fail on corrupt data: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("corrupt settings should fall back to defaults")
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestSetWindowSize 测试窗口尺寸校验
func TestSetWindowSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"正常尺寸", 1024, 768, 1024, 768},
		{"宽度为 0", 0, 768, config.DefaultWindowWidth, config.DefaultWindowHeight},
		{"负数高度", 1024, -1, config.DefaultWindowWidth, config.DefaultWindowHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := NewSettingsManager(nil)
			sm.SetWindowSize(tt.width, tt.height)
			s := sm.GetSettings()
			if s.WindowWidth != tt.wantW || s.WindowHeight != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", s.WindowWidth, s.WindowHeight, tt.wantW, tt.wantH)
			}
		})
	}
}

// TestSanitizeSettings 测试损坏尺寸的修正
func TestSanitizeSettings(t *testing.T) {
	s := &DisplaySettings{Fullscreen: true, WindowWidth: -5, WindowHeight: 600}
	sanitizeSettings(s)
	if s.WindowWidth != config.DefaultWindowWidth || s.WindowHeight != config.DefaultWindowHeight {
		t.Errorf("got %dx%d, want defaults", s.WindowWidth, s.WindowHeight)
	}
	if !s.Fullscreen {
		t.Error("sanitize should not touch Fullscreen")
	}
}
