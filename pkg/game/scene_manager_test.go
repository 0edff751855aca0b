package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64

	disposed      int
	width, height int
	resizes       int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Dispose() {
	m.disposed++
}

func (m *MockScene) Resize(width, height int) {
	m.width, m.height = width, height
	m.resizes++
}

// plainScene 只实现 Scene，不实现可选接口
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdateDraw verifies that Update and Draw are forwarded.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%v", mockScene.updateCalled, mockScene.deltaTime)
	}

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene 没有场景时 Update/Draw 不应 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(800, 600)
	sm.Dispose()
}

// TestSceneManagerSwitchDisposes 切换场景时释放旧场景
func TestSceneManagerSwitchDisposes(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.disposed != 0 {
		t.Error("switching to the same scene must not dispose it")
	}

	sm.SwitchTo(second)
	if first.disposed != 1 {
		t.Errorf("old scene disposed %d times, want 1", first.disposed)
	}
	if second.disposed != 0 {
		t.Error("new scene must not be disposed")
	}

	// 不实现 Disposable 的场景也可以切换
	sm.SwitchTo(plainScene{})
	sm.SwitchTo(&MockScene{})
}

// TestSceneManagerResize 尺寸变化转发给当前场景，新场景切入时补发
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	sm.SwitchTo(first)

	sm.Resize(1280, 800)
	sm.Resize(1280, 800)
	if first.resizes != 1 {
		t.Errorf("resizes = %d, unchanged size should not notify", first.resizes)
	}

	second := &MockScene{}
	sm.SwitchTo(second)
	if second.width != 1280 || second.height != 800 {
		t.Errorf("new scene size = %dx%d, want 1280x800", second.width, second.height)
	}
}

// TestSceneManagerReload 测试通过工厂重新创建场景
func TestSceneManagerReload(t *testing.T) {
	sm := NewSceneManager()
	current := &MockScene{}
	sm.SwitchTo(current)

	if err := sm.Reload(); err != nil {
		t.Errorf("Reload() without factory should be a no-op, got %v", err)
	}

	next := &MockScene{}
	sm.SetSceneFactory(func() (Scene, error) { return next, nil })
	if err := sm.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if sm.GetCurrentScene() != next || current.disposed != 1 {
		t.Error("Reload() should switch to the new scene and dispose the old one")
	}

	wantErr := errors.New("bad content")
	sm.SetSceneFactory(func() (Scene, error) { return nil, wantErr })
	if err := sm.Reload(); !errors.Is(err, wantErr) {
		t.Errorf("Reload() error = %v, want %v", err, wantErr)
	}
	if sm.GetCurrentScene() != next {
		t.Error("failed reload must keep the current scene")
	}
}
