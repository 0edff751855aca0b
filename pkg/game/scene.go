package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在逻辑屏幕尺寸变化时收到通知
//
// 落地页的尺寸等于窗口尺寸，跑马灯需要据此重算重复次数。
type Resizable interface {
	Resize(width, height int)
}

// Disposable 是一个可选接口，场景被替换或程序退出时调用
//
// 实现方在这里销毁所有实体，挂起的倒计时（入场淡入、滑动延迟）随组件一起消失，
// 不会在场景不再显示后继续修改状态。
type Disposable interface {
	Dispose()
}
