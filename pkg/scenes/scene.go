package scenes

import (
	"github.com/noguen/landing/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 编译期检查落地页实现了可选接口
var (
	_ game.Scene      = (*LandingScene)(nil)
	_ game.Resizable  = (*LandingScene)(nil)
	_ game.Disposable = (*LandingScene)(nil)
)
