package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/noguen/landing/pkg/config"
)

// 向下翻页 / 向上翻页的按键
var (
	nextPageKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyPageDown, ebiten.KeySpace}
	prevPageKeys = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyPageUp}
)

// handleInput 把滚轮、按键和触摸拖动统一转换成浏览器语义的 deltaY
func (s *LandingScene) handleInput() {
	// Ebitengine 的滚轮 y 向上为正，浏览器 deltaY 向下为正
	if _, dy := ebiten.Wheel(); dy != 0 {
		s.paginatorSystem.HandleWheel(-dy * config.WheelLineHeight)
	}

	for _, k := range nextPageKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.paginatorSystem.HandleWheel(config.KeyStepDelta)
		}
	}
	for _, k := range prevPageKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.paginatorSystem.HandleWheel(-config.KeyStepDelta)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.reload()
	}

	s.handleTouch()
}

// handleTouch 手指上滑相当于向下滚动
func (s *LandingScene) handleTouch() {
	if delta := s.touch.Update(); delta != 0 {
		s.paginatorSystem.HandleWheel(delta)
	}
}
