package scenes

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/systems"
)

// Draw 实现 game.Scene
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	g := s.splashSystem.Gate()
	if g == nil {
		return
	}

	if s.mounted && s.atlas != nil && g.ContentAlpha > 0 {
		s.drawSections(screen, g.ContentAlpha)
	}

	if g.SpinnerVisible {
		s.drawSpinner(screen, g.SpinnerAlpha)
	}
}

// groupRows 窗口版行高取 RowComponent.Height
func (s *LandingScene) groupRows() []systems.SectionRows {
	return systems.GroupSections(s.entityManager, len(s.content.Sections),
		func(_ ecs.EntityID, rc *components.RowComponent) float64 { return rc.Height })
}

func (s *LandingScene) drawSections(screen *ebiten.Image, alpha float64) {
	w, h := float64(s.width), float64(s.height)
	if w <= 0 || h <= 0 {
		return
	}
	offsetY := s.paginatorSystem.OffsetY(h)
	arrowHeight := systems.ArrowStackHeight(config.ArrowCount, config.ArrowSize, config.ArrowOverlap, config.ArrowPaddingTop)

	for si, grp := range s.groupRows() {
		top := float64(si)*h + offsetY
		if top >= h || top+h <= 0 {
			continue
		}

		// 每屏 overflow: hidden
		clip := screen.SubImage(image.Rect(0, int(math.Floor(top)), s.width, int(math.Ceil(top+h)))).(*ebiten.Image)

		trailer := 0.0
		if grp.Arrows != 0 {
			trailer = arrowHeight
		}
		ys, arrowsY := systems.LayoutSection(grp.Heights, trailer, h)

		for i, entity := range grp.Entities {
			rowTop := top + ys[i]
			if rowTop >= h || rowTop+grp.Heights[i] <= 0 {
				continue
			}
			textY := rowTop + (grp.Heights[i]-s.atlas.LineHeight())/2
			s.drawRow(clip, entity, textY, w, float32(alpha))
		}

		if grp.Arrows != 0 {
			if comp, ok := ecs.GetComponent[*components.BlinkingArrowComponent](s.entityManager, grp.Arrows); ok {
				s.drawArrows(clip, comp, w/2, top+arrowsY+config.ArrowPaddingTop, alpha)
			}
		}
	}
}

func (s *LandingScene) drawRow(dst *ebiten.Image, entity ecs.EntityID, y, viewportWidth float64, alpha float32) {
	em := s.entityManager

	if loop, ok := ecs.GetComponent[*components.LoopMarqueeComponent](em, entity); ok {
		s.drawLoopMarquee(dst, loop, y, viewportWidth, alpha)
		return
	}
	if cs, ok := ecs.GetComponent[*components.CenterStopComponent](em, entity); ok {
		s.drawCenterStop(dst, cs, y, viewportWidth, alpha)
	}
}

// drawLoopMarquee 两份重复文本首尾相接，只画视口内的副本
func (s *LandingScene) drawLoopMarquee(dst *ebiten.Image, comp *components.LoopMarqueeComponent, y, viewportWidth float64, alpha float32) {
	if comp.IsEmpty() || comp.TextWidth <= 0 {
		return
	}

	x0 := systems.LoopOffset(comp)
	copies := 2 * comp.RepeatCount

	first := 0
	if x0 < 0 {
		first = int(math.Floor(-x0 / comp.TextWidth))
	}
	for k := first; k < copies; k++ {
		x := x0 + float64(k)*comp.TextWidth
		if x >= viewportWidth {
			break
		}
		s.atlas.DrawString(dst, comp.SafeText, x, y, false, alpha, viewportWidth)
	}
}

// drawCenterStop 前缀和后缀只描边；目标词描边后按 FadeProgress 叠加填充
func (s *LandingScene) drawCenterStop(dst *ebiten.Image, comp *components.CenterStopComponent, y, viewportWidth float64, alpha float32) {
	if !comp.TargetFound {
		s.atlas.DrawString(dst, comp.FullText, comp.TranslateX, y, false, alpha, viewportWidth)
		return
	}

	x := comp.TranslateX
	x = s.atlas.DrawString(dst, comp.Prefix, x, y, false, alpha, viewportWidth)

	targetX := x
	x = s.atlas.DrawString(dst, comp.TargetText, targetX, y, false, alpha, viewportWidth)
	if comp.FadeProgress > 0 {
		s.atlas.DrawString(dst, comp.TargetText, targetX, y, true, alpha*float32(comp.FadeProgress), viewportWidth)
	}

	s.atlas.DrawString(dst, comp.Suffix, x, y, false, alpha, viewportWidth)
}

// drawArrows 三个向下的 V 形箭头，后面的向上叠压
func (s *LandingScene) drawArrows(dst *ebiten.Image, comp *components.BlinkingArrowComponent, cx, top, contentAlpha float64) {
	scale := config.ArrowSize / 24
	stroke := float32(2 * scale)

	y := top
	for i := 0; i < comp.Count; i++ {
		alpha := systems.Opacity(comp, i) * contentAlpha
		if alpha > 0 {
			clr := withAlpha(config.ArrowColor, alpha)
			left := cx - config.ArrowSize/2
			// 路径 M6 9 l6 6 6-6（24×24 视图框）
			x0, y0 := float32(left+6*scale), float32(y+9*scale)
			x1, y1 := float32(left+12*scale), float32(y+15*scale)
			x2, y2 := float32(left+18*scale), float32(y+9*scale)
			vector.StrokeLine(dst, x0, y0, x1, y1, stroke, clr, true)
			vector.StrokeLine(dst, x1, y1, x2, y2, stroke, clr, true)
		}
		y += config.ArrowSize - config.ArrowOverlap
	}
}

// drawSpinner 浅色底环加四分之一弧，每秒一圈
func (s *LandingScene) drawSpinner(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 || s.width <= 0 || s.height <= 0 {
		return
	}

	cx, cy := float64(s.width)/2, float64(s.height)/2
	r := (config.SpinnerSize - config.SpinnerBorder) / 2
	border := float32(config.SpinnerBorder)

	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), border, withAlpha(config.SpinnerTrackColor, alpha), true)

	// border-top：以正上方为中心的 90° 弧
	const segments = 16
	start := -3*math.Pi/4 + s.spinnerAngle
	sweep := math.Pi / 2
	clr := withAlpha(config.AccentColor, alpha)
	for i := 0; i < segments; i++ {
		a0 := start + sweep*float64(i)/segments
		a1 := start + sweep*float64(i+1)/segments
		vector.StrokeLine(dst,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			border, clr, true)
	}
}
