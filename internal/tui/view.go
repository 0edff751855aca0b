package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
	"github.com/noguen/landing/pkg/systems"
	"github.com/noguen/landing/pkg/utils"
)

// 终端里的行高（行数）
const (
	loopRowLines   = 2
	centerRowLines = 2
	arrowLines     = config.ArrowCount
)

// arrowGlyph 单个向下箭头
const arrowGlyph = "v"

type styles struct {
	outline lipgloss.Style
	fill    lipgloss.Style
	arrow   lipgloss.Style
	spinner lipgloss.Style
	status  lipgloss.Style
	dot     lipgloss.Style
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func newStyles() styles {
	accent := hexColor(config.AccentColor)
	return styles{
		outline: lipgloss.NewStyle().Foreground(accent),
		fill:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Bold(true),
		arrow:   lipgloss.NewStyle().Foreground(hexColor(config.ArrowColor)).Bold(true),
		spinner: lipgloss.NewStyle().Foreground(accent),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		dot:     lipgloss.NewStyle().Foreground(accent),
	}
}

func (m *model) View() string {
	if m.cols <= 0 || m.rows <= 0 {
		return ""
	}

	g := m.splashSystem.Gate()
	if g == nil {
		return ""
	}
	if g.SpinnerVisible {
		spin := m.spinner.View()
		if g.SpinnerAlpha < 0.5 {
			spin = lipgloss.NewStyle().Faint(true).Render(spin)
		}
		return lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, spin)
	}

	bodyRows := m.rows - 1
	lines := make([]string, bodyRows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", m.cols)
	}
	if m.mounted && bodyRows > 0 {
		m.renderSections(lines, g.ContentAlpha)
	}
	lines = append(lines, m.footer())

	for i, line := range lines {
		lines[i] = truncate.String(line, uint(m.cols))
	}
	return strings.Join(lines, "\n")
}

// groupRows 终端版行高按行类型取固定行数
func (m *model) groupRows() []systems.SectionRows {
	em := m.entityManager
	return systems.GroupSections(em, len(m.content.Sections), func(entity ecs.EntityID, _ *components.RowComponent) float64 {
		if ecs.HasComponent[*components.CenterStopComponent](em, entity) {
			return centerRowLines
		}
		return loopRowLines
	})
}

// renderSections 按分页偏移把每屏的行写入 lines
func (m *model) renderSections(lines []string, alpha float64) {
	h := float64(len(lines))
	offsetY := m.paginatorSystem.OffsetY(h)

	for si, grp := range m.groupRows() {
		top := float64(si)*h + offsetY
		if top >= h || top+h <= 0 {
			continue
		}

		trailer := 0.0
		if grp.Arrows != 0 {
			trailer = arrowLines
		}
		ys, arrowsY := systems.LayoutSection(grp.Heights, trailer, h)

		put := func(y float64, line string) {
			row := int(math.Round(top + y))
			// 每屏 overflow: hidden
			if row < 0 || row >= len(lines) || float64(row) < math.Floor(top) || float64(row) >= top+h {
				return
			}
			lines[row] = line
		}

		for i, entity := range grp.Entities {
			textY := ys[i] + math.Floor((grp.Heights[i]-1)/2)
			if line, ok := m.renderRow(entity, alpha); ok {
				put(textY, line)
			}
		}

		if grp.Arrows != 0 {
			comp, ok := ecs.GetComponent[*components.BlinkingArrowComponent](m.entityManager, grp.Arrows)
			if !ok {
				continue
			}
			for i := 0; i < comp.Count; i++ {
				put(arrowsY+float64(i), m.renderArrow(comp, i, alpha))
			}
		}
	}
}

func (m *model) renderRow(entity ecs.EntityID, alpha float64) (string, bool) {
	em := m.entityManager
	if loop, ok := ecs.GetComponent[*components.LoopMarqueeComponent](em, entity); ok {
		return m.renderLoop(loop, alpha), true
	}
	if cs, ok := ecs.GetComponent[*components.CenterStopComponent](em, entity); ok {
		if cs.Phase == components.CenterStopPending {
			return "", false
		}
		return m.renderCenterStop(cs, alpha), true
	}
	return "", false
}

// entering 入场淡入期间整体变暗
func (m *model) entering(style lipgloss.Style, alpha float64) func(string) string {
	if alpha < 1 {
		style = style.Faint(true)
	}
	return func(s string) string {
		return style.Render(strings.ReplaceAll(s, utils.NoBreakSpace, " "))
	}
}

// renderLoop 两份重复文本首尾相接
func (m *model) renderLoop(comp *components.LoopMarqueeComponent, alpha float64) string {
	if comp.IsEmpty() {
		return strings.Repeat(" ", m.cols)
	}
	style := m.entering(m.styles.outline, alpha)
	return placeSegments([]segment{
		{text: comp.Repeated, style: style},
		{text: comp.Repeated, style: style},
	}, pxToCells(systems.LoopOffset(comp)), m.cols)
}

// renderCenterStop 前后缀描边色，目标词淡入过半后切换为填充
func (m *model) renderCenterStop(comp *components.CenterStopComponent, alpha float64) string {
	outline := m.entering(m.styles.outline, alpha)
	start := pxToCells(comp.TranslateX)
	if !comp.TargetFound {
		return placeSegments([]segment{{text: comp.FullText, style: outline}}, start, m.cols)
	}

	target := outline
	if comp.FadeProgress >= 0.5 {
		target = m.entering(m.styles.fill, alpha)
	}
	return placeSegments([]segment{
		{text: comp.Prefix, style: outline},
		{text: comp.TargetText, style: target},
		{text: comp.Suffix, style: outline},
	}, start, m.cols)
}

func (m *model) renderArrow(comp *components.BlinkingArrowComponent, i int, alpha float64) string {
	opacity := systems.Opacity(comp, i) * alpha
	glyph := " "
	switch {
	case opacity >= 0.6:
		glyph = m.styles.arrow.Render(arrowGlyph)
	case opacity >= 0.15:
		glyph = m.styles.arrow.Faint(true).Render(arrowGlyph)
	}
	left := (m.cols - 1) / 2
	if left < 0 {
		left = 0
	}
	return strings.Repeat(" ", left) + glyph
}

// footer 底部显示页码圆点，或最近一次的状态提示
func (m *model) footer() string {
	if m.statusMessage != "" {
		return m.styles.status.Render(m.statusMessage)
	}

	n := len(m.content.Sections)
	dots := make([]string, n)
	current := m.paginatorSystem.PageIndex()
	for i := range dots {
		if i == current {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return lipgloss.PlaceHorizontal(m.cols, lipgloss.Center, m.styles.dot.Render(strings.Join(dots, " ")))
}
