package tui

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidthPx 一个终端单元格对应的逻辑像素
// 速度和阈值沿用像素单位，终端里按此换算，跑马灯的相对节奏和窗口版一致
const cellWidthPx = 8.0

// cellMeasurer 按单元格宽度测量文本（实现 utils.TextMeasurer）
type cellMeasurer struct{}

func (cellMeasurer) MeasureWidth(s string) float64 {
	return float64(runewidth.StringWidth(s)) * cellWidthPx
}

// pxToCells 像素偏移换算为单元格，向下取整保证文本不会提前跳动
func pxToCells(px float64) int {
	return int(math.Floor(px / cellWidthPx))
}

// segment 一段使用同一样式的文本
type segment struct {
	text  string
	style func(string) string
}

// placeSegments 把依次相接的文本段放在 start 列，裁剪到 [0, cols)
//
// start 可以为负（文本左侧在屏幕外）。返回恰好 cols 个单元格宽的行，
// 空白处用空格填充。
func placeSegments(segs []segment, start, cols int) string {
	if cols <= 0 {
		return ""
	}

	var b strings.Builder
	col := 0 // 已输出的列
	pos := start
	for _, seg := range segs {
		w := runewidth.StringWidth(seg.text)
		end := pos + w
		if end <= 0 || pos >= cols {
			pos = end
			continue
		}

		if pos > col {
			b.WriteString(strings.Repeat(" ", pos-col))
			col = pos
		}

		visible := sliceCells(seg.text, col-pos, cols-col)
		if visible != "" {
			if seg.style != nil {
				b.WriteString(seg.style(visible))
			} else {
				b.WriteString(visible)
			}
			col += runewidth.StringWidth(visible)
		}
		pos = end
	}

	if col < cols {
		b.WriteString(strings.Repeat(" ", cols-col))
	}
	return b.String()
}

// sliceCells 从第 from 列开始截取不超过 width 列的文本
// 宽字符跨越边界时整字符丢弃
func sliceCells(s string, from, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	col := 0
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col >= from {
			if used+rw > width {
				break
			}
			b.WriteRune(r)
			used += rw
		}
		col += rw
	}
	return b.String()
}
