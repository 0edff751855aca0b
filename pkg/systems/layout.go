package systems

import (
	"sort"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/ecs"
)

// SectionRows 一屏内按行号排列的行实体
type SectionRows struct {
	Entities []ecs.EntityID
	Heights  []float64
	// Arrows 箭头组实体，没有为 0
	Arrows ecs.EntityID
}

// GroupSections 把行实体按屏分组，屏内按行号排序
//
// rowHeight 返回某行在当前渲染器中的高度（窗口版用像素，终端版用行数）。
// 超出 [0, sections) 的实体被忽略。
func GroupSections(em *ecs.EntityManager, sections int, rowHeight func(ecs.EntityID, *components.RowComponent) float64) []SectionRows {
	if sections < 0 {
		sections = 0
	}
	type entry struct {
		entity ecs.EntityID
		row    int
		height float64
	}
	buckets := make([][]entry, sections)
	groups := make([]SectionRows, sections)

	for _, entity := range ecs.GetEntitiesWith1[*components.RowComponent](em) {
		rc, _ := ecs.GetComponent[*components.RowComponent](em, entity)
		if rc.Section < 0 || rc.Section >= sections {
			continue
		}
		if ecs.HasComponent[*components.BlinkingArrowComponent](em, entity) {
			groups[rc.Section].Arrows = entity
			continue
		}
		buckets[rc.Section] = append(buckets[rc.Section], entry{entity, rc.Row, rowHeight(entity, rc)})
	}

	for si, rows := range buckets {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].row < rows[j].row })
		for _, e := range rows {
			groups[si].Entities = append(groups[si].Entities, e.entity)
			groups[si].Heights = append(groups[si].Heights, e.height)
		}
	}
	return groups
}

// LayoutSection 在一屏内纵向排列各行，整体垂直居中
//
// 参数：
//   - heights: 各行高度（自上而下）
//   - trailer: 最后一行之后附加块（滚动提示箭头）的高度，没有为 0
//   - viewportHeight: 一屏的高度
//
// 返回：
//   - ys: 各行顶部相对屏幕顶部的偏移
//   - trailerY: 附加块顶部的偏移
//
// 内容超出一屏时 top 为负数，由调用方按屏裁剪。
func LayoutSection(heights []float64, trailer, viewportHeight float64) (ys []float64, trailerY float64) {
	total := trailer
	for _, h := range heights {
		total += h
	}

	y := (viewportHeight - total) / 2
	ys = make([]float64, len(heights))
	for i, h := range heights {
		ys[i] = y
		y += h
	}
	return ys, y
}

// ArrowStackHeight 箭头组总高度：上边距 + n 个箭头，后面的箭头向上叠压
func ArrowStackHeight(count int, size, overlap, paddingTop float64) float64 {
	if count <= 0 {
		return 0
	}
	return paddingTop + float64(count)*size - float64(count-1)*overlap
}
