package systems

import (
	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
)

// MountContent 为内容配置中的每一行创建实体，返回创建的行数
//
// 每行带一个 RowComponent 和对应的跑马灯组件；
// showArrows 的屏额外创建一个箭头实体，Row 为该屏行数（排在最后）。
func MountContent(em *ecs.EntityManager, content *config.ContentConfig) int {
	rows := 0
	for si, section := range content.Sections {
		for ri, row := range section.Rows {
			createRow(em, si, ri, row)
			rows++
		}
		if section.ShowArrows {
			entity := em.CreateEntity()
			ecs.AddComponent(em, entity, &components.RowComponent{Section: si, Row: len(section.Rows)})
			ecs.AddComponent(em, entity, NewBlinkingArrowComponent())
		}
	}
	return rows
}

func createRow(em *ecs.EntityManager, section, index int, row config.RowConfig) {
	entity := em.CreateEntity()

	rc := &components.RowComponent{Section: section, Row: index}
	switch row.Kind {
	case config.RowKindLoop:
		rc.Height = config.LoopMarqueeRowHeight
		ecs.AddComponent(em, entity, &components.LoopMarqueeComponent{
			Text:      row.Text,
			Direction: row.Direction,
			Speed:     row.Speed,
		})
	case config.RowKindCenterStop:
		rc.Height = config.CenterStopRowHeight
		ecs.AddComponent(em, entity, &components.CenterStopComponent{
			FullText:   row.FullText,
			TargetText: row.TargetText,
			Duration:   row.Duration,
			Direction:  row.Direction,
		})
	}
	ecs.AddComponent(em, entity, rc)
}

// UpdateRowsInPlace 把新内容写入已挂载行的输入字段
//
// 调用方保证新旧内容 SameLayout；各系统在下一次 Update 中自行决定是否重算。
func UpdateRowsInPlace(em *ecs.EntityManager, content *config.ContentConfig) {
	for _, entity := range ecs.GetEntitiesWith1[*components.RowComponent](em) {
		rc, _ := ecs.GetComponent[*components.RowComponent](em, entity)
		if rc.Section >= len(content.Sections) {
			continue
		}
		rows := content.Sections[rc.Section].Rows
		if rc.Row >= len(rows) {
			continue // 箭头
		}
		row := rows[rc.Row]

		if loop, ok := ecs.GetComponent[*components.LoopMarqueeComponent](em, entity); ok {
			loop.Text = row.Text
			loop.Direction = row.Direction
			loop.Speed = row.Speed
		}
		if cs, ok := ecs.GetComponent[*components.CenterStopComponent](em, entity); ok {
			cs.FullText = row.FullText
			cs.TargetText = row.TargetText
			cs.Duration = row.Duration
			cs.Direction = row.Direction
		}
	}
}

// UnmountContent 立即销毁所有行实体（分页器和闸门保留）
func UnmountContent(em *ecs.EntityManager) {
	for _, entity := range ecs.GetEntitiesWith1[*components.RowComponent](em) {
		em.DestroyEntity(entity)
	}
	em.RemoveMarkedEntities()
}
