package components

// PaginatorComponent 整屏滚动分页状态
//
// 每个落地页场景只有一个分页器实体。
// PageIndex 只由 PaginatorSystem 修改，始终位于 [0, SectionsCount-1]。
type PaginatorComponent struct {
	// PageIndex 当前页（从 0 开始）
	PageIndex int
	// SectionsCount 总页数
	SectionsCount int

	// Accumulator 自上次提交以来累积的 deltaY（带符号）
	Accumulator float64
	// CooldownRemaining 冷却剩余时间（秒），> 0 时拒绝新的翻页
	CooldownRemaining float64

	// 翻页过渡：VisualPage 从 TransitionFrom 缓动到 PageIndex
	TransitionFrom    float64
	TransitionElapsed float64
	TransitionActive  bool
	// VisualPage 当前绘制位置（以页为单位，可为小数）
	VisualPage float64
}

// InCooldown 是否处于冷却期
func (p *PaginatorComponent) InCooldown() bool {
	return p.CooldownRemaining > 0
}
