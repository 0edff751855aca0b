package components

// RowComponent 跑马灯所在的页和行
// Section 决定纵向属于哪一屏，Row 决定屏内顺序
type RowComponent struct {
	Section int
	Row     int
	// Y 行顶部相对所在屏顶部的偏移，由布局计算
	Y float64
	// Height 行高
	Height float64
}
