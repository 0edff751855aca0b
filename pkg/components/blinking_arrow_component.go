package components

// BlinkingArrowComponent 依次闪烁的向下箭头组（滚动提示）
type BlinkingArrowComponent struct {
	Count   int     // 箭头数量
	Period  float64 // 单个箭头闪烁周期（秒）
	Stagger float64 // 相邻箭头的延迟（秒）
	Elapsed float64
}
