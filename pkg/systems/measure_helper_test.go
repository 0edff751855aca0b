package systems

import "unicode/utf8"

// runeMeasurer 每个字符固定宽度的测量器，记录调用次数
type runeMeasurer struct {
	advance float64
	calls   int
}

func (m *runeMeasurer) MeasureWidth(s string) float64 {
	m.calls++
	return float64(utf8.RuneCountInString(s)) * m.advance
}

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}
