//go:build mobile

package utils

// IsMobile 移动端构建恒为 true（没有窗口、F11 和窗口尺寸偏好）
func IsMobile() bool {
	return true
}
