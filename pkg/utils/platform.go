//go:build !mobile

package utils

import "os"

// IsMobile 是否以移动端方式运行
// 桌面构建恒为 false；设置 LANDING_MOBILE_EMULATE=1 可在桌面上模拟移动端
func IsMobile() bool {
	return os.Getenv("LANDING_MOBILE_EMULATE") == "1"
}
