//go:build !mobile

// 桌面端构建时 mobile 包只保留空的 Dummy，
// 入口和内嵌内容只在 -tags mobile 时编译（见 mobile.go、embed.go）。
package mobile

// Dummy 保证包在任何构建标签下都能被引用
func Dummy() {}
