package utils

import "strings"

// NoBreakSpace 不换行空格 U+00A0
// 测量宽度前把普通空格替换成它，避免连续空格被折叠
const NoBreakSpace = "\u00a0"

// TextMeasurer 文本宽度测量能力
//
// 给定字符串，返回其渲染后的像素宽度。
// 桌面端由字形缓存实现，终端端按单元格宽度实现，测试中用固定宽度的假实现。
type TextMeasurer interface {
	MeasureWidth(s string) float64
}

// MeasureFunc 把普通函数适配为 TextMeasurer
type MeasureFunc func(s string) float64

// MeasureWidth 实现 TextMeasurer
func (f MeasureFunc) MeasureWidth(s string) float64 {
	return f(s)
}

// IsBlank 判断文本是否为空或只包含空白
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SafeSpaces 把字面空格替换为不换行空格
func SafeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", NoBreakSpace)
}

// RepeatText 把 s 重复 count 次
// count <= 0 时返回空串
func RepeatText(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// SplitAtTarget 在 target 第一次出现的位置把 full 拆成 prefix + target + suffix
//
// 返回：
//   - prefix, suffix: 目标前后的文本
//   - found: full 中是否包含 target（target 为空视为未找到）
func SplitAtTarget(full, target string) (prefix, suffix string, found bool) {
	if target == "" {
		return "", "", false
	}
	idx := strings.Index(full, target)
	if idx < 0 {
		return "", "", false
	}
	return full[:idx], full[idx+len(target):], true
}
