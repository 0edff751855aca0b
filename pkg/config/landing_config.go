package config

import "image/color"

// 落地页配置常量
//
// 时间单位统一为秒，长度单位统一为逻辑像素。

// 窗口
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 800

	// WindowTitle 窗口标题
	WindowTitle = "NOGUEN"
)

// 分页（滚轮翻页）
const (
	// WheelThreshold 累积滚动量超过此值才提交一次翻页
	WheelThreshold float64 = 50

	// WheelLineHeight 鼠标滚轮一格对应的 deltaY（与浏览器一致）
	WheelLineHeight float64 = 100

	// KeyStepDelta 键盘翻页注入的 deltaY，保证单次按键即可越过阈值
	KeyStepDelta float64 = 2 * WheelThreshold

	// PageCooldown 提交翻页后的冷却时间
	// 必须不小于 PageTransitionDuration，否则一次手势可能连翻两页
	PageCooldown float64 = 1.2

	// PageTransitionDuration 翻页过渡时长
	PageTransitionDuration float64 = 0.8
)

// 跑马灯
const (
	// MarqueeFontSize 跑马灯字号
	MarqueeFontSize float64 = 120

	// LoopMarqueeRowHeight 无限跑马灯行高
	LoopMarqueeRowHeight float64 = 130

	// CenterStopRowHeight 居中停止跑马灯行高
	CenterStopRowHeight float64 = 120

	// LoopMarqueeDefaultSpeed 无限跑马灯默认速度（像素/秒）
	LoopMarqueeDefaultSpeed float64 = 25

	// LoopMarqueeMaxRepeat 重复次数上限
	LoopMarqueeMaxRepeat = 100

	// LoopMarqueeViewportFactor 重复文本至少覆盖的视口宽度倍数
	LoopMarqueeViewportFactor float64 = 2

	// CenterStopDefaultDuration 居中滑动默认时长
	CenterStopDefaultDuration float64 = 3

	// CenterStopStartDelay 初始位置绘制后再开启过渡的延迟
	CenterStopStartDelay float64 = 0.05

	// CenterStopFadeDuration 目标词由描边变为填充的时长
	CenterStopFadeDuration float64 = 0.5

	// OutlineWidth 描边宽度
	OutlineWidth float64 = 1
)

// 启动闸门（字体加载遮罩）
const (
	// SplashMinDuration 加载动画最短显示时间
	SplashMinDuration float64 = 1.0

	// SplashFadeDuration 加载动画淡出时长
	SplashFadeDuration float64 = 0.5

	// SpinnerSize 加载圈直径
	SpinnerSize float64 = 48

	// SpinnerBorder 加载圈线宽
	SpinnerBorder float64 = 5

	// SpinnerPeriod 加载圈旋转一周的时间
	SpinnerPeriod float64 = 1.0

	// ContentEnterDuration 主内容入场淡入时长
	ContentEnterDuration float64 = 0.6
)

// 闪烁箭头
const (
	// ArrowCount 箭头数量
	ArrowCount = 3

	// ArrowBlinkPeriod 单个箭头闪烁周期
	ArrowBlinkPeriod float64 = 1.2

	// ArrowBlinkStagger 相邻箭头的动画延迟
	ArrowBlinkStagger float64 = 0.3

	// ArrowSize 箭头图标尺寸
	ArrowSize float64 = 40

	// ArrowOverlap 第二、三个箭头向上叠压的距离
	ArrowOverlap float64 = 20

	// ArrowPaddingTop 箭头组上边距
	ArrowPaddingTop float64 = 20
)

// 颜色
var (
	// BackgroundColor 页面背景
	BackgroundColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// AccentColor 描边与目标词填充色 #6558EF
	AccentColor = color.RGBA{R: 0x65, G: 0x58, B: 0xEF, A: 0xFF}

	// SpinnerTrackColor 加载圈底色 #F0EEFD
	SpinnerTrackColor = color.RGBA{R: 0xF0, G: 0xEE, B: 0xFD, A: 0xFF}

	// ArrowColor 箭头颜色 #7C83FD
	ArrowColor = color.RGBA{R: 0x7C, G: 0x83, B: 0xFD, A: 0xFF}
)
