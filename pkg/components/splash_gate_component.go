package components

// SplashPhase 启动闸门阶段
type SplashPhase int

const (
	// SplashWaitingFonts 等待字体就绪
	SplashWaitingFonts SplashPhase = iota
	// SplashHolding 字体已就绪，补足最短显示时间
	SplashHolding
	// SplashFadingOut 加载圈淡出中
	SplashFadingOut
	// SplashDone 加载圈已移除，主内容入场
	SplashDone
)

// SplashGateComponent 字体加载遮罩状态
type SplashGateComponent struct {
	Phase SplashPhase

	// Elapsed 挂载以来经过的时间
	Elapsed float64
	// FontsReadyAt 字体就绪时的 Elapsed，未就绪为 -1
	FontsReadyAt float64
	// HoldRemaining 补足最短显示时间还需等待的时长
	HoldRemaining float64
	// FadeStartedAt 开始淡出时的 Elapsed，未开始为 -1
	FadeStartedAt float64
	// FadeElapsed 淡出已进行时间
	FadeElapsed float64

	// SpinnerAlpha 加载圈不透明度
	SpinnerAlpha float64
	// SpinnerVisible 加载圈是否仍在渲染树中
	SpinnerVisible bool
	// ContentEntered 主内容入场动画开关
	ContentEntered bool
	// ContentAlpha 主内容入场淡入进度
	ContentAlpha float64
	// EnterElapsed 入场已进行时间
	EnterElapsed float64
}

// NewSplashGateComponent 创建挂载时刻的闸门状态
func NewSplashGateComponent() *SplashGateComponent {
	return &SplashGateComponent{
		Phase:          SplashWaitingFonts,
		FontsReadyAt:   -1,
		FadeStartedAt:  -1,
		SpinnerAlpha:   1,
		SpinnerVisible: true,
	}
}
