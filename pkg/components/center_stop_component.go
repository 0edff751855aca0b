package components

import "github.com/noguen/landing/pkg/config"

// CenterStopPhase 居中停止跑马灯的阶段
type CenterStopPhase int

const (
	// CenterStopPending 等待测量（容器尚未布局或输入刚变化）
	CenterStopPending CenterStopPhase = iota
	// CenterStopPositioned 已放到初始位置，过渡尚未开启
	CenterStopPositioned
	// CenterStopSliding 过渡开启，正在滑向居中位置
	CenterStopSliding
	// CenterStopFadeIn 滑动结束，目标词由描边渐变为填充
	CenterStopFadeIn
	// CenterStopStatic 文本中找不到目标词，整行只描边、不滑动
	CenterStopStatic
)

// String 返回阶段名称（日志用）
func (p CenterStopPhase) String() string {
	switch p {
	case CenterStopPending:
		return "Pending"
	case CenterStopPositioned:
		return "Positioned"
	case CenterStopSliding:
		return "Sliding"
	case CenterStopFadeIn:
		return "FadeIn"
	case CenterStopStatic:
		return "Static"
	default:
		return "Unknown"
	}
}

// CenterStopComponent 居中停止跑马灯
//
// FullText/TargetText/Duration/Direction 是输入，
// 其中 FullText、TargetText、Direction 任一变化都会让整个序列从 Pending 重新开始。
type CenterStopComponent struct {
	FullText   string
	TargetText string
	Duration   float64 // 滑动时长（秒）
	Direction  config.Direction

	Phase CenterStopPhase

	// 拆分结果
	Prefix      string
	Suffix      string
	TargetFound bool

	// 测量结果
	ContainerWidth float64
	ContentWidth   float64
	TargetLeft     float64
	TargetWidth    float64

	// InitialOffset 初始水平偏移，FinalOffset 使目标词中心对齐容器中心的偏移
	InitialOffset float64
	FinalOffset   float64

	// TranslateX 当前水平偏移
	TranslateX float64
	// TransitionEnabled 是否开启了 transform 过渡
	TransitionEnabled bool
	// FadeIn 滑动完成后置为 true
	FadeIn bool
	// FadeProgress 目标词填充进度 [0, 1]（已应用 ease-in）
	FadeProgress float64

	// 计时
	DelayRemaining float64
	SlideElapsed   float64
	FadeElapsed    float64

	appliedFull   string
	appliedTarget string
	appliedDir    config.Direction
	started       bool
}

// InputsChanged 输入是否与上次启动序列时不同
func (c *CenterStopComponent) InputsChanged() bool {
	return !c.started ||
		c.FullText != c.appliedFull ||
		c.TargetText != c.appliedTarget ||
		c.Direction != c.appliedDir
}

// MarkApplied 记录启动序列时使用的输入
func (c *CenterStopComponent) MarkApplied() {
	c.appliedFull = c.FullText
	c.appliedTarget = c.TargetText
	c.appliedDir = c.Direction
	c.started = true
}

// Reset 回到 Pending，清除所有派生状态
func (c *CenterStopComponent) Reset() {
	c.Phase = CenterStopPending
	c.Prefix, c.Suffix = "", ""
	c.TargetFound = false
	c.ContainerWidth, c.ContentWidth = 0, 0
	c.TargetLeft, c.TargetWidth = 0, 0
	c.InitialOffset, c.FinalOffset = 0, 0
	c.TranslateX = 0
	c.TransitionEnabled = false
	c.FadeIn = false
	c.FadeProgress = 0
	c.DelayRemaining = 0
	c.SlideElapsed = 0
	c.FadeElapsed = 0
}
