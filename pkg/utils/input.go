// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DragState 拖动状态
type DragState int

const (
	// DragStateNone 没有手指按下
	DragStateNone DragState = iota
	// DragStateStarted 本帧刚按下
	DragStateStarted
	// DragStateDragging 按住移动中
	DragStateDragging
	// DragStateEnded 本帧刚抬起
	DragStateEnded
)

// TouchDrag 单指纵向拖动跟踪
//
// 只跟踪第一根按下的手指，其余手指忽略。
// 手指向上移动产生正的 deltaY（与浏览器滚动方向一致）。
type TouchDrag struct {
	state   DragState
	touchID ebiten.TouchID
	lastY   float64

	// 复用的触摸 ID 缓冲
	justPressed []ebiten.TouchID
}

// State 当前拖动状态
func (d *TouchDrag) State() DragState {
	return d.state
}

// IsDragging 是否有手指按住
func (d *TouchDrag) IsDragging() bool {
	return d.state == DragStateStarted || d.state == DragStateDragging
}

// Update 读取本帧触摸输入，返回本帧的纵向滚动量
// 每帧调用一次
func (d *TouchDrag) Update() float64 {
	if !d.IsDragging() {
		d.justPressed = inpututil.AppendJustPressedTouchIDs(d.justPressed[:0])
		if len(d.justPressed) == 0 {
			d.state = DragStateNone
			return 0
		}
		d.touchID = d.justPressed[0]
		_, y := ebiten.TouchPosition(d.touchID)
		d.Begin(float64(y))
		return 0
	}

	if inpututil.IsTouchJustReleased(d.touchID) {
		d.End()
		return 0
	}

	_, y := ebiten.TouchPosition(d.touchID)
	return d.Move(float64(y))
}

// Begin 手指按下
func (d *TouchDrag) Begin(y float64) {
	d.state = DragStateStarted
	d.lastY = y
}

// Move 手指移动到 y，返回相对上一位置的 deltaY
// 未按下时返回 0
func (d *TouchDrag) Move(y float64) float64 {
	if !d.IsDragging() {
		return 0
	}
	d.state = DragStateDragging
	delta := d.lastY - y
	d.lastY = y
	return delta
}

// End 手指抬起
func (d *TouchDrag) End() {
	if d.state == DragStateNone {
		return
	}
	d.state = DragStateEnded
}

// Reset 丢弃当前拖动
func (d *TouchDrag) Reset() {
	d.state = DragStateNone
	d.lastY = 0
}
