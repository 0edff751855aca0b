package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrFontNotReady 字体尚未解析完成
var ErrFontNotReady = errors.New("font source not ready")

// FontManager 字体加载与字号缓存
//
// 字体在后台 goroutine 中解析，完成后关闭 ready 通道。
// 游戏循环通过 IsReady() 非阻塞地轮询，不会卡住第一帧。
// Face() 只能在游戏循环 goroutine 中调用。
type FontManager struct {
	ready chan struct{}

	// 以下两个字段在 close(ready) 之前写入，之后只读
	source *text.GoTextFaceSource
	err    error

	faceCache map[float64]*text.GoTextFace
	started   bool
}

// NewFontManager 创建字体管理器（尚未开始加载）
func NewFontManager() *FontManager {
	return &FontManager{
		ready:     make(chan struct{}),
		faceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadDefaultAsync 在后台解析内置的 Go Bold 字体
func (fm *FontManager) LoadDefaultAsync() {
	fm.LoadAsync("gobold", gobold.TTF)
}

// LoadAsync 在后台解析字体数据，重复调用无效
//
// 参数：
//   - name: 字体名称（日志用）
//   - data: TTF/OTF 数据
func (fm *FontManager) LoadAsync(name string, data []byte) {
	if fm.started {
		return
	}
	fm.started = true

	go func() {
		start := time.Now()
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			fm.err = fmt.Errorf("failed to create font source for %s: %w", name, err)
			log.Printf("[FontManager] %v", fm.err)
		} else {
			fm.source = source
			log.Printf("[FontManager] %s parsed in %v", name, time.Since(start))
		}
		close(fm.ready)
	}()
}

// Ready 返回字体就绪信号通道（解析完成后关闭，无论成功与否）
func (fm *FontManager) Ready() <-chan struct{} {
	return fm.ready
}

// IsReady 非阻塞检查字体是否已解析完成
func (fm *FontManager) IsReady() bool {
	select {
	case <-fm.ready:
		return true
	default:
		return false
	}
}

// Err 返回解析错误，未就绪时返回 nil
func (fm *FontManager) Err() error {
	if !fm.IsReady() {
		return nil
	}
	return fm.err
}

// Face 返回指定字号的字体，同一字号复用缓存
func (fm *FontManager) Face(size float64) (*text.GoTextFace, error) {
	if !fm.IsReady() {
		return nil, ErrFontNotReady
	}
	if fm.err != nil {
		return nil, fm.err
	}

	if face, ok := fm.faceCache[size]; ok {
		return face, nil
	}

	face := &text.GoTextFace{
		Source:    fm.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.faceCache[size] = face
	return face, nil
}
