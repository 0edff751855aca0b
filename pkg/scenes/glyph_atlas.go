package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/utils"
)

// outlineOffsets 描边时的 8 个方向
var outlineOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// glyph 单个字符的预渲染图像
type glyph struct {
	img     *ebiten.Image
	advance float64
}

// GlyphAtlas 按字符缓存描边/填充字形
//
// 跑马灯整行宽度可达数千像素，整串渲染成一张纹理会超出尺寸上限，
// 所以逐字符缓存，绘制时按 advance 依次排开。
// 测量同样按字符 advance 求和，保证测量结果与绘制位置一致。
type GlyphAtlas struct {
	face       *text.GoTextFace
	pad        float64
	lineHeight float64
	ascent     float64

	advances map[rune]float64
	outlined map[rune]*glyph
	filled   map[rune]*glyph
}

// NewGlyphAtlas 创建字形缓存（图像在首次绘制时才生成）
func NewGlyphAtlas(face *text.GoTextFace) *GlyphAtlas {
	m := face.Metrics()
	return &GlyphAtlas{
		face:       face,
		pad:        math.Ceil(config.OutlineWidth) + 1,
		lineHeight: m.HAscent + m.HDescent,
		ascent:     m.HAscent,
		advances:   make(map[rune]float64),
		outlined:   make(map[rune]*glyph),
		filled:     make(map[rune]*glyph),
	}
}

// LineHeight 字形行高
func (a *GlyphAtlas) LineHeight() float64 {
	return a.lineHeight
}

// Advance 单个字符的前进宽度
func (a *GlyphAtlas) Advance(r rune) float64 {
	if adv, ok := a.advances[r]; ok {
		return adv
	}
	adv := text.Advance(string(r), a.face)
	a.advances[r] = adv
	return adv
}

// MeasureWidth 实现 utils.TextMeasurer
func (a *GlyphAtlas) MeasureWidth(s string) float64 {
	w := 0.0
	for _, r := range s {
		w += a.Advance(r)
	}
	return w
}

func (a *GlyphAtlas) glyphFor(r rune, fill bool) *glyph {
	cache := a.outlined
	if fill {
		cache = a.filled
	}
	if g, ok := cache[r]; ok {
		return g
	}

	adv := a.Advance(r)
	w := int(math.Ceil(adv + 2*a.pad))
	h := int(math.Ceil(a.lineHeight + 2*a.pad))
	if w < 1 {
		w = 1
	}
	img := ebiten.NewImage(w, h)
	s := string(r)

	if fill {
		op := &text.DrawOptions{}
		op.GeoM.Translate(a.pad, a.pad)
		op.ColorScale.ScaleWithColor(config.AccentColor)
		text.Draw(img, s, a.face, op)
	} else {
		// 先向 8 个方向偏移绘制，再用字形本身把内部挖空，只留轮廓
		for _, off := range outlineOffsets {
			op := &text.DrawOptions{}
			op.GeoM.Translate(a.pad+off[0]*config.OutlineWidth, a.pad+off[1]*config.OutlineWidth)
			op.ColorScale.ScaleWithColor(config.AccentColor)
			text.Draw(img, s, a.face, op)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(a.pad, a.pad)
		op.Blend = ebiten.BlendDestinationOut
		text.Draw(img, s, a.face, op)
	}

	g := &glyph{img: img, advance: adv}
	cache[r] = g
	return g
}

// DrawString 从 (x, y) 开始逐字符绘制，y 为行顶部
//
// 只绘制与 [0, clipWidth) 相交的字符，返回绘制结束处的 x。
func (a *GlyphAtlas) DrawString(dst *ebiten.Image, s string, x, y float64, fill bool, alpha float32, clipWidth float64) float64 {
	if alpha <= 0 {
		return x + a.MeasureWidth(s)
	}

	for _, r := range s {
		adv := a.Advance(r)
		if x+adv >= -a.pad && x-a.pad < clipWidth && r != ' ' && r != '\u00a0' {
			g := a.glyphFor(r, fill)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x-a.pad, y-a.pad)
			op.ColorScale.ScaleAlpha(alpha)
			dst.DrawImage(g.img, op)
		}
		x += adv
	}
	return x
}

// Dispose 释放所有缓存的字形图像
func (a *GlyphAtlas) Dispose() {
	for _, cache := range []map[rune]*glyph{a.outlined, a.filled} {
		for r, g := range cache {
			g.img.Deallocate()
			delete(cache, r)
		}
	}
}

// withAlpha 返回乘上不透明度后的颜色
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * utils.Clamp01(alpha)))}
}
