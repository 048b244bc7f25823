package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/qiuyin/skyfolio/pkg/utils"
)

// drawContact 绘制落地层（联系方式）
//
// 落地层始终画在飞行层下方，飞行层上移淡出后逐渐露出。
// 文案自身再按退场进度做一点浮入，让"着陆"有层次。
func (s *FlightScene) drawContact(dst *ebiten.Image, w, h float64) {
	dst.Fill(color.RGBA{R: 6, G: 7, B: 16, A: 255})

	// 退场没开始时不用画文案（完全被飞行层盖住）
	reveal := utils.EaseInOutCubic(s.frame.ExitProgress)
	if reveal <= 0.004 {
		return
	}

	// 静态星点背景：复用星场的前一小段
	px := s.whitePixel()
	for i, star := range s.assets.Stars {
		if i%3 != 0 {
			continue
		}
		twinkle := 0.7 + 0.3*math.Sin(s.elapsed*1.2+star.Twinkle)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(star.Size, star.Size)
		op.GeoM.Translate(star.X*w, star.Y*h)
		op.ColorScale.ScaleAlpha(float32(0.35 * twinkle * reveal))
		dst.DrawImage(px, op)
	}

	accent := stratosphere.Accent
	lift := (1 - reveal) * 36

	headingFace := s.fonts.BoldFace(40)
	headingW := measureWidth(s.projects.Contact.Heading, headingFace)
	op := &text.DrawOptions{}
	op.GeoM.Translate((w-headingW)/2, h*0.42+lift)
	op.ColorScale.ScaleWithColor(accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(reveal))
	text.Draw(dst, s.projects.Contact.Heading, headingFace, op)

	emailFace := s.fonts.Face(20)
	emailW := measureWidth(s.projects.Contact.Email, emailFace)
	op = &text.DrawOptions{}
	op.GeoM.Translate((w-emailW)/2, h*0.42+58+lift)
	op.ColorScale.ScaleWithColor(accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(reveal * 0.8))
	text.Draw(dst, s.projects.Contact.Email, emailFace, op)

	creditFace := s.fonts.Face(12)
	creditW := measureWidth(s.projects.Contact.Credit, creditFace)
	op = &text.DrawOptions{}
	op.GeoM.Translate((w-creditW)/2, h-36)
	op.ColorScale.ScaleWithColor(accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(reveal * 0.45))
	text.Draw(dst, s.projects.Contact.Credit, creditFace, op)
}
