package scenes

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiuyin/skyfolio/pkg/config"
	"github.com/qiuyin/skyfolio/pkg/utils"
)

// drawOverlay 绘制文案覆盖层
// 所有文案块的可见性由各自的进度窗口驱动（原始归一化进度，
// 与入场视觉用的缓动进度无关，窗口断点在配置里按原始进度标定）。
func (s *FlightScene) drawOverlay(dst *ebiten.Image, w, h float64) {
	p := s.frame.Progress

	s.drawIntro(dst, w, h, p)
	s.drawProjectCards(dst, w, h, p)
	s.drawScrollHint(dst, w, h, p)
	s.drawAltimeter(dst, w, h)
}

// drawIntro 开场标语：名字 + 一句话
func (s *FlightScene) drawIntro(dst *ebiten.Image, w, h float64, p float64) {
	alpha := s.projects.Intro.Window.Opacity(p)
	if alpha <= 0.004 {
		return
	}

	accent := s.skySample().Accent
	nameFace := s.fonts.BoldFace(58)
	tagFace := s.fonts.Face(20)

	nameW := measureWidth(s.projects.Intro.Name, nameFace)
	lift := (1 - alpha) * config.OverlayCardLift

	op := &text.DrawOptions{}
	op.GeoM.Translate((w-nameW)/2, h*0.34+lift)
	op.ColorScale.ScaleWithColor(accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s.projects.Intro.Name, nameFace, op)

	tagW := measureWidth(s.projects.Intro.Tagline, tagFace)
	op = &text.DrawOptions{}
	op.GeoM.Translate((w-tagW)/2, h*0.34+74+lift)
	op.ColorScale.ScaleWithColor(accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(alpha * 0.75))
	text.Draw(dst, s.projects.Intro.Tagline, tagFace, op)
}

// drawProjectCards 绘制进入可见窗口的作品卡片
func (s *FlightScene) drawProjectCards(dst *ebiten.Image, w, h float64, p float64) {
	titleFace := s.fonts.BoldFace(config.OverlayTitleSize)
	blurbFace := s.fonts.Face(config.OverlayBlurbSize)
	metaFace := s.fonts.Face(config.OverlayMetaSize)

	for i, proj := range s.projects.Projects {
		alpha := proj.Window.Opacity(p)
		if alpha <= 0.004 {
			continue
		}

		accent := s.projectAccent(i)
		x := config.OverlayCardMarginX
		y := h*0.32 + (1-utils.EaseOutCubic(alpha))*config.OverlayCardLift

		// 年份 / 角色 小字
		meta := proj.Year
		if proj.Role != "" {
			meta += "  ·  " + strings.ToUpper(proj.Role)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(accent.Clamped())
		op.ColorScale.ScaleAlpha(float32(alpha * 0.8))
		text.Draw(dst, meta, metaFace, op)

		// 标题
		op = &text.DrawOptions{}
		op.GeoM.Translate(x, y+24)
		op.ColorScale.ScaleWithColor(accent.Clamped())
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(dst, proj.Title, titleFace, op)

		// 介绍文案（自动换行）
		lineY := y + 24 + config.OverlayTitleSize + 18
		for _, line := range utils.WrapText(proj.Blurb, blurbFace, config.OverlayCardMaxWidth) {
			op = &text.DrawOptions{}
			op.GeoM.Translate(x, lineY)
			op.ColorScale.ScaleWithColor(accent.Clamped())
			op.ColorScale.ScaleAlpha(float32(alpha * 0.85))
			text.Draw(dst, line, blurbFace, op)
			lineY += config.OverlayBlurbSize * 1.55
		}
	}
}

// drawScrollHint 底部滚动提示，起飞后很快淡出
func (s *FlightScene) drawScrollHint(dst *ebiten.Image, w, h float64, p float64) {
	alpha := 1 - utils.Clamp01(p/config.ScrollHintFadeOutProgress)
	if alpha <= 0.004 {
		return
	}

	face := s.fonts.Face(13)
	label := "scroll"
	labelW := measureWidth(label, face)
	bob := math.Sin(s.elapsed*2.4) * 4

	op := &text.DrawOptions{}
	op.GeoM.Translate((w-labelW)/2, h-54+bob)
	op.ColorScale.ScaleWithColor(s.skySample().Accent.Clamped())
	op.ColorScale.ScaleAlpha(float32(alpha * 0.8))
	text.Draw(dst, label, face, op)
}

// drawAltimeter 右缘高度计：轨道 + 跟随有效进度的游标
func (s *FlightScene) drawAltimeter(dst *ebiten.Image, w, h float64) {
	px := s.whitePixel()
	x := w - config.AltimeterMarginRight
	top := (h - config.AltimeterHeight) / 2

	trackOp := &ebiten.DrawImageOptions{}
	trackOp.GeoM.Scale(2, config.AltimeterHeight)
	trackOp.GeoM.Translate(x, top)
	trackOp.ColorScale.ScaleAlpha(0.18)
	dst.DrawImage(px, trackOp)

	// 游标：progress=0 在底部（地面），1 在顶部
	knobY := top + (1-s.frame.EffectiveProgress)*config.AltimeterHeight
	knobOp := &ebiten.DrawImageOptions{}
	knobOp.GeoM.Scale(10, 3)
	knobOp.GeoM.Translate(x-4, knobY-1.5)
	knobOp.ColorScale.ScaleAlpha(0.8)
	dst.DrawImage(px, knobOp)
}

// projectAccent 返回第 i 个作品的强调色
// 配置未给或解析失败时回退到当前天空配色的强调色。
func (s *FlightScene) projectAccent(i int) colorful.Color {
	proj := s.projects.Projects[i]
	if proj.Accent != "" {
		if c, err := colorful.Hex(proj.Accent); err == nil {
			return c
		}
	}
	return s.skySample().Accent
}
