package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qiuyin/skyfolio/pkg/utils"
)

// starVisibility 星空整体强度
// 时段强度（白天 0，深夜 1）与爬升高度取并：白天起飞，
// 爬出大气层后星星照样出来。
func starVisibility(themeIntensity, effectiveProgress float64) float64 {
	climb := utils.EaseInOutCubic(utils.Clamp01(effectiveProgress * 1.1))
	return utils.Clamp01(utils.Lerp(themeIntensity, 1, climb))
}

// drawStars 绘制星场
// 每颗星按自身相位正弦闪烁；亮度 = 基础亮度 × 整体强度。
func (s *FlightScene) drawStars(dst *ebiten.Image, w, h float64) {
	visibility := starVisibility(s.sample.StarIntensity, s.frame.EffectiveProgress)
	if visibility <= 0.01 {
		return
	}

	px := s.whitePixel()
	for _, star := range s.assets.Stars {
		twinkle := 0.75 + 0.25*math.Sin(s.elapsed*1.8+star.Twinkle)
		alpha := star.Brightness * twinkle * visibility
		if alpha <= 0.01 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(star.Size, star.Size)
		op.GeoM.Translate(star.X*w, star.Y*h)
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(px, op)
	}
}

// drawAurora 绘制极光帘幕
// 只在星空可见度足够时出现，用主题强调色与青绿双色染色。
func (s *FlightScene) drawAurora(dst *ebiten.Image, w, h float64) {
	if s.assets.Aurora == nil {
		return
	}
	visibility := starVisibility(s.sample.StarIntensity, s.frame.EffectiveProgress)
	if visibility < 0.45 {
		return
	}
	intensity := utils.Clamp01((visibility - 0.45) / 0.55)

	stripW := float64(s.assets.Aurora.Bounds().Dx())
	stripH := float64(s.assets.Aurora.Bounds().Dy())

	// 两条错相的帘幕，一绿一紫，缓慢平移
	passes := []struct {
		r, g, b float32
		shift   float64
		alpha   float64
	}{
		{0.25, 0.95, 0.6, 0, 0.5},
		{0.55, 0.35, 0.9, 0.33, 0.35},
	}
	for _, pass := range passes {
		x := math.Mod(s.elapsed*9+pass.shift*w, w+stripW) - stripW
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/stripW*0.8, h*0.4/stripH)
		op.GeoM.Translate(x*0.3, h*0.02)
		op.ColorScale.Scale(pass.r, pass.g, pass.b, 1)
		op.ColorScale.ScaleAlpha(float32(pass.alpha * intensity))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(s.assets.Aurora, op)
	}
}
