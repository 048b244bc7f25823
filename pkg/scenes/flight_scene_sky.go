package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiuyin/skyfolio/pkg/theme"
	"github.com/qiuyin/skyfolio/pkg/utils"
)

// stratosphere 爬升终点的高空配色
// 不随时段变化：无论几点起飞，平流层顶都是同一片深蓝黑。
var stratosphere = theme.Sample{
	SkyTop:        colorful.Color{R: 0.008, G: 0.012, B: 0.04},
	Horizon:       colorful.Color{R: 0.04, G: 0.06, B: 0.19},
	Fog:           colorful.Color{R: 0.05, G: 0.07, B: 0.16},
	Accent:        colorful.Color{R: 0.88, G: 0.92, B: 1},
	StarIntensity: 1,
}

// skySample 本帧的天空配色：时段采样向高空配色混合
// 混合因子用 EffectiveProgress（退场期间保持到达画面稳定）。
func (s *FlightScene) skySample() theme.Sample {
	climb := utils.Clamp01(s.frame.EffectiveProgress * 0.9)
	return theme.Blend(s.sample, stratosphere, climb)
}

// drawSky 绘制天空渐变与地平线雾带
//
// 渐变条只有 1 x gradientSteps 像素，每帧按当前配色重写，
// 再用线性滤波拉伸到整个视口。比逐像素绘制整屏便宜得多。
func (s *FlightScene) drawSky(dst *ebiten.Image, w, h float64) {
	if s.gradient == nil {
		s.gradient = ebiten.NewImage(1, gradientSteps)
	}

	sky := s.skySample()
	pix := make([]byte, 4*gradientSteps)
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / float64(gradientSteps-1)
		// 顶部颜色向地平线颜色过渡，底部 1/4 混入雾色
		c := sky.SkyTop.BlendRgb(sky.Horizon, utils.EaseInOutCubic(t))
		if t > 0.75 {
			c = c.BlendRgb(sky.Fog, (t-0.75)/0.25*0.6)
		}
		r, g, b := c.Clamped().RGB255()
		pix[i*4+0] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 0xff
	}
	s.gradient.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h/float64(gradientSteps))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.gradient, op)
}
