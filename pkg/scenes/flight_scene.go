package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qiuyin/skyfolio/pkg/config"
	"github.com/qiuyin/skyfolio/pkg/game"
	"github.com/qiuyin/skyfolio/pkg/theme"
	"github.com/qiuyin/skyfolio/pkg/timeline"
	"github.com/qiuyin/skyfolio/pkg/utils"
)

// FlightScene 主场景：滚动驱动的飞行
//
// 每帧流程：
//  1. 采样滚动输入 → ScrollState 累积并平滑出呈现偏移
//  2. 呈现偏移喂给 Timeline → 得到本帧全部动画参数（Frame）
//  3. 采样昼夜主题（系统时钟或固定时刻）
//  4. Draw 按 Frame 绘制各层：天空 → 星空/极光 → 云层 → 文案覆盖层，
//     整个飞行层按退场参数平移淡出，落地层在其下方
type FlightScene struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	flightCfg    *config.FlightConfig
	projects     *config.ProjectsConfig
	dayTheme     *theme.Theme
	fonts        *Fonts
	assets       *SkyAssets

	tl     *timeline.Timeline
	scroll *game.ScrollState
	input  *utils.ScrollInput

	// 本帧状态（Update 写入，Draw 只读）
	frame   timeline.Frame
	sample  theme.Sample
	elapsed float64

	// 视口（App.Layout 每帧转发；变化时重算时间轴阈值）
	viewportW float64
	viewportH float64

	// 渲染缓存
	flightLayer *ebiten.Image // 飞行层离屏缓冲（视口尺寸，resize 时重建）
	gradient    *ebiten.Image // 1xN 天空渐变条，每帧重写像素后拉伸
	pixel       *ebiten.Image // 1x1 白色像素（画矩形用）
}

// gradientSteps 天空渐变条的采样级数
// 拉伸后线性滤波插值，级数不需要太高
const gradientSteps = 96

// NewFlightScene 创建飞行场景
// assets 必须是已完成生成的天空素材（来自 LoadingScene）。
func NewFlightScene(
	sm *game.SceneManager,
	settings *game.SettingsManager,
	flightCfg *config.FlightConfig,
	projects *config.ProjectsConfig,
	dayTheme *theme.Theme,
	fonts *Fonts,
	assets *SkyAssets,
) (*FlightScene, error) {
	s := &FlightScene{
		sceneManager: sm,
		settings:     settings,
		flightCfg:    flightCfg,
		projects:     projects,
		dayTheme:     dayTheme,
		fonts:        fonts,
		assets:       assets,
		tl:           timeline.New(flightCfg.Timeline),
		scroll:       game.NewScrollState(flightCfg.SmoothingRate),
		input:        utils.NewScrollInput(),
	}
	s.scroll.SetReducedMotion(settings.GetSettings().ReducedMotion)
	return s, nil
}

// SetViewport 更新逻辑视口尺寸
//
// 阈值全部按视口高度百分比设计：尺寸变化时必须同步重算
// 时间轴像素阈值与可滚动范围，否则就是"过期阈值"bug。
func (s *FlightScene) SetViewport(w, h float64) {
	if w == s.viewportW && h == s.viewportH {
		return
	}
	s.viewportW = w
	s.viewportH = h
	s.tl.Resize(w, h)
	s.scroll.SetMaxOffset(s.tl.MaxOffset())
	s.flightLayer = nil // 尺寸变化后重建离屏缓冲
	log.Printf("[FlightScene] Viewport resized to %.0fx%.0f (maxOffset=%.0f)", w, h, s.tl.MaxOffset())
}

// Update 推进一帧
func (s *FlightScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	st := s.settings.GetSettings()
	s.scroll.SetReducedMotion(st.ReducedMotion)

	// 1. 滚动输入
	cmd := s.input.Poll(utils.ScrollInputConfig{
		WheelPixelsPerNotch: s.flightCfg.WheelPixelsPerNotch,
		KeyScrollPixels:     s.flightCfg.KeyScrollPixels,
		PagePixels:          s.flightCfg.PageScrollFraction * s.viewportH,
		DragFactor:          s.flightCfg.DragFactor,
		Sensitivity:         st.ScrollSensitivity,
		Invert:              st.InvertScroll,
	})
	switch {
	case cmd.JumpToTop:
		s.scroll.JumpTo(0)
	case cmd.JumpToEnd:
		s.scroll.JumpTo(s.tl.MaxOffset())
	default:
		s.scroll.AddDelta(cmd.DeltaPx)
	}

	// 2. 平滑 + 时间轴
	offset := s.scroll.Step(deltaTime)
	prevPhase := s.frame.Phase
	s.frame = s.tl.Update(offset)
	if s.frame.Phase != prevPhase {
		log.Printf("[FlightScene] Phase: %s → %s (offset=%.0f)", prevPhase, s.frame.Phase, offset)
	}

	// 3. 昼夜主题采样
	s.sample = s.dayTheme.At(currentThemeHour(st, time.Now()))
}

// Draw 绘制整个画面
// 落地层始终在底部；飞行层按退场参数平移淡出，完全隐藏时整层跳过。
func (s *FlightScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	// 落地层（联系方式）在飞行层下方
	s.drawContact(screen, w, h)

	if s.frame.LayerHidden {
		return
	}

	// 飞行层绘制到离屏缓冲，整层平移 + 淡出后合成
	if s.flightLayer == nil || s.flightLayer.Bounds().Dx() != bounds.Dx() || s.flightLayer.Bounds().Dy() != bounds.Dy() {
		s.flightLayer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	layer := s.flightLayer
	layer.Clear()

	s.drawSky(layer, w, h)
	s.drawStars(layer, w, h)
	s.drawAurora(layer, w, h)
	s.drawClouds(layer, w, h)
	s.drawOverlay(layer, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -s.frame.LayerTranslateY) // 向上飞离，露出落地层
	op.ColorScale.ScaleAlpha(float32(s.frame.LayerOpacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(layer, op)
}

// PersistOnExit 退出时保存观看设置
func (s *FlightScene) PersistOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Printf("[FlightScene] Failed to persist settings: %v", err)
		return false
	}
	return true
}

// Frame 返回最近一帧的时间轴输出（调试覆盖层与测试用）
func (s *FlightScene) Frame() timeline.Frame {
	return s.frame
}

// currentThemeHour 决定主题采样时刻
// 设置了固定时刻（>= 0）则使用固定值，否则取系统时钟的小数小时。
func currentThemeHour(st *game.ViewerSettings, now time.Time) float64 {
	if st.FixedHour >= 0 {
		return st.FixedHour
	}
	return float64(now.Hour()) + float64(now.Minute())/60
}

// whitePixel 返回共享的 1x1 白色像素
func (s *FlightScene) whitePixel() *ebiten.Image {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}
	return s.pixel
}
