package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/qiuyin/skyfolio/pkg/config"
	"github.com/qiuyin/skyfolio/pkg/game"
	"github.com/qiuyin/skyfolio/pkg/theme"
	"github.com/qiuyin/skyfolio/pkg/utils"
)

// LoadingScene 启动时的加载画面
//
// 程序化天空素材（云纹理、极光、星场）按帧生成，
// 每帧只推进一步，保证窗口始终响应；全部生成完毕后
// 切换到 FlightScene。
type LoadingScene struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	flightCfg    *config.FlightConfig
	projects     *config.ProjectsConfig
	dayTheme     *theme.Theme
	fonts        *Fonts

	assets      *SkyAssets
	step        int     // 已完成的生成步数
	elapsedTime float64 // 场景运行时长（进度条缓动用）
	shownFrames int     // 已绘制帧数：首帧先渲染再开始生成

	barFill *ebiten.Image // 进度条填充（1x1 白色像素，拉伸绘制）

	viewportW float64
	viewportH float64
}

// NewLoadingScene 创建加载场景
func NewLoadingScene(
	sm *game.SceneManager,
	settings *game.SettingsManager,
	flightCfg *config.FlightConfig,
	projects *config.ProjectsConfig,
	dayTheme *theme.Theme,
	fonts *Fonts,
) *LoadingScene {
	return &LoadingScene{
		sceneManager: sm,
		settings:     settings,
		flightCfg:    flightCfg,
		projects:     projects,
		dayTheme:     dayTheme,
		fonts:        fonts,
		assets:       &SkyAssets{},
	}
}

// SetViewport 记录逻辑视口尺寸（App.Layout 每帧转发）
func (s *LoadingScene) SetViewport(w, h float64) {
	s.viewportW = w
	s.viewportH = h
}

// Progress 返回素材生成进度（0.0 ~ 1.0）
func (s *LoadingScene) Progress() float64 {
	return float64(s.step) / float64(assetStepCount())
}

// Update 每帧推进一步素材生成
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	// 首帧先让加载画面显示出来，再开始生成
	if s.shownFrames == 0 {
		return
	}

	if s.step < assetStepCount() {
		s.assets.generateAssetStep(s.step)
		s.step++
		return
	}

	// 生成完毕，切换到飞行场景
	flight, err := NewFlightScene(s.sceneManager, s.settings, s.flightCfg, s.projects, s.dayTheme, s.fonts, s.assets)
	if err != nil {
		// 字体构建失败无法继续，保持加载画面并记录错误
		log.Printf("[LoadingScene] Failed to create flight scene: %v", err)
		return
	}
	flight.SetViewport(s.viewportW, s.viewportH)
	s.sceneManager.SwitchTo(flight)
}

// Draw 绘制加载画面：深色底 + 进度条 + 文字提示
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	s.shownFrames++

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	screen.Fill(color.RGBA{R: 7, G: 8, B: 18, A: 255})

	if s.barFill == nil {
		s.barFill = ebiten.NewImage(1, 1)
		s.barFill.Fill(color.White)
	}

	// 进度条：屏幕中央的细线
	barWidth := w * 0.28
	barX := (w - barWidth) / 2
	barY := h * 0.56
	progress := utils.EaseOutCubic(s.Progress())

	// 轨道
	trackOp := &ebiten.DrawImageOptions{}
	trackOp.GeoM.Scale(barWidth, 2)
	trackOp.GeoM.Translate(barX, barY)
	trackOp.ColorScale.ScaleAlpha(0.18)
	screen.DrawImage(s.barFill, trackOp)

	// 填充
	fillOp := &ebiten.DrawImageOptions{}
	fillOp.GeoM.Scale(barWidth*progress, 2)
	fillOp.GeoM.Translate(barX, barY)
	fillOp.ColorScale.ScaleAlpha(0.9)
	screen.DrawImage(s.barFill, fillOp)

	// 文字提示
	face := s.fonts.Face(14)
	label := "preparing the sky"
	labelW := measureWidth(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate((w-labelW)/2, barY+18)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 150, G: 160, B: 200, A: 255})
	text.Draw(screen, label, face, op)
}

// measureWidth 测量文本宽度
func measureWidth(s string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}
