// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和
// 移动端共用。桌面端通过 main.go 调用 NewApp()，移动端通过
// mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/qiuyin/skyfolio/pkg/config"
	"github.com/qiuyin/skyfolio/pkg/embedded"
	"github.com/qiuyin/skyfolio/pkg/game"
	"github.com/qiuyin/skyfolio/pkg/scenes"
	"github.com/qiuyin/skyfolio/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// Hour 固定主题时刻（0 ~ 23.99），负值表示跟随设置/系统时钟
	// 命令行 --hour 参数用，不写入持久化设置
	Hour float64

	// Windowed 强制窗口模式启动（忽略设置中的全屏标志）
	Windowed bool
}

// ViewportAware 是一个可选的场景接口
// 实现它的场景会在每次 Layout 时收到逻辑视口尺寸。
type ViewportAware interface {
	SetViewport(w, h float64)
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	// 逻辑视口（跟随窗口尺寸，时间轴阈值按它派生）
	viewportW int
	viewportH int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载嵌入配置
	flightData, err := embedded.ReadFile("data/flight.yaml")
	if err != nil {
		return nil, fmt.Errorf("飞行配置读取失败: %w", err)
	}
	flightCfg, err := config.ParseFlightConfig(flightData)
	if err != nil {
		return nil, fmt.Errorf("飞行配置解析失败: %w", err)
	}

	projectsData, err := embedded.ReadFile("data/projects.yaml")
	if err != nil {
		return nil, fmt.Errorf("作品配置读取失败: %w", err)
	}
	projects, err := config.ParseProjectsConfig(projectsData)
	if err != nil {
		return nil, fmt.Errorf("作品配置解析失败: %w", err)
	}

	themeData, err := embedded.ReadFile("data/themes.yaml")
	if err != nil {
		return nil, fmt.Errorf("主题配置读取失败: %w", err)
	}
	dayTheme, err := config.ParseThemeConfig(themeData)
	if err != nil {
		return nil, fmt.Errorf("主题配置解析失败: %w", err)
	}
	log.Printf("[App] Loaded %d projects", len(projects.Projects))

	// 初始化设置持久化（gdata 打开失败时降级为内存设置）
	// Android 上 gdata 不会预创建存储目录，需要先确保目录可写
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "skyfolio"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	// 命令行固定时刻覆盖（仅本次运行，不持久化）
	if cfg.Hour >= 0 {
		settingsManager.GetSettings().FixedHour = cfg.Hour
		log.Printf("[App] Theme hour fixed to %.2f via command line", cfg.Hour)
	}
	if cfg.Windowed {
		settingsManager.GetSettings().Fullscreen = false
	}

	// 构建字体
	fonts, err := scenes.NewFonts()
	if err != nil {
		return nil, fmt.Errorf("字体初始化失败: %w", err)
	}

	// 创建场景管理器，从加载场景启动
	sceneManager := game.NewSceneManager()
	loadingScene := scenes.NewLoadingScene(sceneManager, settingsManager, flightCfg, projects, dayTheme, fonts)
	sceneManager.SwitchTo(loadingScene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		viewportW:       config.GameWindowWidth,
		viewportH:       config.GameWindowHeight,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端无物理键盘，跳过）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(!isFullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 与固定逻辑尺寸的游戏不同，本应用的逻辑尺寸跟随窗口：
// 滚动时间轴的所有阈值按视口高度百分比设计，视口变化会
// 通过 ViewportAware 转发给当前场景重算。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.viewportW = outsideWidth
		a.viewportH = outsideHeight
	}
	if scene, ok := a.sceneManager.CurrentScene().(ViewportAware); ok {
		scene.SetViewport(float64(a.viewportW), float64(a.viewportH))
	}
	return a.viewportW, a.viewportH
}

// PersistOnExit 程序关闭前持久化当前场景状态与设置
func (a *App) PersistOnExit() {
	if scene, ok := a.sceneManager.CurrentScene().(game.Persistable); ok {
		if !scene.PersistOnExit() {
			log.Printf("[App] Warning: scene failed to persist state on exit")
		}
		return
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings on exit: %v", err)
	}
}

// SettingsManager 返回设置管理器（移动端绑定与测试用）
func (a *App) SettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
