package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qiuyin/skyfolio/pkg/app"
	"github.com/qiuyin/skyfolio/pkg/config"
	"github.com/qiuyin/skyfolio/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	hour := flag.Float64("hour", -1, "固定昼夜主题时刻（0~23.99），负值跟随系统时钟")
	windowed := flag.Bool("windowed", false, "强制窗口模式启动")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	skyfolio, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Hour:     *hour,
		Windowed: *windowed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if skyfolio.SettingsManager().GetSettings().Fullscreen && !*windowed {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(skyfolio); err != nil {
		log.Fatal(err)
	}

	// 正常退出：持久化观看设置
	skyfolio.PersistOnExit()
}
