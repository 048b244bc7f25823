// verify_theme - 昼夜主题调色验证工具
//
// 按半小时步长采样 24 小时的主题配色，在终端用 ANSI 真彩色
// 打印色块，方便调整 data/themes.yaml 后快速目检过渡是否平滑。
//
// 运行：go run ./cmd/verify_theme
package main

import (
	"fmt"
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/qiuyin/skyfolio/pkg/config"
)

func main() {
	th, err := config.LoadThemeConfig("data/themes.yaml")
	if err != nil {
		log.Fatalf("主题加载失败: %v", err)
	}

	fmt.Println("时刻    天空顶部   地平线     雾带       强调色    星光")
	for h := 0.0; h < 24; h += 0.5 {
		s := th.At(h)
		fmt.Printf("%05.2f  %s %s %s %s  %.2f\n",
			h, swatch(s.SkyTop), swatch(s.Horizon), swatch(s.Fog), swatch(s.Accent), s.StarIntensity)
	}
}

// swatch 返回带 ANSI 真彩色背景的色块 + 十六进制值
func swatch(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s", r, g, b, c.Clamped().Hex())
}
