//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg studio.qiuyin.skyfolio -o build/android/skyfolio.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Skyfolio.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/qiuyin/skyfolio/pkg/app"
	"github.com/qiuyin/skyfolio/pkg/embedded"
)

func init() {
	// 初始化嵌入资源（dataFS 在本目录的 embed.go 中声明）
	embedded.Init(dataFS)

	skyfolio, err := app.NewApp(app.Config{
		Verbose: true, // Enable verbose logging for debugging
		Hour:    -1,   // 跟随系统时钟
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(skyfolio)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
