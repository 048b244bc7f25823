package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 场景共享的字体集合
// 字体源在应用启动时构建一次，各场景按字号派生 Face。
type Fonts struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// NewFonts 从内置的 Go 字体构建字体集合
// 项目不携带字体资产，标题与正文都使用 x/image 内嵌的 Go 字族。
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{Regular: regular, Bold: bold}, nil
}

// Face 派生指定字号的常规体
func (f *Fonts) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Regular, Size: size}
}

// BoldFace 派生指定字号的粗体
func (f *Fonts) BoldFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Bold, Size: size}
}
