package utils

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(strings.NewReader(string(goregular.TTF)))
	if err != nil {
		t.Fatalf("字体源创建失败: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	face := loadTestFace(t, 19)

	t.Run("空文本原样返回", func(t *testing.T) {
		lines := WrapText("", face, 200)
		if len(lines) != 1 || lines[0] != "" {
			t.Errorf("空文本应返回单个空行, got %v", lines)
		}
	})

	t.Run("nil字体原样返回", func(t *testing.T) {
		lines := WrapText("hello world", nil, 200)
		if len(lines) != 1 || lines[0] != "hello world" {
			t.Errorf("nil 字体应原样返回, got %v", lines)
		}
	})

	t.Run("短文本不换行", func(t *testing.T) {
		lines := WrapText("hi", face, 400)
		if len(lines) != 1 {
			t.Errorf("短文本不应换行, got %d 行", len(lines))
		}
	})

	t.Run("长文本按宽度换行", func(t *testing.T) {
		long := "A procedurally generated flight over layered clouds with a day night theme"
		maxWidth := 220.0
		lines := WrapText(long, face, maxWidth)
		if len(lines) < 2 {
			t.Fatalf("长文本应换多行, got %d 行", len(lines))
		}
		for i, line := range lines {
			if w := measureTextWidth(line, face); w > maxWidth {
				t.Errorf("第 %d 行宽度 %.1f 超过上限 %.1f: %q", i, w, maxWidth, line)
			}
		}
		// 换行不应丢字
		if strings.Join(lines, " ") != long {
			t.Errorf("换行后文本内容发生变化: %q", strings.Join(lines, " "))
		}
	})

	t.Run("超宽单词强制断开", func(t *testing.T) {
		word := "Supercalifragilisticexpialidocious"
		maxWidth := 90.0
		lines := WrapText(word, face, maxWidth)
		if len(lines) < 2 {
			t.Fatalf("超宽单词应被断开, got %v", lines)
		}
		if strings.Join(lines, "") != word {
			t.Errorf("强制断行不应丢字: %v", lines)
		}
	})
}

// TestMeasureTextWidth 测试宽度测量的边界情况
func TestMeasureTextWidth(t *testing.T) {
	face := loadTestFace(t, 19)
	if w := measureTextWidth("", face); w != 0 {
		t.Errorf("空字符串宽度应为 0, got %v", w)
	}
	if w := measureTextWidth("abc", nil); w != 0 {
		t.Errorf("nil 字体宽度应为 0, got %v", w)
	}
	if measureTextWidth("wide text here", face) <= measureTextWidth("w", face) {
		t.Error("长文本宽度应大于单字符")
	}
}
