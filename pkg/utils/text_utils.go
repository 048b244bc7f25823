package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 优先在空格处断行；单词本身超宽时强制断开。
// font 为 nil 或 maxWidth 非正时原样返回。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if measureTextWidth(candidate, font) <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}

		// 单词本身超宽：按字符强制断行
		for measureTextWidth(word, font) > maxWidth && len(word) > 1 {
			cut := len(word) - 1
			for cut > 1 && measureTextWidth(word[:cut], font) > maxWidth {
				cut--
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		currentLine = word
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// measureTextWidth 测量文本渲染宽度（像素）
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
