package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 在空格处断行；单个单词超过最大宽度时按字符强制断开
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if text.Advance(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if text.Advance(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = ""

		// 单词本身超宽：按字符断开，余下部分作为新行的开头
		for text.Advance(word, font) > maxWidth {
			cut := fitPrefix(word, font, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitPrefix 返回能放进 maxWidth 的最长前缀的字节长度（至少一个字符）
func fitPrefix(word string, font text.Face, maxWidth float64) int {
	cut := 0
	for i, r := range word {
		end := i + len(string(r))
		if cut > 0 && text.Advance(word[:end], font) > maxWidth {
			break
		}
		cut = end
	}
	return cut
}
