package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const toolCallOpen = "<tool_calls>"

var (
	// Аргументы tool-call: первый объект в фигурных скобках после "arguments".
	argumentsRe = regexp.MustCompile(`"arguments":\s*(\{[^}]*\})`)
	// Голые ключи вида style: — модель выдаёт JSON без кавычек у ключей.
	bareKeyRe = regexp.MustCompile(`([a-zA-Z_]+):`)
	// Весь блок tool_calls целиком, включая переводы строк.
	toolCallsBlockRe = regexp.MustCompile(`(?s)<tool_calls>.*?</tool_calls>`)
)

// NormalizeToolCalls приводит tool-call эмиссию модели к каноническому
// итоговому блоку, чтобы дальнейшая обработка оставалась текстовой.
// Повреждённый JSON не является ошибкой хода: блок заменяется на сводку
// "без ограничений". Текст без tool_calls возвращается без изменений.
func NormalizeToolCalls(text string) string {
	if !strings.Contains(text, toolCallOpen) {
		return text
	}

	m := argumentsRe.FindStringSubmatch(text)
	if m == nil {
		return text
	}

	repaired := bareKeyRe.ReplaceAllString(m[1], `"$1":`)
	repaired = strings.ReplaceAll(repaired, "'", `"`)

	var args map[string]any
	if err := json.Unmarshal([]byte(repaired), &args); err != nil {
		return toolCallsBlockRe.ReplaceAllString(text, genericSummary())
	}

	return summaryBlock(
		stringArg(args, "style"),
		stringArg(args, "size"),
		stringArg(args, "color"),
		stringArg(args, "budget"),
		stringArg(args, "occasion"),
	)
}

// summaryBlock собирает канонический итоговый блок. Пустые значения
// печатаются как "any".
func summaryBlock(style, size, color, budget, occasion string) string {
	return fmt.Sprintf(`%s
- Style: %s
- Size: %s
- Color: %s
- Budget: %s
- Occasion: %s

%s`, summaryMarker, orAny(style), orAny(size), orAny(color), orAny(budget), orAny(occasion), terminalMarker)
}

func genericSummary() string {
	return summaryBlock("", "", "", "", "")
}

func orAny(value string) string {
	if value == "" {
		return anySentinel
	}
	return value
}

func stringArg(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}
