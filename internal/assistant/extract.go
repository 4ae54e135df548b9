package assistant

import (
	"strings"

	"stylist/internal/catalog"
)

// Маркеры итогового блока, который модель обязана выдать по завершении
// диалога. terminalMarker — сигнал к фильтрации каталога.
const (
	summaryMarker  = "**PREFERENCES SUMMARY:**"
	terminalMarker = "**FILTER_PRODUCTS**"
)

const anySentinel = "any"

// Extract разбирает итоговый блок предпочтений из текста ассистента.
// Метки ищутся как подстроки, так что блок может быть обёрнут любым
// текстом. Повторная метка перезаписывает значение предыдущей: побеждает
// последнее вхождение сверху вниз. Значение "any", как и пустое, означает
// отсутствие ограничения — поле остаётся незаполненным.
func Extract(text string) catalog.Preferences {
	var prefs catalog.Preferences
	for _, line := range strings.Split(text, "\n") {
		if v, ok := labelValue(line, "- Style:"); ok {
			prefs.Style = v
		}
		if v, ok := labelValue(line, "- Size:"); ok {
			prefs.Size = v
		}
		if v, ok := labelValue(line, "- Color:"); ok {
			prefs.Color = v
		}
		if v, ok := labelValue(line, "- Budget:"); ok {
			prefs.Budget = v
		}
		if v, ok := labelValue(line, "- Occasion:"); ok {
			prefs.Occasion = v
		}
	}
	return prefs
}

// labelValue возвращает очищенное значение метки. ok=false, если метки в
// строке нет. Пустое значение после двоеточия и сентинел "any" дают
// ok=true с пустым значением: метка встречена, ограничения нет.
func labelValue(line, label string) (string, bool) {
	idx := strings.Index(line, label)
	if idx < 0 {
		return "", false
	}
	value := strings.TrimSpace(line[idx+len(label):])
	value = strings.ReplaceAll(value, `"`, "")
	value = strings.TrimSpace(value)
	if value == anySentinel {
		return "", true
	}
	return value, true
}
