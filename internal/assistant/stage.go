package assistant

import "strings"

// Stage явная стадия диалога сбора предпочтений. Сервер не хранит
// состояние между ходами: стадия каждый раз выводится из
// нормализованного текста ассистента.
type Stage string

const (
	// StageCollecting — собраны не все пять атрибутов, идут вопросы.
	StageCollecting Stage = "collecting"
	// StageAwaitingExtra — сводка выдана без терминального маркера:
	// ассистент уточняет дополнительные пожелания.
	StageAwaitingExtra Stage = "awaiting_extra"
	// StageTerminal — присутствует терминальный маркер, пора фильтровать.
	StageTerminal Stage = "terminal"
)

var summaryLabels = []string{"- Style:", "- Size:", "- Color:", "- Budget:", "- Occasion:"}

// DetectStage определяет стадию по тексту ассистента. Терминальность —
// свойство маркера, а не догадка по формулировкам.
func DetectStage(text string) Stage {
	if strings.Contains(text, terminalMarker) {
		return StageTerminal
	}
	seen := 0
	for _, label := range summaryLabels {
		if strings.Contains(text, label) {
			seen++
		}
	}
	if seen == len(summaryLabels) {
		return StageAwaitingExtra
	}
	return StageCollecting
}
