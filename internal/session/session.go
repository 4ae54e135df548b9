package session

import "stylist/internal/catalog"

// Имена событий фильтра, фиксированный контракт с витриной.
const (
	EventFiltersApplied = "chatFiltersApplied"
	EventFiltersReset   = "chatFiltersReset"
)

// Event одно событие фильтра для внутрипроцессных подписчиков.
type Event struct {
	Name        string
	Preferences catalog.Preferences
}

// Store хранит последний применённый фильтр сессии, чтобы перезагрузка
// страницы могла его восстановить. Ядро остаётся stateless: хранилище
// живёт сбоку от диалога и очищается сбросом.
type Store interface {
	// Save запоминает применённые предпочтения.
	Save(prefs catalog.Preferences) error

	// Get возвращает последний фильтр. Второй результат false, если
	// фильтр не применялся или был сброшен.
	Get() (catalog.Preferences, bool)

	// Clear сбрасывает сохранённый фильтр.
	Clear() error
}
