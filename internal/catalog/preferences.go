package catalog

// Preferences частичная запись пяти покупательских предпочтений.
// Пустое поле означает "без ограничения": оно либо не было названо,
// либо покупатель ответил "any". Пустая строка в поле не хранится никогда.
type Preferences struct {
	Style    string `json:"style_preference,omitempty"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color_preference,omitempty"`
	Budget   string `json:"budget_range,omitempty"` // low|medium|high, не валидируется
	Occasion string `json:"occasion,omitempty"`
}

// IsEmpty сообщает, что ни одно предпочтение не задано.
func (p Preferences) IsEmpty() bool {
	return p == Preferences{}
}
