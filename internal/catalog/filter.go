package catalog

import "strings"

// FilterResult результат фильтрации: совпавшие товары в порядке каталога.
type FilterResult struct {
	Products []View `json:"products"`
	Count    int    `json:"count"`
}

// occasionStyles переводит повод в набор ключевых слов стиля.
// Для неизвестного повода ключевым словом становится сам повод.
var occasionStyles = map[string][]string{
	"daily":  {"casual", "basic", "comfort"},
	"work":   {"office", "professional", "formal"},
	"party":  {"elegant", "trendy", "formal"},
	"casual": {"casual", "basic", "streetwear"},
}

// Filter применяет предикаты предпочтений конъюнктивно (AND) и возвращает
// подмножество каталога, сохраняя исходный порядок. Чистая функция:
// единственная реализация фильтра и для чата, и для /api/products/filter.
func Filter(products []Product, prefs Preferences) FilterResult {
	matches := make([]View, 0, len(products))
	for _, p := range products {
		if matchesPreferences(p, prefs) {
			matches = append(matches, p.View())
		}
	}
	return FilterResult{Products: matches, Count: len(matches)}
}

func matchesPreferences(p Product, prefs Preferences) bool {
	return matchBudget(p, prefs.Budget) &&
		matchStyle(p, prefs.Style) &&
		matchSize(p, prefs.Size) &&
		matchColor(p, prefs.Color) &&
		matchOccasion(p, prefs.Occasion)
}

// matchBudget: low=[0,50), medium=[50,150], high=[150,∞) в долларах.
// Пустой или нераспознанный бюджет никогда не исключает товар.
func matchBudget(p Product, budget string) bool {
	usd := p.PriceUSD()
	switch budget {
	case "low":
		return usd < 50
	case "medium":
		return usd >= 50 && usd <= 150
	case "high":
		return usd >= 150
	default:
		return true
	}
}

func matchStyle(p Product, style string) bool {
	if style == "" {
		return true
	}
	return anyContainsFold(p.Style, style)
}

func matchSize(p Product, size string) bool {
	if size == "" {
		return true
	}
	want := strings.ToUpper(size)
	for _, s := range p.Sizes {
		if s == want {
			return true
		}
	}
	return false
}

func matchColor(p Product, color string) bool {
	if color == "" {
		return true
	}
	return anyContainsFold(p.Colors, color)
}

func matchOccasion(p Product, occasion string) bool {
	if occasion == "" {
		return true
	}
	keywords, ok := occasionStyles[strings.ToLower(occasion)]
	if !ok {
		keywords = []string{strings.ToLower(occasion)}
	}
	for _, keyword := range keywords {
		if anyContainsFold(p.Style, keyword) || anyContainsFold(p.Tags, keyword) {
			return true
		}
	}
	return false
}

// anyContainsFold сообщает, содержит ли хотя бы одно значение подстроку
// без учёта регистра.
func anyContainsFold(values []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
