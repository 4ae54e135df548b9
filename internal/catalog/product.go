package catalog

// priceDivisorIDRPerUSD переводит цены каталога из рупий в доллары,
// в которых заданы бюджетные диапазоны.
const priceDivisorIDRPerUSD = 15000

// Product запись каталога. Данные неизменяемые, загружаются один раз
// на процесс и безопасны для конкурентного чтения.
type Product struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Style  []string `json:"style"`
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
	Price  int64    `json:"price"` // в рупиях (IDR)
	Tags   []string `json:"tags"`
}

// View представление товара для API: все поля Product плюс алиас name,
// который ожидает витрина.
type View struct {
	Product
	Name string `json:"name"`
}

// View возвращает API-представление товара.
func (p Product) View() View {
	return View{Product: p, Name: p.Title}
}

// PriceUSD возвращает нормализованную цену в долларах.
func (p Product) PriceUSD() float64 {
	return float64(p.Price) / priceDivisorIDRPerUSD
}

// SampleProducts возвращает демонстрационный каталог витрины.
func SampleProducts() []Product {
	return []Product{
		{
			ID:     "SKU123456",
			Title:  "Men's Formal Cotton Shirt",
			Style:  []string{"office", "basic"},
			Sizes:  []string{"S", "M", "L", "XL"},
			Colors: []string{"white", "light blue", "gray"},
			Price:  369000,
			Tags:   []string{"new", "office", "sale"},
		},
		{
			ID:     "SKU123457",
			Title:  "Women's Casual Denim Jacket",
			Style:  []string{"casual", "trendy"},
			Sizes:  []string{"XS", "S", "M", "L"},
			Colors: []string{"blue", "black", "white"},
			Price:  599000,
			Tags:   []string{"trending", "casual"},
		},
		{
			ID:     "SKU123458",
			Title:  "Unisex Hoodie",
			Style:  []string{"casual", "streetwear"},
			Sizes:  []string{"S", "M", "L", "XL", "XXL"},
			Colors: []string{"black", "gray", "navy", "burgundy"},
			Price:  449000,
			Tags:   []string{"eco-friendly", "comfort"},
		},
	}
}
