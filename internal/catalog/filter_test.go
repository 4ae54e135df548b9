package catalog

import (
	"reflect"
	"testing"
)

func ids(result FilterResult) []string {
	out := make([]string, 0, len(result.Products))
	for _, p := range result.Products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterEmptyPreferencesReturnsAll(t *testing.T) {
	products := SampleProducts()
	result := Filter(products, Preferences{})

	if result.Count != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), result.Count)
	}
	// Порядок каталога сохраняется.
	for i, p := range result.Products {
		if p.ID != products[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, products[i].ID, p.ID)
		}
	}
}

func TestFilterIsPure(t *testing.T) {
	products := SampleProducts()
	prefs := Preferences{Style: "casual", Budget: "low"}

	first := Filter(products, prefs)
	second := Filter(products, prefs)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestFilterBudgetBoundaries(t *testing.T) {
	// 750000 IDR = ровно $50, 2250000 IDR = ровно $150.
	atFifty := Product{ID: "P50", Title: "At fifty", Price: 750000}
	atOneFifty := Product{ID: "P150", Title: "At one fifty", Price: 2250000}
	underFifty := Product{ID: "P49", Title: "Under fifty", Price: 749999}
	products := []Product{atFifty, atOneFifty, underFifty}

	tests := []struct {
		budget string
		want   []string
	}{
		{"low", []string{"P49"}},                  // $50 в low не входит
		{"medium", []string{"P50", "P150"}},       // обе границы включительно
		{"high", []string{"P150"}},                // $150 входит и в high
		{"", []string{"P50", "P150", "P49"}},      // отсутствие бюджета не исключает
		{"lavish", []string{"P50", "P150", "P49"}}, // нераспознанный бюджет не исключает
	}

	for _, tt := range tests {
		got := ids(Filter(products, Preferences{Budget: tt.budget}))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("budget %q: expected %v, got %v", tt.budget, tt.want, got)
		}
	}
}

func TestFilterStyleSubstringCaseInsensitive(t *testing.T) {
	result := Filter(SampleProducts(), Preferences{Style: "CASUAL"})
	got := ids(result)
	want := []string{"SKU123457", "SKU123458"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterSizeExactUppercased(t *testing.T) {
	result := Filter(SampleProducts(), Preferences{Size: "xl"})
	got := ids(result)
	want := []string{"SKU123456", "SKU123458"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterColorSubstring(t *testing.T) {
	// "blue" совпадает и с "light blue" рубашки, и с "blue" куртки.
	result := Filter(SampleProducts(), Preferences{Color: "blue"})
	got := ids(result)
	want := []string{"SKU123456", "SKU123457"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterOccasionWorkMapsToOfficeStyles(t *testing.T) {
	result := Filter(SampleProducts(), Preferences{Occasion: "work"})
	got := ids(result)
	want := []string{"SKU123456"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected only the office shirt, got %v", got)
	}
}

func TestFilterOccasionFallbackUsesValueItself(t *testing.T) {
	// Повода "eco" нет в карте: само слово матчится по тегу eco-friendly.
	result := Filter(SampleProducts(), Preferences{Occasion: "eco"})
	got := ids(result)
	want := []string{"SKU123458"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected only the hoodie, got %v", got)
	}

	if got := Filter(SampleProducts(), Preferences{Occasion: "hiking"}); got.Count != 0 {
		t.Fatalf("expected no matches for unknown occasion, got %d", got.Count)
	}
}

func TestFilterBudgetAndStyleConjunction(t *testing.T) {
	// Все демонстрационные цены нормализуются ниже $50, поэтому
	// low+casual возвращает куртку и худи.
	result := Filter(SampleProducts(), Preferences{Budget: "low", Style: "casual"})
	got := ids(result)
	want := []string{"SKU123457", "SKU123458"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if result.Count != 2 {
		t.Fatalf("expected count 2, got %d", result.Count)
	}
}

func TestFilterMediumBudgetWithStyle(t *testing.T) {
	products := []Product{
		{ID: "A", Title: "Cheap basic tee", Style: []string{"casual"}, Price: 300000},    // $20
		{ID: "B", Title: "Mid casual coat", Style: []string{"casual"}, Price: 1200000},   // $80
		{ID: "C", Title: "Mid formal suit", Style: []string{"formal"}, Price: 1500000},   // $100
		{ID: "D", Title: "Designer jacket", Style: []string{"casual"}, Price: 3000000},   // $200
	}

	result := Filter(products, Preferences{Budget: "medium", Style: "casual"})
	got := ids(result)
	want := []string{"B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
