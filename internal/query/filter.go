package query

import "strings"

// All kategori/durum seçicisinin "hepsini göster" sentinel değeri.
const All = "all"

// Filterable arama alanlarını ve seçici değerini (kategori ya da durum) verir.
type Filterable interface {
	SearchFields() []string
	Facet() string
}

// Apply serbest metin araması ile seçici eşleşmesini AND'leyerek alt kümeyi
// döndürür. Girdi sırası korunur, girdi değiştirilmez; her tuş vuruşunda
// çağrılabilir.
func Apply[T Filterable](items []T, search, facet string) []T {
	search = strings.ToLower(search)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it, search) {
			continue
		}
		if !matchesFacet(it, facet) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it Filterable, search string) bool {
	if search == "" {
		return true
	}
	for _, f := range it.SearchFields() {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func matchesFacet(it Filterable, facet string) bool {
	if facet == "" || facet == All {
		return true
	}
	return it.Facet() == facet
}
