package models

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Available   bool     `json:"available"`
	Ingredients []string `json:"ingredients"`
}

// Arama isim ve açıklama üzerinden, kategori seçici kategori üzerinden çalışır.
func (m MenuItem) SearchFields() []string { return []string{m.Name, m.Description} }
func (m MenuItem) Facet() string          { return m.Category }
