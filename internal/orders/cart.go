package orders

import "backoffice-backend/internal/models"

// Sipariş oluşturma öncesi satır düzenleme yardımcıları. Hepsi saf
// fonksiyondur, girdi dilimini değiştirmek yerine yeni dilim döndürür.

// AddLine menü öğesini taslağa ekler. Aynı menü id'li satır zaten varsa
// yeni satır açmak yerine adedi bir artırır.
func AddLine(items []models.OrderItem, mi models.MenuItem) []models.OrderItem {
	out := append([]models.OrderItem(nil), items...)
	for i := range out {
		if out[i].ID == mi.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, models.OrderItem{
		ID:             mi.ID,
		Name:           mi.Name,
		Quantity:       1,
		UnitPrice:      mi.Price,
		Customizations: []string{},
	})
}

// ChangeQuantity satırın adedini günceller. Sıfır ve altı satırı tamamen
// kaldırır. Bilinmeyen id no-op'tur.
func ChangeQuantity(items []models.OrderItem, id string, quantity int) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			if quantity <= 0 {
				continue
			}
			it.Quantity = quantity
		}
		out = append(out, it)
	}
	return out
}

// LinesTotal satırların toplamını kuruş hassasiyetine yuvarlayarak verir.
func LinesTotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return round2(total)
}
