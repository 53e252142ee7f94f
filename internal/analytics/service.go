package analytics

import (
	"math"
	"sort"

	"backoffice-backend/internal/models"
)

// Tüm rakamlar sipariş defterinden türetilir, hiçbir değer saklanmaz.

type Summary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
	OpenOrders   int     `json:"openOrders"`
	AverageOrder float64 `json:"averageOrder"`
}

type TopItem struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type PeakHour struct {
	Hour   int `json:"hour"`
	Orders int `json:"orders"`
}

type CategoryShare struct {
	Category string  `json:"category"`
	Share    float64 `json:"share"` // toplam cironun yüzdesi
}

func Summarize(orders []models.Order) Summary {
	s := Summary{OrderCount: len(orders)}
	for _, o := range orders {
		s.TotalRevenue += o.Total
		if o.Status != models.StatusDelivered {
			s.OpenOrders++
		}
	}
	s.TotalRevenue = round2(s.TotalRevenue)
	if s.OrderCount > 0 {
		s.AverageOrder = round2(s.TotalRevenue / float64(s.OrderCount))
	}
	return s
}

// TopItems en çok satılan öğeleri adet bazında sıralar, eşitlikte isim
// alfabetik kırılır.
func TopItems(orders []models.Order, limit int) []TopItem {
	byName := map[string]*TopItem{}
	for _, o := range orders {
		for _, line := range o.Items {
			t, ok := byName[line.Name]
			if !ok {
				t = &TopItem{Name: line.Name}
				byName[line.Name] = t
			}
			t.Orders += line.Quantity
			t.Revenue += line.UnitPrice * float64(line.Quantity)
		}
	}

	out := make([]TopItem, 0, len(byName))
	for _, t := range byName {
		t.Revenue = round2(t.Revenue)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Orders != out[j].Orders {
			return out[i].Orders > out[j].Orders
		}
		return out[i].Name < out[j].Name
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PeakHours sipariş sayısını günün saatine göre gruplar, yalnızca sipariş
// düşen saatleri artan saat sırasıyla döndürür.
func PeakHours(orders []models.Order) []PeakHour {
	byHour := map[int]int{}
	for _, o := range orders {
		byHour[o.Timestamp.Hour()]++
	}

	out := make([]PeakHour, 0, len(byHour))
	for h, n := range byHour {
		out = append(out, PeakHour{Hour: h, Orders: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// CategoryShares sipariş satırlarını menü id'si üzerinden kataloğa bağlayıp
// kategori başına ciro payını hesaplar. Katalogda artık bulunmayan id'ler
// "other" altında toplanır.
func CategoryShares(orders []models.Order, items []models.MenuItem) []CategoryShare {
	categoryOf := make(map[string]string, len(items))
	for _, it := range items {
		categoryOf[it.ID] = it.Category
	}

	revenue := map[string]float64{}
	var total float64
	for _, o := range orders {
		for _, line := range o.Items {
			cat, ok := categoryOf[line.ID]
			if !ok {
				cat = "other"
			}
			amount := line.UnitPrice * float64(line.Quantity)
			revenue[cat] += amount
			total += amount
		}
	}
	if total == 0 {
		return []CategoryShare{}
	}

	out := make([]CategoryShare, 0, len(revenue))
	for cat, rev := range revenue {
		out = append(out, CategoryShare{
			Category: cat,
			Share:    round2(rev / total * 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Share != out[j].Share {
			return out[i].Share > out[j].Share
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
