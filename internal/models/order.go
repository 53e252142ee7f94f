package models

import "time"

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

type OrderItem struct {
	// ID sipariş satırının geldiği menü öğesini işaret eder.
	// Menü öğesi sonradan silinse bile satır geçerli kalır.
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"price"`
	Customizations []string `json:"customizations"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Status       OrderStatus `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
	// Total sipariş oluşturulurken hesaplanır ve bir daha değişmez.
	Total float64 `json:"total"`
	Notes string  `json:"notes"`
}

// Arama sipariş no ve müşteri adı üzerinden, durum seçici status üzerinden çalışır.
func (o Order) SearchFields() []string { return []string{o.ID, o.CustomerName} }
func (o Order) Facet() string          { return string(o.Status) }
