package orders

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("sipariş bulunamadı")
	ErrInvalidTransition = errors.New("sipariş zaten teslim edildi")
	ErrEmptyCustomer     = errors.New("müşteri adı zorunlu")
	ErrNoItems           = errors.New("sipariş en az bir ürün içermeli")
	ErrInvalidQuantity   = errors.New("ürün adedi pozitif olmalı")
	ErrInvalidPrice      = errors.New("birim fiyat negatif olamaz")
)

// RoleSource mutasyon öncesi geçerli rolü verir (pratikte *auth.Session).
type RoleSource interface {
	CurrentRole() models.UserRole
}

// Ledger verilen siparişlerin tek sahibi. Sipariş oluşturma ve durum
// ilerletme için giriş yapmış bir kullanıcı (staff ya da admin) gerekir.
type Ledger struct {
	mu     sync.Mutex
	roles  RoleSource
	orders []models.Order
	seq    int
	now    func() time.Time
}

func NewLedger(roles RoleSource, seed []models.Order) *Ledger {
	l := &Ledger{roles: roles, now: time.Now}
	l.orders = append(l.orders, seed...)
	for _, o := range seed {
		if n, ok := orderSeq(o.ID); ok && n > l.seq {
			l.seq = n
		}
	}
	return l
}

// List oluşturulma sırasını koruyan bir kopya döndürür.
func (l *Ledger) List() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) Get(id string) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Create yeni siparişi "placed" durumunda deftere ekler. Total burada bir
// kez hesaplanır, sonradan yeniden hesaplanmaz.
func (l *Ledger) Create(customerName string, items []models.OrderItem, notes string) (models.Order, error) {
	if err := l.requireUser(); err != nil {
		return models.Order{}, err
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return models.Order{}, ErrEmptyCustomer
	}
	if len(items) == 0 {
		return models.Order{}, ErrNoItems
	}
	// Taslak yardımcıları sıfır adetli satırı zaten düşürür, ama defter
	// doğrudan API çağrısına karşı da kendi invariant'ını korur.
	for _, it := range items {
		if it.Quantity <= 0 {
			return models.Order{}, ErrInvalidQuantity
		}
		if it.UnitPrice < 0 {
			return models.Order{}, ErrInvalidPrice
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	order := models.Order{
		ID:           fmt.Sprintf("ORD-%03d", l.seq),
		CustomerName: customerName,
		Items:        append([]models.OrderItem(nil), items...),
		Status:       models.StatusPlaced,
		Timestamp:    l.now(),
		Total:        LinesTotal(items),
		Notes:        notes,
	}
	l.orders = append(l.orders, order)
	return order, nil
}

// Advance durumu tam bir adım ileri taşır: placed→preparing→ready→delivered.
// Adım atlanamaz, geri dönülemez.
func (l *Ledger) Advance(id string) (models.Order, error) {
	if err := l.requireUser(); err != nil {
		return models.Order{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		next, ok := NextStatus(l.orders[i].Status)
		if !ok {
			return models.Order{}, ErrInvalidTransition
		}
		l.orders[i].Status = next
		return l.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

func (l *Ledger) requireUser() error {
	if l.roles.CurrentRole() == models.RoleNone {
		return auth.ErrForbidden
	}
	return nil
}

// NextStatus doğrusal durum makinesindeki bir sonraki adımı verir.
// delivered son durumdur.
func NextStatus(s models.OrderStatus) (models.OrderStatus, bool) {
	switch s {
	case models.StatusPlaced:
		return models.StatusPreparing, true
	case models.StatusPreparing:
		return models.StatusReady, true
	case models.StatusReady:
		return models.StatusDelivered, true
	default:
		return s, false
	}
}

// Elapsed siparişin yaşını gösterim için biçimler ("15m ago", "1h 5m ago").
// Saklanmaz, her okumada timestamp ve now üzerinden türetilir.
func Elapsed(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	return fmt.Sprintf("%dh %dm ago", minutes/60, minutes%60)
}

func orderSeq(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "ORD-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
