package menu

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/models"
)

var ErrNotFound = errors.New("menü öğesi bulunamadı")

// RoleSource mutasyon öncesi geçerli rolü verir (pratikte *auth.Session).
type RoleSource interface {
	CurrentRole() models.UserRole
}

// Draft id atanmamış menü öğesi taslağı. Tags ve Ingredients düzenleme
// sınırında virgülle ayrılmış tek metin olarak gelir, SplitList ile
// normalize edilmiş halde buraya konur.
type Draft struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Tags        []string
	Available   bool
	Ingredients []string
}

// Catalog menü öğelerinin tek sahibi. Tüm mutasyonlar admin rolü gerektirir,
// kontrol her giriş noktasının içinde yapılır.
type Catalog struct {
	mu     sync.Mutex
	roles  RoleSource
	items  []models.MenuItem
	lastID int64
}

func NewCatalog(roles RoleSource, seed []models.MenuItem) *Catalog {
	c := &Catalog{roles: roles}
	c.items = append(c.items, seed...)
	return c
}

// List ekleme sırasını koruyan bir kopya döndürür.
func (c *Catalog) List() []models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Get(id string) (models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

// Categories katalogdaki kategorileri ilk görülme sırasıyla döndürür.
func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(c.items))
	out := make([]string, 0, len(c.items))
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Add taslağa yeni bir id atar ve kataloğun sonuna ekler.
func (c *Catalog) Add(d Draft) (models.MenuItem, error) {
	if err := c.requireAdmin(); err != nil {
		return models.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := models.MenuItem{
		ID:          c.nextID(),
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Description: d.Description,
		Tags:        d.Tags,
		Available:   d.Available,
		Ingredients: d.Ingredients,
	}
	c.items = append(c.items, item)
	return item, nil
}

// Update id'si eşleşen kaydı tamamen değiştirir (alan bazlı merge yok).
func (c *Catalog) Update(item models.MenuItem) (models.MenuItem, error) {
	if err := c.requireAdmin(); err != nil {
		return models.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

// Remove id'si eşleşen kaydı siler. Kayıt yoksa hata değil no-op.
func (c *Catalog) Remove(id string) error {
	if err := c.requireAdmin(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (c *Catalog) requireAdmin() error {
	if c.roles.CurrentRole() != models.RoleAdmin {
		return auth.ErrForbidden
	}
	return nil
}

// nextID milisaniye zaman damgasından id üretir. Aynı milisaniyede birden
// fazla ekleme olursa bir artırarak teklik korunur.
func (c *Catalog) nextID() string {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}

// SplitList virgülle ayrılmış serbest metni sıralı token listesine çevirir.
// Boş token'lar atılır, boşluklar kırpılır, tekrarlar korunur.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
