package auth

import (
	"sync"

	"backoffice-backend/internal/models"
)

// Session çalışan instance başına tek oturumu tutar. Store'lar mutasyon
// öncesi rolü buradan okur, yetki kuralı çağıran tarafta tekrarlanmaz.
type Session struct {
	mu      sync.Mutex
	current *models.Account
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetUser(acc *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc == nil {
		s.current = nil
		return
	}
	cp := *acc
	s.current = &cp
}

// Clear oturumu koşulsuz kapatır, idempotenttir.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Session) CurrentUser() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *Session) CurrentRole() models.UserRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.RoleNone
	}
	return s.current.Role
}
