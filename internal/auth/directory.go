package auth

import (
	"errors"
	"strings"

	"backoffice-backend/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("email veya şifre hatalı")
	ErrForbidden          = errors.New("bu işlem için yetkiniz yok")
)

// Directory derleme zamanında tanımlı hesap dizini. Runtime'da hesap
// eklenmez/silinmez; gerçek bir kullanıcı yönetimi bu örneğin kapsamı dışında.
type Directory struct {
	accounts []models.Account
}

func NewDirectory() *Directory {
	return &Directory{
		accounts: []models.Account{
			{ID: "1", Name: "Admin User", Email: "admin@restaurant.com", Password: "admin123", Role: models.RoleAdmin},
			{ID: "2", Name: "Staff User", Email: "staff@restaurant.com", Password: "staff123", Role: models.RoleStaff},
		},
	}
}

// Authenticate email+şifre tam eşleşmesi arar. Şifre hash'lenmez,
// bu dizin bir güvenlik sınırı değil demo verisidir.
func (d *Directory) Authenticate(email, password string) (*models.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	for i := range d.accounts {
		acc := d.accounts[i]
		if strings.ToLower(acc.Email) == email && acc.Password == password {
			acc.Password = "" // şifre dizin dışına çıkmaz
			return &acc, nil
		}
	}
	return nil, ErrInvalidCredentials
}
