package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleNone  UserRole = "none"
)

// Account sabit hesap dizinindeki bir kullanıcıyı temsil eder.
// Dizin derleme zamanında tanımlıdır, runtime'da hesap oluşturulmaz.
type Account struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Role     UserRole `json:"role"`
}
