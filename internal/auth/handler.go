package auth

import (
	"errors"

	"backoffice-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, dir *Directory, sess *Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email ve şifre zorunlu")
		}

		acc, err := dir.Authenticate(body.Email, body.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Giriş yapılamadı")
		}

		sess.SetUser(acc)

		token, err := GenerateToken(cfg.JWTSecret, acc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  acc,
		})
	}
}

// POST /api/auth/logout
func LogoutHandler(sess *Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess.Clear()
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/auth/me
func MeHandler(sess *Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sess.CurrentUser()
		if user == nil {
			// Token geçerli ama oturum kapatılmış (ör: sunucu yeniden başladı)
			return fiber.NewError(fiber.StatusUnauthorized, "Aktif oturum yok")
		}

		return c.JSON(fiber.Map{
			"user": user,
			"role": user.Role,
		})
	}
}
