package menu

import (
	"errors"
	"strings"

	"backoffice-backend/internal/audit"
	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/models"
	"backoffice-backend/internal/query"

	"github.com/gofiber/fiber/v2"
)

// Tags ve Ingredients düzenleme formundan virgülle ayrılmış tek metin gelir.
type MenuItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Tags        string  `json:"tags"`
	Available   bool    `json:"available"`
	Ingredients string  `json:"ingredients"`
}

// GET /api/menu-items?search=pizza&category=Pizzas (tüm authenticated kullanıcılar)
func ListMenuItemsHandler(cat *Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := c.Query("search")
		category := c.Query("category", query.All)

		items := query.Apply(cat.List(), search, category)
		return c.JSON(items)
	}
}

// GET /api/menu-items/categories
func ListCategoriesHandler(cat *Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.Categories())
	}
}

// POST /api/admin/menu-items (sadece admin)
func CreateMenuItemHandler(cat *Catalog, sess *auth.Session, trail *audit.Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseMenuItemRequest(c)
		if err != nil {
			return err
		}

		item, err := cat.Add(Draft{
			Name:        body.Name,
			Category:    body.Category,
			Price:       body.Price,
			Description: body.Description,
			Tags:        SplitList(body.Tags),
			Available:   body.Available,
			Ingredients: SplitList(body.Ingredients),
		})
		if err != nil {
			return mapCatalogError(err, "Menü öğesi oluşturulamadı")
		}

		trail.Write(audit.LogOptions{
			UserName:    actorName(sess),
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: "Menü öğesi eklendi: " + item.Name,
			After:       item,
		})

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/admin/menu-items/:id
func UpdateMenuItemHandler(cat *Catalog, sess *auth.Session, trail *audit.Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		body, err := parseMenuItemRequest(c)
		if err != nil {
			return err
		}

		// Audit için önceki hal
		before, _ := cat.Get(id)

		item, err := cat.Update(models.MenuItem{
			ID:          id,
			Name:        body.Name,
			Category:    body.Category,
			Price:       body.Price,
			Description: body.Description,
			Tags:        SplitList(body.Tags),
			Available:   body.Available,
			Ingredients: SplitList(body.Ingredients),
		})
		if err != nil {
			return mapCatalogError(err, "Menü öğesi güncellenemedi")
		}

		trail.Write(audit.LogOptions{
			UserName:    actorName(sess),
			EntityType:  "menu_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: "Menü öğesi güncellendi: " + item.Name,
			Before:      before,
			After:       item,
		})

		return c.JSON(item)
	}
}

// DELETE /api/admin/menu-items/:id
func DeleteMenuItemHandler(cat *Catalog, sess *auth.Session, trail *audit.Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		before, getErr := cat.Get(id)

		if err := cat.Remove(id); err != nil {
			return mapCatalogError(err, "Menü öğesi silinemedi")
		}

		// Olmayan id için silme sessiz no-op, audit kaydı da düşmez
		if getErr == nil {
			trail.Write(audit.LogOptions{
				UserName:    actorName(sess),
				EntityType:  "menu_item",
				EntityID:    id,
				Action:      models.AuditActionDelete,
				Description: "Menü öğesi silindi: " + before.Name,
				Before:      before,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseMenuItemRequest(c *fiber.Ctx) (*MenuItemRequest, error) {
	var body MenuItemRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Category = strings.TrimSpace(body.Category)
	body.Description = strings.TrimSpace(body.Description)

	if body.Name == "" || body.Category == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "İsim ve kategori zorunlu")
	}
	if body.Price < 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
	}
	return &body, nil
}

func mapCatalogError(err error, fallback string) error {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Menü öğesi bulunamadı")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}

func actorName(sess *auth.Session) string {
	if u := sess.CurrentUser(); u != nil {
		return u.Name
	}
	return ""
}
