package menu

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-backend/internal/audit"
	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuApp(sess *auth.Session, cat *Catalog, trail *audit.Trail) *fiber.App {
	app := fiber.New()
	app.Get("/menu-items", ListMenuItemsHandler(cat))
	app.Get("/menu-items/categories", ListCategoriesHandler(cat))
	app.Post("/menu-items", CreateMenuItemHandler(cat, sess, trail))
	app.Put("/menu-items/:id", UpdateMenuItemHandler(cat, sess, trail))
	app.Delete("/menu-items/:id", DeleteMenuItemHandler(cat, sess, trail))
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func validItemBody() MenuItemRequest {
	return MenuItemRequest{
		Name:        "Lahmacun",
		Category:    "Pizzas",
		Price:       6.50,
		Description: "Thin crust with spiced minced meat",
		Tags:        " vegan,  , spicy ",
		Available:   true,
		Ingredients: "dough, minced meat, pepper",
	}
}

func TestCreateMenuItemForbiddenForStaff(t *testing.T) {
	sess := staffSession()
	cat := NewCatalog(sess, nil)
	app := newMenuApp(sess, cat, audit.NewTrail(10))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/menu-items", validItemBody()))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Empty(t, cat.List())
}

func TestCreateMenuItemValidation(t *testing.T) {
	sess := adminSession()
	cat := NewCatalog(sess, nil)
	app := newMenuApp(sess, cat, audit.NewTrail(10))

	body := validItemBody()
	body.Name = "  "

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/menu-items", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body = validItemBody()
	body.Price = -1

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/menu-items", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateMenuItemSplitsCommaLists(t *testing.T) {
	sess := adminSession()
	cat := NewCatalog(sess, nil)
	trail := audit.NewTrail(10)
	app := newMenuApp(sess, cat, trail)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/menu-items", validItemBody()))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item models.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, []string{"vegan", "spicy"}, item.Tags)
	assert.Equal(t, []string{"dough", "minced meat", "pepper"}, item.Ingredients)

	// Mutasyon audit izine düşmüş olmalı
	logs := trail.List()
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, item.ID, logs[0].EntityID)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	sess := adminSession()
	cat := NewCatalog(sess, nil)
	app := newMenuApp(sess, cat, audit.NewTrail(10))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/menu-items/999", validItemBody()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteMenuItemAbsentIsNoOp(t *testing.T) {
	sess := adminSession()
	seed := []models.MenuItem{{ID: "1", Name: "Margherita Pizza", Category: "Pizzas"}}
	cat := NewCatalog(sess, seed)
	trail := audit.NewTrail(10)
	app := newMenuApp(sess, cat, trail)

	req := httptest.NewRequest(http.MethodDelete, "/menu-items/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, seed, cat.List())
	assert.Empty(t, trail.List(), "no-op silme audit kaydı düşürmemeli")
}

func TestListMenuItemsFiltering(t *testing.T) {
	sess := adminSession()
	cat := NewCatalog(sess, []models.MenuItem{
		{ID: "1", Name: "Margherita Pizza", Category: "Pizzas", Description: "Classic pizza"},
		{ID: "2", Name: "Caesar Salad", Category: "Salads", Description: "Crisp romaine"},
	})
	app := newMenuApp(sess, cat, audit.NewTrail(10))

	req := httptest.NewRequest(http.MethodGet, "/menu-items?search=pizza&category=Pizzas", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []models.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}
