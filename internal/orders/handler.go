package orders

import (
	"errors"
	"time"

	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/menu"
	"backoffice-backend/internal/models"
	"backoffice-backend/internal/query"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Items        []models.OrderItem `json:"items"`
	Notes        string             `json:"notes"`
}

type OrderResponse struct {
	models.Order
	Elapsed string `json:"elapsed"`
}

type DraftRequest struct {
	Items      []models.OrderItem `json:"items"`
	MenuItemID string             `json:"menuItemId"`
	Quantity   int                `json:"quantity"`
}

type DraftResponse struct {
	Items []models.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// GET /api/orders?search=ord-001&status=preparing
func ListOrdersHandler(led *Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := c.Query("search")
		status := c.Query("status", query.All)

		now := time.Now()
		filtered := query.Apply(led.List(), search, status)

		resp := make([]OrderResponse, 0, len(filtered))
		for _, o := range filtered {
			resp = append(resp, OrderResponse{Order: o, Elapsed: Elapsed(o.Timestamp, now)})
		}
		return c.JSON(resp)
	}
}

// POST /api/orders
func CreateOrderHandler(led *Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		order, err := led.Create(body.CustomerName, body.Items, body.Notes)
		if err != nil {
			return mapLedgerError(err, "Sipariş oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(OrderResponse{
			Order:   order,
			Elapsed: Elapsed(order.Timestamp, time.Now()),
		})
	}
}

// POST /api/orders/:id/advance
func AdvanceOrderHandler(led *Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		order, err := led.Advance(id)
		if err != nil {
			return mapLedgerError(err, "Sipariş durumu güncellenemedi")
		}

		return c.JSON(OrderResponse{
			Order:   order,
			Elapsed: Elapsed(order.Timestamp, time.Now()),
		})
	}
}

// POST /api/orders/draft/add — taslağa menü öğesi ekler, taslak sunucuda tutulmaz
func AddDraftLineHandler(cat *menu.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DraftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		mi, err := cat.Get(body.MenuItemID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü öğesi bulunamadı")
		}
		if !mi.Available {
			return fiber.NewError(fiber.StatusBadRequest, "Menü öğesi şu an mevcut değil")
		}

		items := AddLine(body.Items, mi)
		return c.JSON(DraftResponse{Items: items, Total: LinesTotal(items)})
	}
}

// POST /api/orders/draft/quantity
func ChangeDraftQuantityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DraftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		items := ChangeQuantity(body.Items, body.MenuItemID, body.Quantity)
		return c.JSON(DraftResponse{Items: items, Total: LinesTotal(items)})
	}
}

func mapLedgerError(err error, fallback string) error {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
	case errors.Is(err, ErrEmptyCustomer), errors.Is(err, ErrNoItems),
		errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidPrice):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
	case errors.Is(err, ErrInvalidTransition):
		return fiber.NewError(fiber.StatusConflict, "Sipariş zaten teslim edildi")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}
