package main

import (
	"log"
	"strings"

	"backoffice-backend/internal/analytics"
	"backoffice-backend/internal/audit"
	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/config"
	"backoffice-backend/internal/menu"
	"backoffice-backend/internal/models"
	"backoffice-backend/internal/orders"
	"backoffice-backend/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	// Bellek içi durum: sabit dizin, tek oturum, tohumlanmış katalog ve defter
	directory := auth.NewDirectory()
	session := auth.NewSession()
	catalog := menu.NewCatalog(session, seed.MenuItems())
	ledger := orders.NewLedger(session, seed.Orders())
	trail := audit.NewTrail(500)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, directory, session))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler(session))
	protected.Get("/auth/me", auth.MeHandler(session))

	// Menü kataloğu (okuma herkese açık, yazma sadece admin)
	protected.Get("/menu-items", menu.ListMenuItemsHandler(catalog))
	protected.Get("/menu-items/categories", menu.ListCategoriesHandler(catalog))

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/menu-items", menu.CreateMenuItemHandler(catalog, session, trail))
	adminRoutes.Put("/menu-items/:id", menu.UpdateMenuItemHandler(catalog, session, trail))
	adminRoutes.Delete("/menu-items/:id", menu.DeleteMenuItemHandler(catalog, session, trail))

	// Sipariş defteri
	protected.Get("/orders", orders.ListOrdersHandler(ledger))
	protected.Post("/orders", orders.CreateOrderHandler(ledger))
	protected.Post("/orders/:id/advance", orders.AdvanceOrderHandler(ledger))

	// Sipariş taslağı düzenleme (taslak istemcide yaşar, sunucu saf hesap yapar)
	protected.Post("/orders/draft/add", orders.AddDraftLineHandler(catalog))
	protected.Post("/orders/draft/quantity", orders.ChangeDraftQuantityHandler())

	// Analitik
	protected.Get("/analytics", analytics.SummaryHandler(ledger, catalog))
	protected.Get("/analytics/export", analytics.ExportOrdersHandler(ledger))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(trail))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
