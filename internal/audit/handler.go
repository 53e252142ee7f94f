package audit

import (
	"backoffice-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=menu_item&entity_id=1
func ListAuditLogsHandler(trail *Trail) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("entity_type")
		entityID := c.Query("entity_id")

		logs := trail.List()

		resp := make([]models.AuditLog, 0, len(logs))
		for _, entry := range logs {
			if entityType != "" && entry.EntityType != entityType {
				continue
			}
			if entityID != "" && entry.EntityID != entityID {
				continue
			}
			resp = append(resp, entry)
		}

		return c.JSON(resp)
	}
}
