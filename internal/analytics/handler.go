package analytics

import (
	"log"

	"backoffice-backend/internal/menu"
	"backoffice-backend/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/analytics
func SummaryHandler(led *orders.Ledger, cat *menu.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderList := led.List()

		return c.JSON(fiber.Map{
			"summary":        Summarize(orderList),
			"topItems":       TopItems(orderList, 5),
			"peakHours":      PeakHours(orderList),
			"categoryShares": CategoryShares(orderList, cat.List()),
		})
	}
}

// GET /api/analytics/export — sipariş defterini Excel olarak indirir
func ExportOrdersHandler(led *orders.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				log.Println("Excel dosyası kapatılamadı:", err)
			}
		}()

		sheet := f.GetSheetName(0)

		header := []any{"Sipariş No", "Müşteri", "Durum", "Ürün Sayısı", "Tutar", "Tarih", "Not"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		for i, o := range led.List() {
			itemCount := 0
			for _, line := range o.Items {
				itemCount += line.Quantity
			}

			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
			}

			row := []any{
				o.ID,
				o.CustomerName,
				string(o.Status),
				itemCount,
				o.Total,
				o.Timestamp.Format("2006-01-02 15:04:05"),
				o.Notes,
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası yazılamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
