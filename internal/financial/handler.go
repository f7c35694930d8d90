package financial

import (
	"fmt"
	"time"

	"galeri-backend/internal/database"
	"galeri-backend/internal/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type KindTotal struct {
	Type  transaction.Kind `json:"type"`
	Total float64          `json:"total"`
}

type MonthlyFinancialSummaryResponse struct {
	ShowroomID  *uuid.UUID  `json:"showroom_id"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Items       []KindTotal `json:"items"`
	TotalIncome float64     `json:"total_income"`   // satışlar
	TotalOutlay float64     `json:"total_outlay"`   // maaş + avans + gider + kesinti
	Net         float64     `json:"net"`
}

// -----------------------------------
// GET /api/financial-summary/monthly
// ?year=2026&month=8[&showroom_id=...]
// Beş kayıt tablosunun aylık toplamları; tablo eşlemesi transaction
// paketindeki tek tablodan gelir.
// -----------------------------------
func MonthlyFinancialSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		monthStr := c.Query("month")
		if yearStr == "" || monthStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year ve month zorunlu")
		}

		var year, month int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
		}
		if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month geçersiz")
		}

		var showroomID *uuid.UUID
		if srStr := c.Query("showroom_id"); srStr != "" {
			id, err := uuid.Parse(srStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}
			showroomID = &id
		}

		loc := time.Now().Location()
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, 0)

		resp := MonthlyFinancialSummaryResponse{
			ShowroomID: showroomID,
			Year:       year,
			Month:      month,
			Items:      make([]KindTotal, 0, len(transaction.Kinds)),
		}

		for _, kind := range transaction.Kinds {
			tbl, ok := transaction.TableName(kind)
			if !ok {
				continue
			}

			dbq := database.DB.
				Table(tbl).
				Select("COALESCE(SUM(amount), 0)").
				Where("created_at >= ? AND created_at < ?", start, end)
			if showroomID != nil {
				dbq = dbq.Where("showroom_id = ?", *showroomID)
			}

			var total float64
			if err := dbq.Scan(&total).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
			}

			resp.Items = append(resp.Items, KindTotal{Type: kind, Total: total})

			if kind == transaction.KindSales {
				resp.TotalIncome += total
			} else {
				resp.TotalOutlay += total
			}
		}

		resp.Net = resp.TotalIncome - resp.TotalOutlay

		return c.JSON(resp)
	}
}
