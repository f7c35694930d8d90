package transaction

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// -------------------------------------------------
// GET /api/transactions/export?type=...&employee_id=...&showroom_id=...
// Listeleme ile aynı filtreler, çıktı xlsx.
// -------------------------------------------------
func ExportTransactionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := parseFilter(c)
		if err != nil {
			return err
		}

		records, err := svc.List(c.Context(), f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlemler listelenemedi")
		}

		xf := excelize.NewFile()
		defer xf.Close()

		const sheet = "İşlemler"
		xf.SetSheetName("Sheet1", sheet)

		headers := []string{"Tür", "Tutar", "Açıklama", "Çalışan", "Galeri", "Tarih"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			xf.SetCellValue(sheet, cell, h)
		}

		for i, r := range records {
			row := i + 2
			values := []any{
				string(r.Kind),
				r.Amount,
				r.Description,
				r.EmployeeName,
				r.ShowroomName,
				r.CreatedAt.Format("2006-01-02 15:04"),
			}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				xf.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := xf.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "islemler.xlsx"))
		return c.Send(buf.Bytes())
	}
}
