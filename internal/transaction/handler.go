package transaction

import (
	"errors"
	"fmt"
	"strconv"

	"galeri-backend/internal/audit"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      any     `json:"amount"` // sayı veya string olarak gelebilir
	Description string  `json:"description"`
	EmployeeID  *string `json:"employee_id"`
	ShowroomID  *string `json:"showroom_id"`
}

// coerceAmount - JSON'dan sayı ya da string olarak gelen tutarı float64'e çevirir.
func coerceAmount(v any) (float64, error) {
	switch a := v.(type) {
	case float64:
		return a, nil
	case string:
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return 0, err
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("tutar eksik")
	default:
		return 0, fmt.Errorf("tutar sayısal değil: %T", v)
	}
}

// parseFilter - type/employee_id/showroom_id query parametrelerini doğrular.
// Geçersiz değerler hiçbir tablo sorgulanmadan reddedilir.
func parseFilter(c *fiber.Ctx) (Filter, error) {
	var f Filter

	if typeStr := c.Query("type"); typeStr != "" {
		kind, err := ParseKind(typeStr)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		f.Kind = &kind
	}

	if empStr := c.Query("employee_id"); empStr != "" {
		id, err := uuid.Parse(empStr)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "employee_id geçersiz")
		}
		f.EmployeeID = &id
	}

	if srStr := c.Query("showroom_id"); srStr != "" {
		id, err := uuid.Parse(srStr)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
		}
		f.ShowroomID = &id
	}

	return f, nil
}

// -------------------------------------------------
// GET /api/transactions?type=salary&employee_id=...&showroom_id=...
// -------------------------------------------------
func ListTransactionsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := parseFilter(c)
		if err != nil {
			return err
		}

		records, err := svc.List(c.Context(), f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlemler listelenemedi")
		}

		return c.JSON(records)
	}
}

// -------------------------------------------------
// POST /api/transactions
// -------------------------------------------------
func CreateTransactionHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Type == "" || body.Amount == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tür ve tutar zorunlu")
		}

		amount, err := coerceAmount(body.Amount)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tutar sayısal olmalı")
		}

		in := CreateInput{
			Kind:        body.Type,
			Amount:      amount,
			Description: body.Description,
		}

		if body.EmployeeID != nil && *body.EmployeeID != "" {
			id, err := uuid.Parse(*body.EmployeeID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "employee_id geçersiz")
			}
			in.EmployeeID = &id
		}
		if body.ShowroomID != nil && *body.ShowroomID != "" {
			id, err := uuid.Parse(*body.ShowroomID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}
			in.ShowroomID = &id
		}

		rec, err := svc.Create(c.Context(), in)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return fiber.NewError(fiber.StatusBadRequest, ve.Msg)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem oluşturulamadı")
		}

		// Audit log yaz
		if userID, userName, err := audit.Actor(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShowroomID:  rec.ShowroomID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "transaction",
				EntityID:    fmt.Sprintf("%s:%d", rec.Kind, rec.ID),
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("İşlem eklendi: %s - %.2f", rec.Kind, rec.Amount),
				Before:      nil,
				After:       rec,
			}); logErr != nil {
				// Log hatası kritik değil
				fmt.Printf("Audit log yazılamadı: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}
