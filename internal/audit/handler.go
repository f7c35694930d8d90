package audit

import (
	"galeri-backend/internal/database"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	ShowroomID  *uuid.UUID         `json:"showroom_id"`
	UserID      uuid.UUID          `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/audit-logs?entity_type=transaction&user_id=...&showroom_id=...
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if srStr := c.Query("showroom_id"); srStr != "" {
			srID, err := uuid.Parse(srStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}
			dbq = dbq.Where("showroom_id = ?", srID)
		}

		if uidStr := c.Query("user_id"); uidStr != "" {
			uid, err := uuid.Parse(uidStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "user_id geçersiz")
			}
			dbq = dbq.Where("user_id = ?", uid)
		}

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}

		if entityID := c.Query("entity_id"); entityID != "" {
			dbq = dbq.Where("entity_id = ?", entityID)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar listelenemedi")
		}

		res := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			res = append(res, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				ShowroomID:  l.ShowroomID,
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}

		return c.JSON(res)
	}
}
