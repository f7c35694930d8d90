package audit

import (
	"encoding/json"

	"galeri-backend/internal/auth"
	"galeri-backend/internal/database"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LogOptions struct {
	ShowroomID  *uuid.UUID
	UserID      uuid.UUID
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		ShowroomID:  opts.ShowroomID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	return database.DB.Create(&entry).Error
}

// Actor - locals'taki kullanıcı id'si ile adını çözer. Yazma yolları log
// satırına kim yaptı bilgisini bununla koyar.
func Actor(c *fiber.Ctx) (uuid.UUID, string, error) {
	userID, ok := c.Locals(auth.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
	}

	return userID, user.Name, nil
}
