package showroom

import (
	"fmt"
	"strings"

	"galeri-backend/internal/audit"
	"galeri-backend/internal/database"
	"galeri-backend/internal/directory"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// writeLog - galeri yazma yollarının ortak audit kaydı. Log hatası kritik değil.
func writeLog(c *fiber.Ctx, action models.AuditAction, s *models.Showroom, before, after any, desc string) {
	userID, userName, err := audit.Actor(c)
	if err != nil {
		return
	}
	if logErr := audit.WriteLog(audit.LogOptions{
		ShowroomID:  &s.ID,
		UserID:      userID,
		UserName:    userName,
		EntityType:  "showroom",
		EntityID:    s.ID.String(),
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	}); logErr != nil {
		fmt.Printf("Audit log yazılamadı: %v\n", logErr)
	}
}

type ShowroomResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ManagerName   string    `json:"manager_name"`
	Address       string    `json:"address"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     string    `json:"created_at"`
}

type CreateShowroomRequest struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Managers []string `json:"managers"` // Opsiyonel, virgülle birleştirilir
}

type UpdateShowroomRequest struct {
	Name     *string   `json:"name"`
	Address  *string   `json:"address"`
	Managers *[]string `json:"managers"`
}

// ----------------------------------------
// GALERİ CRUD
// ----------------------------------------

func CreateShowroomHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShowroomRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Galeri adı boş olamaz")
		}

		showroom := models.Showroom{
			ID:          uuid.New(),
			Name:        body.Name,
			Address:     body.Address,
			ManagerName: strings.Join(body.Managers, ", "),
		}

		if err := database.DB.Create(&showroom).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Galeri oluşturulamadı")
		}

		writeLog(c, models.AuditActionCreate, &showroom, nil, showroom, "Galeri eklendi: "+showroom.Name)
		_ = dir.Invalidate(c.Context())

		return c.Status(fiber.StatusCreated).JSON(toResponse(showroom))
	}
}

func ListShowroomsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var showrooms []models.Showroom
		if err := database.DB.Order("created_at DESC").Find(&showrooms).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Galeriler listelenemedi")
		}

		res := make([]ShowroomResponse, 0, len(showrooms))
		for _, s := range showrooms {
			res = append(res, toResponse(s))
		}

		return c.JSON(res)
	}
}

func GetShowroomHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var showroom models.Showroom
		if err := database.DB.First(&showroom, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
		}

		return c.JSON(toResponse(showroom))
	}
}

func UpdateShowroomHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var showroom models.Showroom
		if err := database.DB.First(&showroom, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
		}

		var body UpdateShowroomRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		before := showroom

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Galeri adı boş olamaz")
			}
			showroom.Name = name
		}

		if body.Address != nil {
			showroom.Address = *body.Address
		}

		if body.Managers != nil {
			showroom.ManagerName = strings.Join(*body.Managers, ", ")
		}

		if err := database.DB.Save(&showroom).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Galeri güncellenemedi")
		}

		writeLog(c, models.AuditActionUpdate, &showroom, before, showroom, "Galeri güncellendi: "+showroom.Name)
		_ = dir.Invalidate(c.Context())

		return c.JSON(toResponse(showroom))
	}
}

func DeleteShowroomHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var showroom models.Showroom
		if err := database.DB.First(&showroom, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
		}

		if err := database.DB.Delete(&showroom).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Galeri silinemedi")
		}

		writeLog(c, models.AuditActionDelete, &showroom, showroom, nil, "Galeri silindi: "+showroom.Name)
		_ = dir.Invalidate(c.Context())

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func toResponse(s models.Showroom) ShowroomResponse {
	return ShowroomResponse{
		ID:            s.ID,
		Name:          s.Name,
		ManagerName:   s.ManagerName,
		Address:       s.Address,
		EmployeeCount: s.EmployeeCount,
		CreatedAt:     s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
