package employee

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

// writeLog - çalışan yazma yollarının ortak audit kaydı. Log hatası kritik değil.
func writeLog(c *fiber.Ctx, action models.AuditAction, e *models.Employee, before, after any, desc string) {
	userID, userName, err := audit.Actor(c)
	if err != nil {
		return
	}
	if logErr := audit.WriteLog(audit.LogOptions{
		ShowroomID:  &e.ShowroomID,
		UserID:      userID,
		UserName:    userName,
		EntityType:  "employee",
		EntityID:    e.ID.String(),
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	}); logErr != nil {
		fmt.Printf("Audit log yazılamadı: %v\n", logErr)
	}
}

type EmployeeResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	ShowroomID   uuid.UUID  `json:"showroom_id"`
	ShowroomName string     `json:"showroom_name"`
	Salary       float64    `json:"salary"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    string     `json:"created_at"`
}

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	ShowroomID string  `json:"showroom_id"`
	Salary     float64 `json:"salary"`
}

type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Role       *string  `json:"role"`
	ShowroomID *string  `json:"showroom_id"`
	Salary     *float64 `json:"salary"`
	IsActive   *bool    `json:"is_active"`
}

// ----------------------------------------
// ÇALIŞAN CRUD
// ----------------------------------------

func CreateEmployeeHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.ShowroomID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim ve galeri zorunlu")
		}
		if body.Salary < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Maaş negatif olamaz")
		}

		showroomID, err := uuid.Parse(body.ShowroomID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
		}

		var showroom models.Showroom
		if err := database.DB.First(&showroom, "id = ?", showroomID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
		}

		emp := models.Employee{
			ID:         uuid.New(),
			Name:       body.Name,
			Role:       body.Role,
			ShowroomID: showroomID,
			Salary:     body.Salary,
			IsActive:   true,
		}

		if err := database.DB.Create(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan oluşturulamadı")
		}

		database.DB.Model(&showroom).Update("employee_count", showroom.EmployeeCount+1)
		writeLog(c, models.AuditActionCreate, &emp, nil, emp, "Çalışan eklendi: "+emp.Name)
		_ = dir.Invalidate(c.Context())

		return c.Status(fiber.StatusCreated).JSON(toResponse(emp, showroom.Name))
	}
}

func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Employee{})

		if srStr := c.Query("showroom_id"); srStr != "" {
			srID, err := uuid.Parse(srStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}
			dbq = dbq.Where("showroom_id = ?", srID)
		}

		var emps []models.Employee
		if err := dbq.Order("created_at DESC").Find(&emps).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}

		// Galeri adlarını tek sorguda çöz
		var showrooms []models.Showroom
		if err := database.DB.Find(&showrooms).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Galeri bilgileri alınamadı")
		}
		names := make(map[uuid.UUID]string, len(showrooms))
		for _, s := range showrooms {
			names[s.ID] = s.Name
		}

		res := make([]EmployeeResponse, 0, len(emps))
		for _, e := range emps {
			res = append(res, toResponse(e, names[e.ShowroomID]))
		}

		return c.JSON(res)
	}
}

func GetEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		var showroom models.Showroom
		showroomName := ""
		if err := database.DB.First(&showroom, "id = ?", emp.ShowroomID).Error; err == nil {
			showroomName = showroom.Name
		}

		return c.JSON(toResponse(emp, showroomName))
	}
}

func UpdateEmployeeHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		before := emp

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
			}
			emp.Name = name
		}
		if body.Role != nil {
			emp.Role = *body.Role
		}
		if body.ShowroomID != nil {
			srID, err := uuid.Parse(*body.ShowroomID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}
			var showroom models.Showroom
			if err := database.DB.First(&showroom, "id = ?", srID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
			}
			emp.ShowroomID = srID
		}
		if body.Salary != nil {
			if *body.Salary < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Maaş negatif olamaz")
			}
			emp.Salary = *body.Salary
		}
		if body.IsActive != nil {
			emp.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan güncellenemedi")
		}

		writeLog(c, models.AuditActionUpdate, &emp, before, emp, "Çalışan güncellendi: "+emp.Name)
		_ = dir.Invalidate(c.Context())

		var showroom models.Showroom
		showroomName := ""
		if err := database.DB.First(&showroom, "id = ?", emp.ShowroomID).Error; err == nil {
			showroomName = showroom.Name
		}

		return c.JSON(toResponse(emp, showroomName))
	}
}

func DeleteEmployeeHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		if err := database.DB.Delete(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan silinemedi")
		}

		var showroom models.Showroom
		if err := database.DB.First(&showroom, "id = ?", emp.ShowroomID).Error; err == nil && showroom.EmployeeCount > 0 {
			database.DB.Model(&showroom).Update("employee_count", showroom.EmployeeCount-1)
		}

		writeLog(c, models.AuditActionDelete, &emp, emp, nil, "Çalışan silindi: "+emp.Name)
		_ = dir.Invalidate(c.Context())

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func toResponse(e models.Employee, showroomName string) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Name:         e.Name,
		Role:         e.Role,
		ShowroomID:   e.ShowroomID,
		ShowroomName: showroomName,
		Salary:       e.Salary,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
