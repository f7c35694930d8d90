package user

import (
	"strings"

	"galeri-backend/internal/database"
	"galeri-backend/internal/directory"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"` // accountant | manager | employee
	ShowroomID *string `json:"showroom_id"`
	Salary     float64 `json:"salary"`
}

// -------------------------------------------------
// POST /api/users
// Giriş hesabı açar; showroom_id verilirse çalışan kaydı da oluşturur.
// İkinci bir sahip hesabı bu uçtan açılamaz.
// -------------------------------------------------
func CreateUserHandler(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" || body.Role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email, şifre ve rol zorunlu")
		}

		role := models.UserRole(body.Role)
		switch role {
		case models.RoleAccountant, models.RoleManager, models.RoleEmployee:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol (accountant|manager|employee)")
		}

		// Email kontrolü
		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		usr := models.User{
			ID:           uuid.New(),
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
		}

		if err := database.DB.Create(&usr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		resp := fiber.Map{
			"id":    usr.ID,
			"name":  usr.Name,
			"email": usr.Email,
			"role":  usr.Role,
		}

		// Galeri verildiyse çalışan kaydını da aç
		if body.ShowroomID != nil && *body.ShowroomID != "" {
			showroomID, err := uuid.Parse(*body.ShowroomID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "showroom_id geçersiz")
			}

			var showroom models.Showroom
			if err := database.DB.First(&showroom, "id = ?", showroomID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Galeri bulunamadı")
			}

			emp := models.Employee{
				ID:         uuid.New(),
				UserID:     &usr.ID,
				Name:       usr.Name,
				Role:       string(role),
				ShowroomID: showroomID,
				Salary:     body.Salary,
				IsActive:   true,
			}
			if err := database.DB.Create(&emp).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çalışan kaydı oluşturulamadı")
			}
			database.DB.Model(&showroom).Update("employee_count", showroom.EmployeeCount+1)

			_ = dir.Invalidate(c.Context())
			resp["employee_id"] = emp.ID
		}

		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/users  (yalnızca sahip)
// -------------------------------------------------
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		res := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			res = append(res, fiber.Map{
				"id":         u.ID,
				"name":       u.Name,
				"email":      u.Email,
				"role":       u.Role,
				"is_active":  u.IsActive,
				"created_at": u.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}
