package permission

import (
	"galeri-backend/internal/auth"
	"galeri-backend/internal/database"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Grant - bir rota için istenen yetki.
type Grant string

const (
	ManageEmployees  Grant = "manage_employees"
	ViewFinancials   Grant = "view_financials"
	ManageFinancials Grant = "manage_financials"
	ManageShowrooms  Grant = "manage_showrooms"
)

// Can - kullanıcının istenen yetkiye sahip olup olmadığı. Sahip her şeyi
// yapabilir, müdür günlük finansal işleri yürütür, muhasebeci sahibin
// verdiği grant'lere bakar, çalışan hiçbirine sahip değildir (kendi
// kayıtlarını /my rotalarından görür).
func Can(userID uuid.UUID, role models.UserRole, g Grant) bool {
	switch role {
	case models.RoleOwner:
		return true
	case models.RoleManager:
		return g == ViewFinancials || g == ManageFinancials
	case models.RoleAccountant:
		var p models.Permission
		if err := database.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
			return false
		}
		switch g {
		case ManageEmployees:
			return p.CanManageEmployees
		case ViewFinancials:
			return p.CanViewFinancials || p.CanManageFinancials
		case ManageFinancials:
			return p.CanManageFinancials
		case ManageShowrooms:
			return p.CanManageShowrooms
		}
		return false
	default:
		return false
	}
}

// Require - rota seviyesinde yetki kontrolü.
func Require(g Grant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(auth.CtxUserIDKey).(uuid.UUID)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
		}
		role, ok := c.Locals(auth.CtxUserRoleKey).(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		if !Can(userID, role, g) {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
		}
		return c.Next()
	}
}
