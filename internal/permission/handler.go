package permission

import (
	"galeri-backend/internal/auth"
	"galeri-backend/internal/database"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GrantPermissionRequest struct {
	UserID              string `json:"user_id"`
	CanManageEmployees  bool   `json:"can_manage_employees"`
	CanViewFinancials   bool   `json:"can_view_financials"`
	CanManageFinancials bool   `json:"can_manage_financials"`
	CanManageShowrooms  bool   `json:"can_manage_showrooms"`
}

type PermissionResponse struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	GrantedBy           uuid.UUID `json:"granted_by"`
	CanManageEmployees  bool      `json:"can_manage_employees"`
	CanViewFinancials   bool      `json:"can_view_financials"`
	CanManageFinancials bool      `json:"can_manage_financials"`
	CanManageShowrooms  bool      `json:"can_manage_showrooms"`
	CreatedAt           string    `json:"created_at"`
}

// -------------------------------------------------
// POST /api/permissions  (yalnızca sahip)
// Aynı kullanıcı için varsa günceller, yoksa oluşturur.
// -------------------------------------------------
func GrantPermissionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		granterID, ok := c.Locals(auth.CtxUserIDKey).(uuid.UUID)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
		}

		var body GrantPermissionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		userID, err := uuid.Parse(body.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "user_id geçersiz")
		}

		var target models.User
		if err := database.DB.First(&target, "id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}
		if target.Role != models.RoleAccountant {
			return fiber.NewError(fiber.StatusBadRequest, "Yetkiler yalnızca muhasebeci hesaplara verilebilir")
		}

		var perm models.Permission
		if err := database.DB.Where("user_id = ?", userID).First(&perm).Error; err != nil {
			perm = models.Permission{
				ID:     uuid.New(),
				UserID: userID,
			}
		}

		perm.GrantedBy = granterID
		perm.CanManageEmployees = body.CanManageEmployees
		perm.CanViewFinancials = body.CanViewFinancials
		perm.CanManageFinancials = body.CanManageFinancials
		perm.CanManageShowrooms = body.CanManageShowrooms

		if err := database.DB.Save(&perm).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yetki kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(perm))
	}
}

// -------------------------------------------------
// GET /api/permissions?user_id=...  (yalnızca sahip)
// -------------------------------------------------
func ListPermissionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Permission{})

		if uidStr := c.Query("user_id"); uidStr != "" {
			uid, err := uuid.Parse(uidStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "user_id geçersiz")
			}
			dbq = dbq.Where("user_id = ?", uid)
		}

		var perms []models.Permission
		if err := dbq.Order("created_at DESC").Find(&perms).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yetkiler listelenemedi")
		}

		res := make([]PermissionResponse, 0, len(perms))
		for _, p := range perms {
			res = append(res, toResponse(p))
		}
		return c.JSON(res)
	}
}

func toResponse(p models.Permission) PermissionResponse {
	return PermissionResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		GrantedBy:           p.GrantedBy,
		CanManageEmployees:  p.CanManageEmployees,
		CanViewFinancials:   p.CanViewFinancials,
		CanManageFinancials: p.CanManageFinancials,
		CanManageShowrooms:  p.CanManageShowrooms,
		CreatedAt:           p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
