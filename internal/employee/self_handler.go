package employee

import (
	"time"

	"galeri-backend/internal/auth"
	"galeri-backend/internal/database"
	"galeri-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SelfRecordResponse struct {
	ID          uint    `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// selfEmployee - giriş yapan kullanıcıya bağlı çalışan kaydını bulur.
func selfEmployee(c *fiber.Ctx) (*models.Employee, error) {
	userID, ok := c.Locals(auth.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	var emp models.Employee
	if err := database.DB.First(&emp, "user_id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Bu hesaba bağlı çalışan kaydı yok")
	}
	return &emp, nil
}

func listSelfRecords(c *fiber.Ctx, table string, emp *models.Employee) error {
	type row struct {
		ID          uint
		Amount      float64
		Description string
		CreatedAt   time.Time
	}

	var rows []row
	if err := database.DB.
		Table(table).
		Select("id, amount, description, created_at").
		Where("employee_id = ?", emp.ID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi")
	}

	res := make([]SelfRecordResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, SelfRecordResponse{
			ID:          r.ID,
			Amount:      r.Amount,
			Description: r.Description,
			CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(res)
}

// -------------------------------------------------
// GET /api/my/sales - giriş yapan çalışanın satışları
// -------------------------------------------------
func MySalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		emp, err := selfEmployee(c)
		if err != nil {
			return err
		}
		return listSelfRecords(c, "sales", emp)
	}
}

// -------------------------------------------------
// GET /api/my/salary-records - giriş yapan çalışana ödenen maaşlar
// -------------------------------------------------
func MySalaryRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		emp, err := selfEmployee(c)
		if err != nil {
			return err
		}
		return listSelfRecords(c, "salary_records", emp)
	}
}
