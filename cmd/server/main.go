package main

import (
	"context"
	"log"
	"strings"

	"galeri-backend/internal/audit"
	"galeri-backend/internal/auth"
	"galeri-backend/internal/config"
	"galeri-backend/internal/database"
	"galeri-backend/internal/directory"
	"galeri-backend/internal/employee"
	"galeri-backend/internal/financial"
	"galeri-backend/internal/models"
	"galeri-backend/internal/permission"
	"galeri-backend/internal/showroom"
	"galeri-backend/internal/transaction"
	"galeri-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Directory cache: Redis tanımlıysa onu kullan, yoksa noop
	var dirCache directory.Cache = directory.NoopCache{}
	if cfg.RedisAddr != "" {
		rc := directory.NewRedisCache(cfg.RedisAddr)
		if err := rc.Ping(context.Background()); err != nil {
			log.Printf("[WARN] Redis'e bağlanılamadı (%v), directory cache devre dışı", err)
		} else {
			dirCache = rc
		}
	}
	dir := directory.New(database.DB, dirCache)

	txStore := transaction.NewGormStore(database.DB)
	txService := transaction.NewService(txStore, dir)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-owner", auth.RegisterOwnerHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Kullanıcı yönetimi
	protected.Post("/users", permission.Require(permission.ManageEmployees), user.CreateUserHandler(dir))
	protected.Get("/users", auth.RequireRole(models.RoleOwner), user.ListUsersHandler())

	// Yetki yönetimi (yalnızca sahip)
	protected.Post("/permissions", auth.RequireRole(models.RoleOwner), permission.GrantPermissionHandler())
	protected.Get("/permissions", auth.RequireRole(models.RoleOwner), permission.ListPermissionsHandler())

	// Galeri yönetimi
	protected.Post("/showrooms", permission.Require(permission.ManageShowrooms), showroom.CreateShowroomHandler(dir))
	protected.Get("/showrooms", showroom.ListShowroomsHandler())
	protected.Get("/showrooms/:id", showroom.GetShowroomHandler())
	protected.Put("/showrooms/:id", permission.Require(permission.ManageShowrooms), showroom.UpdateShowroomHandler(dir))
	protected.Delete("/showrooms/:id", permission.Require(permission.ManageShowrooms), showroom.DeleteShowroomHandler(dir))

	// Çalışan yönetimi
	protected.Post("/employees", permission.Require(permission.ManageEmployees), employee.CreateEmployeeHandler(dir))
	protected.Get("/employees", employee.ListEmployeesHandler())
	protected.Get("/employees/:id", employee.GetEmployeeHandler())
	protected.Put("/employees/:id", permission.Require(permission.ManageEmployees), employee.UpdateEmployeeHandler(dir))
	protected.Delete("/employees/:id", permission.Require(permission.ManageEmployees), employee.DeleteEmployeeHandler(dir))

	// Çalışanın kendi kayıtları
	protected.Get("/my/sales", employee.MySalesHandler())
	protected.Get("/my/salary-records", employee.MySalaryRecordsHandler())

	// Finansal işlemler (beş tür tek uçtan)
	protected.Get("/transactions", permission.Require(permission.ViewFinancials), transaction.ListTransactionsHandler(txService))
	protected.Post("/transactions", permission.Require(permission.ManageFinancials), transaction.CreateTransactionHandler(txService))
	protected.Get("/transactions/export", permission.Require(permission.ViewFinancials), transaction.ExportTransactionsHandler(txService))

	// Aylık finansal özet
	protected.Get("/financial-summary/monthly", permission.Require(permission.ViewFinancials), financial.MonthlyFinancialSummaryHandler())

	// Audit logs
	protected.Get("/audit-logs", permission.Require(permission.ViewFinancials), audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
