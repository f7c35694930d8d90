package database

import (
	"log"

	"galeri-backend/internal/config"
	"galeri-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// Expense migration: employee_id kolonu sonradan eklendi (AutoMigrate'ten ÖNCE kontrol).
	// Eski kurulumlarda gider kayıtları çalışana doğrudan bağlı değildi; artık beş
	// kayıt tablosu da aynı şemayı kullanıyor.
	if DB.Migrator().HasTable(&models.Expense{}) {
		if !DB.Migrator().HasColumn(&models.Expense{}, "employee_id") {
			log.Println("expenses.employee_id kolonu ekleniyor...")
			if err := DB.Exec("ALTER TABLE expenses ADD COLUMN employee_id UUID").Error; err != nil {
				log.Printf("employee_id kolonu eklenirken hata (zaten var olabilir): %v", err)
			} else {
				DB.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_employee_id ON expenses(employee_id)")
				log.Println("expenses.employee_id kolonu eklendi")
			}
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Showroom{},
		&models.Employee{},
		&models.Permission{},
		// Finansal kayıt tabloları (işlem türü başına bir tablo)
		&models.SalaryRecord{},
		&models.Sale{},
		&models.AdvancePayment{},
		&models.Expense{},
		&models.Deduction{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
