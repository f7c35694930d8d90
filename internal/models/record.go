package models

import (
	"time"

	"github.com/google/uuid"
)

// Beş finansal kayıt tablosu aynı kolon düzenini paylaşır; her tablo tek bir
// işlem türünü tutar (tür kolonu yok, tablo adı türü belirler).

// SalaryRecord - Ödenen maaş kayıtları
type SalaryRecord struct {
	ID          uint       `gorm:"primaryKey"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"size:255"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShowroomID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// Sale - Araç satış kayıtları
type Sale struct {
	ID          uint       `gorm:"primaryKey"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"size:255"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShowroomID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// AdvancePayment - Avans / emanet kayıtları (custody)
type AdvancePayment struct {
	ID          uint       `gorm:"primaryKey"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"size:255"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShowroomID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// Expense - Gider kayıtları. employee_id burada da var; showroom üzerinden
// dolaylı bağ kurma yaklaşımı kaldırıldı, beş tablo aynı şemayı kullanır.
type Expense struct {
	ID          uint       `gorm:"primaryKey"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"size:255"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShowroomID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// Deduction - Maaş kesinti kayıtları
type Deduction struct {
	ID          uint       `gorm:"primaryKey"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"size:255"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	ShowroomID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
}
