package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"` // Giriş hesabı olmayan çalışanlar için null
	User       *User
	Name       string    `gorm:"size:100;not null"`
	Role       string    `gorm:"size:50;not null"` // Serbest metin: "satış danışmanı", "muhasebe" vs.
	ShowroomID uuid.UUID `gorm:"type:uuid;index;not null"`
	Showroom   Showroom
	Salary     float64 `gorm:"not null"`
	IsActive   bool    `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
