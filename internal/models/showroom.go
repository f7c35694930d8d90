package models

import (
	"time"

	"github.com/google/uuid"
)

type Showroom struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null;unique"`
	ManagerName   string    `gorm:"size:255"` // Sorumlu müdür(ler), virgülle ayrılmış
	Address       string    `gorm:"size:255"`
	EmployeeCount int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Employees []Employee
}
