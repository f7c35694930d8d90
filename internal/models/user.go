package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleOwner      UserRole = "owner"      // galeri sahibi
	RoleAccountant UserRole = "accountant" // muhasebeci
	RoleManager    UserRole = "manager"    // galeri müdürü
	RoleEmployee   UserRole = "employee"   // çalışan
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         UserRole  `gorm:"size:20;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
