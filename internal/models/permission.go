package models

import (
	"time"

	"github.com/google/uuid"
)

// Permission - Muhasebeci kullanıcılara sahibin verdiği ek yetkiler
type Permission struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;index;not null"`
	User                 User
	GrantedBy            uuid.UUID `gorm:"type:uuid;not null"` // Yetkiyi veren kullanıcı (sahip)
	CanManageEmployees   bool      `gorm:"not null;default:false"`
	CanViewFinancials    bool      `gorm:"not null;default:false"`
	CanManageFinancials  bool      `gorm:"not null;default:false"`
	CanManageShowrooms   bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
