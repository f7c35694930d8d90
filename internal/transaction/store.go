package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row - beş kayıt tablosunun ortak kolon düzeni.
type Row struct {
	ID          uint
	Amount      float64
	Description string
	EmployeeID  *uuid.UUID
	ShowroomID  *uuid.UUID
	CreatedAt   time.Time
}

// Query - tablo sorgusuna itilen eşitlik filtreleri.
type Query struct {
	EmployeeID *uuid.UUID
	ShowroomID *uuid.UUID
}

// Store - tür başına okuma/yazma kapasitesi. Testlerde bellek içi, üretimde
// GORM implementasyonu kullanılır.
type Store interface {
	List(ctx context.Context, kind Kind, q Query) ([]Row, error)
	Insert(ctx context.Context, kind Kind, row *Row) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context, kind Kind, q Query) ([]Row, error) {
	tbl, ok := kindTables[kind]
	if !ok {
		return nil, fmt.Errorf("bilinmeyen işlem türü: %s", kind)
	}

	dbq := s.db.WithContext(ctx).Table(tbl)
	if q.EmployeeID != nil {
		dbq = dbq.Where("employee_id = ?", *q.EmployeeID)
	}
	if q.ShowroomID != nil {
		dbq = dbq.Where("showroom_id = ?", *q.ShowroomID)
	}

	var rows []Row
	// id DESC ikincil anahtar: eşit tarihli kayıtlarda sıralama deterministik kalır
	if err := dbq.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Insert(ctx context.Context, kind Kind, row *Row) error {
	tbl, ok := kindTables[kind]
	if !ok {
		return fmt.Errorf("bilinmeyen işlem türü: %s", kind)
	}
	return s.db.WithContext(ctx).Table(tbl).Create(row).Error
}
