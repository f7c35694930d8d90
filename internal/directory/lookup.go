package directory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	snapshotKey = "directory:snapshot"
	snapshotTTL = 5 * time.Minute
)

// EmployeeEntry - çalışanın görüntülenecek adı ve bağlı olduğu galeri.
type EmployeeEntry struct {
	Name       string    `json:"name"`
	ShowroomID uuid.UUID `json:"showroom_id"`
}

// Snapshot - id -> ad eşlemelerinin tamamı. Bilinmeyen id hata değildir;
// map'te bulunmayan id çağıran tarafta yer tutucuya düşer.
type Snapshot struct {
	Employees map[uuid.UUID]EmployeeEntry `json:"employees"`
	Showrooms map[uuid.UUID]string        `json:"showrooms"`
}

// Lookup - salt okunur ad çözümleme sözleşmesi.
type Lookup interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Directory - çalışan/galeri adlarını veritabanından okuyup cache'leyen
// Lookup implementasyonu. Cache'in sahibi çağırandır; çalışan/galeri yazan
// her yol Invalidate çağırır, modül seviyesinde kendiliğinden tazelenen bir
// store yoktur.
type Directory struct {
	db    *gorm.DB
	cache Cache
}

func New(db *gorm.DB, cache Cache) *Directory {
	return &Directory{db: db, cache: cache}
}

func (d *Directory) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok, err := d.cache.Get(ctx, snapshotKey); err == nil && ok {
		return snap, nil
	}

	type empRow struct {
		ID         uuid.UUID
		Name       string
		ShowroomID uuid.UUID
	}
	var emps []empRow
	if err := d.db.WithContext(ctx).
		Table("employees").
		Select("id, name, showroom_id").
		Find(&emps).Error; err != nil {
		return nil, err
	}

	type srRow struct {
		ID   uuid.UUID
		Name string
	}
	var srs []srRow
	if err := d.db.WithContext(ctx).
		Table("showrooms").
		Select("id, name").
		Find(&srs).Error; err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Employees: make(map[uuid.UUID]EmployeeEntry, len(emps)),
		Showrooms: make(map[uuid.UUID]string, len(srs)),
	}
	for _, e := range emps {
		snap.Employees[e.ID] = EmployeeEntry{Name: e.Name, ShowroomID: e.ShowroomID}
	}
	for _, s := range srs {
		snap.Showrooms[s.ID] = s.Name
	}

	// Cache yazım hatası okumayı bozmaz, snapshot yine döner
	_ = d.cache.Set(ctx, snapshotKey, snap, snapshotTTL)

	return snap, nil
}

// Invalidate - çalışan/galeri yazma yollarından çağrılır.
func (d *Directory) Invalidate(ctx context.Context) error {
	return d.cache.Delete(ctx, snapshotKey)
}
