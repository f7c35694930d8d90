package transaction

import (
	"context"
	"sort"
	"time"

	"galeri-backend/internal/directory"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NamePlaceholder - çözümlenemeyen çalışan/galeri adları için gösterilen değer.
const NamePlaceholder = "—"

// Filter - listeleme filtreleri. Kind nil ise beş tür birden okunur.
type Filter struct {
	Kind       *Kind
	EmployeeID *uuid.UUID
	ShowroomID *uuid.UUID
}

// Record - tür etiketi ve çözülmüş adlarla zenginleştirilmiş kayıt.
type Record struct {
	ID           uint       `json:"id"`
	Kind         Kind       `json:"type"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	EmployeeID   *uuid.UUID `json:"employee_id"`
	ShowroomID   *uuid.UUID `json:"showroom_id"`
	EmployeeName string     `json:"employee_name"`
	ShowroomName string     `json:"showroom_name"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateInput - yeni işlem girdisi. Kind ham literal olarak gelir, Create
// içinde doğrulanır.
type CreateInput struct {
	Kind        string
	Amount      float64
	Description string
	EmployeeID  *uuid.UUID
	ShowroomID  *uuid.UUID
}

type Service struct {
	store Store
	dir   directory.Lookup
}

func NewService(store Store, dir directory.Lookup) *Service {
	return &Service{store: store, dir: dir}
}

// List - filtreye uyan kayıtları adlarıyla birlikte, tarihe göre azalan
// sırada döner. Tek tür istendiyse o türün listesi doğrudan döner; tür
// filtresi yoksa beş tablo paralel okunur, sonuç birleştirilip yeniden
// sıralanır. Herhangi bir tablo okuması başarısız olursa kısmi sonuç
// dönülmez, çağrı bütünüyle hata verir.
func (s *Service) List(ctx context.Context, f Filter) ([]Record, error) {
	snap, err := s.dir.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	q := Query{EmployeeID: f.EmployeeID, ShowroomID: f.ShowroomID}

	if f.Kind != nil {
		rows, err := s.store.List(ctx, *f.Kind, q)
		if err != nil {
			return nil, err
		}
		return s.enrichAll(*f.Kind, rows, snap), nil
	}

	// Beş tablo bağımsız, paralel okunabilir; birleştirme hepsi bittikten sonra
	perKind := make([][]Row, len(Kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, k := range Kinds {
		g.Go(func() error {
			rows, err := s.store.List(gctx, k, q)
			if err != nil {
				return err
			}
			perKind[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Record
	for i, k := range Kinds {
		all = append(all, s.enrichAll(k, perKind[i], snap)...)
	}

	// Kararlı sıralama: eşit tarihli kayıtlarda tablo okuma sırası korunur
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

// Create - girdiyi doğrular, türün tablosuna tek satır ekler ve eklenen
// kaydın zenginleştirilmiş halini döner. Doğrulama hatası *ValidationError,
// store hatası olduğu gibi döner; tekrar deneme yapılmaz.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Record, error) {
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, &ValidationError{Msg: "Tutar 0'dan büyük olmalı"}
	}

	row := Row{
		Amount:      in.Amount,
		Description: in.Description,
		EmployeeID:  in.EmployeeID,
		ShowroomID:  in.ShowroomID,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Insert(ctx, kind, &row); err != nil {
		return nil, err
	}

	// Zenginleştirme burada en iyi gayret: snapshot alınamazsa kayıt yine
	// oluşmuştur, adlar yer tutucuyla döner
	snap, err := s.dir.Snapshot(ctx)
	if err != nil {
		snap = &directory.Snapshot{}
	}
	rec := s.enrich(kind, row, snap)
	return &rec, nil
}

func (s *Service) enrichAll(kind Kind, rows []Row, snap *directory.Snapshot) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.enrich(kind, r, snap))
	}
	return out
}

// enrich - tür etiketini iliştirir, çalışan ve galeri adlarını çözer.
// Çözülemeyen referanslar hata değildir, yer tutucuya düşer. Kaydın galeri
// referansı yoksa çalışanın bağlı olduğu galeri gösterilir.
func (s *Service) enrich(kind Kind, r Row, snap *directory.Snapshot) Record {
	employeeName := NamePlaceholder
	showroomName := NamePlaceholder

	var fallbackShowroom *uuid.UUID
	if r.EmployeeID != nil {
		if e, ok := snap.Employees[*r.EmployeeID]; ok {
			employeeName = e.Name
			sid := e.ShowroomID
			fallbackShowroom = &sid
		}
	}

	showroomID := r.ShowroomID
	if showroomID == nil {
		showroomID = fallbackShowroom
	}
	if showroomID != nil {
		if name, ok := snap.Showrooms[*showroomID]; ok {
			showroomName = name
		}
	}

	return Record{
		ID:           r.ID,
		Kind:         kind,
		Amount:       r.Amount,
		Description:  r.Description,
		EmployeeID:   r.EmployeeID,
		ShowroomID:   r.ShowroomID,
		EmployeeName: employeeName,
		ShowroomName: showroomName,
		CreatedAt:    r.CreatedAt,
	}
}
