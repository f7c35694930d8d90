package transaction

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"galeri-backend/internal/directory"

	"github.com/google/uuid"
)

// memStore - testler için bellek içi Store.
type memStore struct {
	mu          sync.Mutex
	rows        map[Kind][]Row
	nextID      map[Kind]uint
	insertCalls int
}

func newMemStore() *memStore {
	return &memStore{
		rows:   make(map[Kind][]Row),
		nextID: make(map[Kind]uint),
	}
}

func (s *memStore) List(_ context.Context, kind Kind, q Query) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Row
	for _, r := range s.rows[kind] {
		if q.EmployeeID != nil && (r.EmployeeID == nil || *r.EmployeeID != *q.EmployeeID) {
			continue
		}
		if q.ShowroomID != nil && (r.ShowroomID == nil || *r.ShowroomID != *q.ShowroomID) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memStore) Insert(_ context.Context, kind Kind, row *Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertCalls++
	s.nextID[kind]++
	row.ID = s.nextID[kind]
	s.rows[kind] = append(s.rows[kind], *row)
	return nil
}

func (s *memStore) seed(kind Kind, row Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID[kind]++
	row.ID = s.nextID[kind]
	s.rows[kind] = append(s.rows[kind], row)
}

// fakeLookup - sabit snapshot dönen Lookup.
type fakeLookup struct {
	snap directory.Snapshot
}

func (f *fakeLookup) Snapshot(_ context.Context) (*directory.Snapshot, error) {
	return &f.snap, nil
}

var (
	empAli     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	empUnknown = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	srMerkez   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	srSahil    = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func newTestService(store *memStore) *Service {
	lookup := &fakeLookup{
		snap: directory.Snapshot{
			Employees: map[uuid.UUID]directory.EmployeeEntry{
				empAli: {Name: "Ali Kaya", ShowroomID: srMerkez},
			},
			Showrooms: map[uuid.UUID]string{
				srMerkez: "Merkez Galeri",
				srSahil:  "Sahil Galeri",
			},
		},
	}
	return NewService(store, lookup)
}

func at(daysAgo int) time.Time {
	return time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
}

func TestListSingleKindReturnsOnlyThatKind(t *testing.T) {
	store := newMemStore()
	store.seed(KindSalary, Row{Amount: 1000, EmployeeID: &empAli, CreatedAt: at(3)})
	store.seed(KindSales, Row{Amount: 50000, EmployeeID: &empAli, CreatedAt: at(1)})
	store.seed(KindDeduction, Row{Amount: 200, EmployeeID: &empAli, CreatedAt: at(2)})

	svc := newTestService(store)
	kind := KindSales
	records, err := svc.List(context.Background(), Filter{Kind: &kind})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Kind != KindSales {
		t.Fatalf("expected kind sales, got %s", records[0].Kind)
	}
	if records[0].Amount != 50000 {
		t.Fatalf("expected amount 50000, got %f", records[0].Amount)
	}
}

func TestListMergedSortedDescending(t *testing.T) {
	store := newMemStore()
	store.seed(KindSalary, Row{Amount: 1000, CreatedAt: at(5)})
	store.seed(KindSales, Row{Amount: 50000, CreatedAt: at(1)})
	store.seed(KindCustody, Row{Amount: 300, CreatedAt: at(4)})
	store.seed(KindExpense, Row{Amount: 700, CreatedAt: at(2)})
	store.seed(KindDeduction, Row{Amount: 150, CreatedAt: at(3)})

	svc := newTestService(store)
	records, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatalf("records not sorted descending at index %d", i)
		}
	}
	if records[0].Kind != KindSales {
		t.Fatalf("expected most recent record to be sales, got %s", records[0].Kind)
	}
}

func TestListFiltersByEmployeeAndShowroom(t *testing.T) {
	store := newMemStore()
	store.seed(KindSalary, Row{Amount: 1000, EmployeeID: &empAli, ShowroomID: &srMerkez, CreatedAt: at(1)})
	store.seed(KindSalary, Row{Amount: 2000, EmployeeID: &empUnknown, ShowroomID: &srSahil, CreatedAt: at(2)})
	store.seed(KindExpense, Row{Amount: 500, ShowroomID: &srSahil, CreatedAt: at(1)})

	svc := newTestService(store)

	records, err := svc.List(context.Background(), Filter{EmployeeID: &empAli})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 || records[0].Amount != 1000 {
		t.Fatalf("employee filter returned wrong rows: %+v", records)
	}

	records, err = svc.List(context.Background(), Filter{ShowroomID: &srSahil})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for showroom filter, got %d", len(records))
	}
	for _, r := range records {
		if r.ShowroomID == nil || *r.ShowroomID != srSahil {
			t.Fatalf("record outside showroom filter: %+v", r)
		}
	}
}

func TestListExpenseWithoutEmployeeRef(t *testing.T) {
	store := newMemStore()
	store.seed(KindExpense, Row{Amount: 750, Description: "elektrik", ShowroomID: &srMerkez, CreatedAt: at(1)})

	svc := newTestService(store)
	kind := KindExpense
	records, err := svc.List(context.Background(), Filter{Kind: &kind})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(records))
	}
	if records[0].EmployeeID != nil {
		t.Fatalf("expected nil employee ref")
	}
	if records[0].EmployeeName != NamePlaceholder {
		t.Fatalf("expected placeholder employee name, got %q", records[0].EmployeeName)
	}
	if records[0].ShowroomName != "Merkez Galeri" {
		t.Fatalf("expected resolved showroom name, got %q", records[0].ShowroomName)
	}
}

func TestListIdempotent(t *testing.T) {
	store := newMemStore()
	store.seed(KindSalary, Row{Amount: 1000, EmployeeID: &empAli, CreatedAt: at(2)})
	store.seed(KindSales, Row{Amount: 90000, EmployeeID: &empAli, ShowroomID: &srMerkez, CreatedAt: at(1)})

	svc := newTestService(store)
	first, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	second, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results from repeated list")
	}
}

func TestCreateSetsFields(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	before := time.Now()
	rec, err := svc.Create(context.Background(), CreateInput{
		Kind:        "sales",
		Amount:      500,
		Description: "araç satışı",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if rec.Kind != KindSales {
		t.Fatalf("expected kind sales, got %s", rec.Kind)
	}
	if rec.Amount != 500 {
		t.Fatalf("expected amount 500, got %f", rec.Amount)
	}
	if rec.CreatedAt.Before(before) {
		t.Fatalf("created_at earlier than call time")
	}
}

func TestCreateUnknownKindRejected(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), CreateInput{Kind: "unknown", Amount: 10})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if store.insertCalls != 0 {
		t.Fatalf("expected no insert, got %d", store.insertCalls)
	}
}

func TestCreateNonPositiveAmountRejected(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	for _, amount := range []float64{-5, 0} {
		_, err := svc.Create(context.Background(), CreateInput{Kind: "salary", Amount: amount})
		if err == nil {
			t.Fatalf("expected error for amount %f", amount)
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Fatalf("expected ValidationError, got %T", err)
		}
	}
	if store.insertCalls != 0 {
		t.Fatalf("expected no insert, got %d", store.insertCalls)
	}
}

func TestCreateThenListFirst(t *testing.T) {
	store := newMemStore()
	store.seed(KindSalary, Row{Amount: 800, EmployeeID: &empAli, CreatedAt: at(10)})

	svc := newTestService(store)
	created, err := svc.Create(context.Background(), CreateInput{
		Kind:       "salary",
		Amount:     1000,
		EmployeeID: &empAli,
		ShowroomID: &srMerkez,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	kind := KindSalary
	records, err := svc.List(context.Background(), Filter{Kind: &kind})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != created.ID || records[0].Amount != 1000 {
		t.Fatalf("expected new record first, got %+v", records[0])
	}
}

func TestEnrichmentPlaceholderUnknownEmployee(t *testing.T) {
	store := newMemStore()
	store.seed(KindDeduction, Row{Amount: 250, EmployeeID: &empUnknown, CreatedAt: at(1)})

	svc := newTestService(store)
	records, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].EmployeeName != NamePlaceholder {
		t.Fatalf("expected placeholder, got %q", records[0].EmployeeName)
	}
	if records[0].ShowroomName != NamePlaceholder {
		t.Fatalf("expected placeholder showroom, got %q", records[0].ShowroomName)
	}
}

func TestShowroomFallbackFromEmployee(t *testing.T) {
	store := newMemStore()
	// Kaydın kendi galeri referansı yok, çalışanın galerisi gösterilmeli
	store.seed(KindSalary, Row{Amount: 1200, EmployeeID: &empAli, CreatedAt: at(1)})

	svc := newTestService(store)
	records, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].EmployeeName != "Ali Kaya" {
		t.Fatalf("expected resolved employee name, got %q", records[0].EmployeeName)
	}
	if records[0].ShowroomName != "Merkez Galeri" {
		t.Fatalf("expected employee's showroom as fallback, got %q", records[0].ShowroomName)
	}
	if records[0].ShowroomID != nil {
		t.Fatalf("record's own showroom ref should stay nil")
	}
}
