package directory

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	var c Cache = NoopCache{}
	ctx := context.Background()

	if err := c.Set(ctx, "k", &Snapshot{}, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("noop cache should never hit")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	empID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	srID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

	// Redis cache snapshot'ı JSON olarak saklar; uuid anahtarlı map'lerin
	// gidiş-dönüşü kayıpsız olmalı
	orig := Snapshot{
		Employees: map[uuid.UUID]EmployeeEntry{
			empID: {Name: "Ali Kaya", ShowroomID: srID},
		},
		Showrooms: map[uuid.UUID]string{
			srID: "Merkez Galeri",
		},
	}

	payload, err := json.Marshal(&orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var again Snapshot
	if err := json.Unmarshal(payload, &again); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(orig, again) {
		t.Fatalf("round trip changed snapshot: %+v vs %+v", orig, again)
	}
}
