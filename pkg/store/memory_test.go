package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/orgflow/pkg/chart"
)

func record(id, name string, updated time.Time) *Record {
	c := chart.New()
	c.Name = name
	return &Record{
		ID:        id,
		Name:      name,
		CreatedAt: updated.Add(-time.Hour),
		UpdatedAt: updated,
		Chart:     c,
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Now()
	if err := s.Put(ctx, record("a", "Org A", now)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Org A" {
		t.Errorf("Name = %q, want %q", got.Name, "Org A")
	}
	if got.Chart == nil {
		t.Fatal("Chart is nil")
	}

	// Replace under the same ID.
	if err := s.Put(ctx, record("a", "Org A v2", now.Add(time.Minute))); err != nil {
		t.Fatalf("Put() replace error = %v", err)
	}
	got, err = s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get() after replace error = %v", err)
	}
	if got.Name != "Org A v2" {
		t.Errorf("Name after replace = %q, want %q", got.Name, "Org A v2")
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	for _, rec := range []*Record{
		record("old", "Old", base.Add(-2*time.Hour)),
		record("new", "New", base),
		record("mid", "Mid", base.Add(-time.Hour)),
	} {
		if err := s.Put(ctx, rec); err != nil {
			t.Fatalf("Put(%s) error = %v", rec.ID, err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"new", "mid", "old"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d records, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := record("a", "Org A", time.Now())
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Mutating the caller's record must not affect the stored copy.
	rec.Name = "mutated"
	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Org A" {
		t.Errorf("Name = %q, want %q (store should copy records)", got.Name, "Org A")
	}
}
