package inmemory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/calcgo/providers/history"
)

func record(op string, a, b, value float64) history.Record {
	return history.Record{
		ID:          uuid.New(),
		A:           a,
		B:           b,
		Operation:   op,
		Value:       value,
		EvaluatedAt: time.Now(),
	}
}

func TestArrayHistory_AppendAndAll(t *testing.T) {
	store := New()
	ctx := context.Background()

	store.Append(ctx, record("suma", 10, 5, 15))
	store.Append(ctx, record("division", 10, 5, 2))

	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Operation != "suma" || records[1].Operation != "division" {
		t.Errorf("records out of order: %v, %v", records[0].Operation, records[1].Operation)
	}
}

func TestArrayHistory_All_ReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()
	store.Append(ctx, record("suma", 1, 2, 3))

	records, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	records[0].Operation = "mutated"

	fresh, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fresh[0].Operation != "suma" {
		t.Error("mutating a returned slice must not affect the store")
	}
}

func TestArrayHistory_CountAndClear(t *testing.T) {
	store := New()
	ctx := context.Background()

	if n, _ := store.Count(ctx); n != 0 {
		t.Errorf("expected empty store, got %d", n)
	}

	store.Append(ctx, record("suma", 1, 2, 3))
	store.Append(ctx, record("resta", 3, 2, 1))
	if n, _ := store.Count(ctx); n != 2 {
		t.Errorf("expected 2 records, got %d", n)
	}

	store.Clear(ctx)
	if n, _ := store.Count(ctx); n != 0 {
		t.Errorf("expected empty store after clear, got %d", n)
	}
	records, err := store.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after clear, got %d", len(records))
	}
}

func TestArrayHistory_ConcurrentAppend(t *testing.T) {
	store := New()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append(ctx, record("suma", 1, 1, 2))
		}()
	}
	wg.Wait()

	if n, _ := store.Count(ctx); n != 16 {
		t.Errorf("expected 16 records, got %d", n)
	}
}
