package operation

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
)

// mockOperation is a simple mock implementation of Binary for testing
type mockOperation struct {
	name   string
	symbol string
	result float64
}

func (m *mockOperation) OperationInfo() Info {
	return Info{
		Name:        m.name,
		Symbol:      m.symbol,
		Description: "Mock operation for testing",
	}
}

func (m *mockOperation) Apply(ctx context.Context, a, b float64) (float64, error) {
	return m.result, nil
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog == nil {
		t.Fatal("NewCatalog returned nil")
	}
	if catalog.Size() != 0 {
		t.Errorf("New catalog should be empty, got size %d", catalog.Size())
	}
}

func TestNewCatalogWithOperations(t *testing.T) {
	op1 := &mockOperation{name: "op1", result: 1}
	op2 := &mockOperation{name: "op2", result: 2}

	catalog := NewCatalogWithOperations(op1, op2)

	if catalog.Size() != 2 {
		t.Errorf("Expected catalog size 2, got %d", catalog.Size())
	}
	if !catalog.Has("op1") {
		t.Error("Catalog should contain op1")
	}
	if !catalog.Has("op2") {
		t.Error("Catalog should contain op2")
	}
}

func TestCatalog_Register(t *testing.T) {
	catalog := NewCatalog()
	op := &mockOperation{name: "testOp", result: 42}

	if err := catalog.Register(op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog.Size() != 1 {
		t.Errorf("Expected size 1, got %d", catalog.Size())
	}

	retrieved, err := catalog.Resolve("testOp")
	if err != nil {
		t.Fatalf("Operation should exist in catalog: %v", err)
	}
	if retrieved != op {
		t.Error("Resolved operation is not the same as registered operation")
	}
}

func TestCatalog_Register_EmptyName(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Register(&mockOperation{name: "  "}); err == nil {
		t.Fatal("expected error registering an operation with an empty name")
	}
	if catalog.Size() != 0 {
		t.Errorf("Catalog should stay empty after failed registration, got size %d", catalog.Size())
	}
}

func TestCatalog_Register_ReplacesByDefault(t *testing.T) {
	catalog := NewCatalog()
	first := &mockOperation{name: "op", result: 1}
	second := &mockOperation{name: "op", result: 2}

	if err := catalog.Register(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := catalog.Register(second); err != nil {
		t.Fatalf("replace should not fail: %v", err)
	}

	if catalog.Size() != 1 {
		t.Errorf("Expected size 1 after replacement, got %d", catalog.Size())
	}
	resolved, err := catalog.Resolve("op")
	if err != nil {
		t.Fatal(err)
	}
	if resolved != second {
		t.Error("Expected last registration to win")
	}
}

func TestCatalog_Register_RejectDuplicates(t *testing.T) {
	catalog := NewCatalog(WithRejectDuplicates())
	first := &mockOperation{name: "op", result: 1}
	second := &mockOperation{name: "OP", result: 2}

	if err := catalog.Register(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := catalog.Register(second)
	if !errors.Is(err, ErrDuplicateOperation) {
		t.Fatalf("expected ErrDuplicateOperation, got %v", err)
	}

	// Prior binding must be intact.
	resolved, resolveErr := catalog.Resolve("op")
	if resolveErr != nil {
		t.Fatal(resolveErr)
	}
	if resolved != first {
		t.Error("Failed registration must not replace the prior binding")
	}
}

func TestCatalog_Resolve_Unknown(t *testing.T) {
	catalog := NewCatalog()
	_, err := catalog.Resolve("no_existe")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestCatalog_Resolve_CaseInsensitive(t *testing.T) {
	catalog := NewCatalog()
	op := &mockOperation{name: "Suma", result: 15}
	if err := catalog.Register(op); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"suma", "SUMA", "Suma"} {
		if _, err := catalog.Resolve(name); err != nil {
			t.Errorf("Resolve(%q) failed: %v", name, err)
		}
	}
}

func TestCatalog_ResolveSymbol(t *testing.T) {
	catalog := NewCatalog()
	op := &mockOperation{name: "suma", symbol: "+", result: 15}
	if err := catalog.Register(op); err != nil {
		t.Fatal(err)
	}

	resolved, err := catalog.ResolveSymbol("+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != op {
		t.Error("ResolveSymbol returned the wrong operation")
	}

	_, err = catalog.ResolveSymbol("?")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation for unknown symbol, got %v", err)
	}
}

func TestCatalog_Names_Sorted(t *testing.T) {
	catalog := NewCatalog()
	err := catalog.Register(
		&mockOperation{name: "resta"},
		&mockOperation{name: "suma"},
		&mockOperation{name: "division"},
	)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"division", "resta", "suma"}
	if got := catalog.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestCatalog_Remove(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Register(&mockOperation{name: "op"}); err != nil {
		t.Fatal(err)
	}

	if !catalog.Remove("OP") {
		t.Error("Remove should report true for an existing operation")
	}
	if catalog.Remove("op") {
		t.Error("Remove should report false for a missing operation")
	}
	if catalog.Size() != 0 {
		t.Errorf("Expected empty catalog, got size %d", catalog.Size())
	}
}

func TestCatalog_Merge(t *testing.T) {
	dst := NewCatalog()
	if err := dst.Register(&mockOperation{name: "suma"}); err != nil {
		t.Fatal(err)
	}

	src := NewCatalog()
	if err := src.Register(&mockOperation{name: "potencia"}); err != nil {
		t.Fatal(err)
	}

	if err := dst.Merge(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Size() != 2 {
		t.Errorf("Expected size 2, got %d", dst.Size())
	}
	if err := dst.Merge(nil); err != nil {
		t.Errorf("Merging nil should be a no-op, got %v", err)
	}
}

func TestCatalog_Merge_StrictConflict(t *testing.T) {
	dst := NewCatalog(WithRejectDuplicates())
	if err := dst.Register(&mockOperation{name: "suma"}); err != nil {
		t.Fatal(err)
	}

	src := NewCatalog()
	if err := src.Register(&mockOperation{name: "suma"}); err != nil {
		t.Fatal(err)
	}

	if err := dst.Merge(src); !errors.Is(err, ErrDuplicateOperation) {
		t.Fatalf("expected ErrDuplicateOperation, got %v", err)
	}
}

func TestCatalog_Clone_Independent(t *testing.T) {
	original := NewCatalog()
	if err := original.Register(&mockOperation{name: "suma"}); err != nil {
		t.Fatal(err)
	}

	clone := original.Clone()
	if err := clone.Register(&mockOperation{name: "resta"}); err != nil {
		t.Fatal(err)
	}

	if original.Has("resta") {
		t.Error("Mutating the clone must not affect the original")
	}
	if !clone.Has("suma") {
		t.Error("Clone should carry the original's operations")
	}
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		op := &mockOperation{name: "shared"}
		go func() {
			defer wg.Done()
			_ = catalog.Register(op)
		}()
		go func() {
			defer wg.Done()
			_, _ = catalog.Resolve("shared")
			_ = catalog.Names()
		}()
	}
	wg.Wait()

	if !catalog.Has("shared") {
		t.Error("Catalog should contain the operation after concurrent registration")
	}
}
