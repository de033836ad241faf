package operation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Catalog manages a collection of operations with thread-safe operations.
// Names are normalized to lowercase, so resolution is case-insensitive.
//
// By default registering a name that is already bound replaces the prior
// binding (last write wins). A catalog built with [WithRejectDuplicates]
// instead fails such registrations with [ErrDuplicateOperation]. The policy
// is fixed at construction and applies to Register and Merge alike.
type Catalog struct {
	mu     sync.RWMutex
	ops    map[string]Binary
	strict bool
}

// CatalogOption configures a catalog at construction time.
type CatalogOption func(*Catalog)

// WithRejectDuplicates makes Register fail with [ErrDuplicateOperation] when
// the name is already bound, instead of replacing the prior binding.
func WithRejectDuplicates() CatalogOption {
	return func(c *Catalog) {
		c.strict = true
	}
}

// NewCatalog creates a new empty operation catalog.
func NewCatalog(options ...CatalogOption) *Catalog {
	catalog := &Catalog{
		ops: make(map[string]Binary),
	}
	for _, option := range options {
		option(catalog)
	}
	return catalog
}

// NewCatalogWithOperations creates a catalog pre-populated with the given
// operations, using the default replace policy. Names are taken from each
// operation's OperationInfo().Name.
func NewCatalogWithOperations(ops ...Binary) *Catalog {
	catalog := NewCatalog()
	// A fresh catalog cannot collide, so the error is impossible here unless
	// an operation reports an empty name; surface that loudly.
	if err := catalog.Register(ops...); err != nil {
		panic(err)
	}
	return catalog
}

// Register adds the given operations to the catalog, keyed by their
// lowercased canonical name. An operation reporting an empty name is
// rejected. Under the default policy an existing binding is replaced; under
// [WithRejectDuplicates] the call fails with [ErrDuplicateOperation] and the
// catalog is left unchanged.
func (c *Catalog) Register(ops ...Binary) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Validate the whole batch before touching the map so a failed call has
	// no partial effect.
	keys := make([]string, len(ops))
	for i, op := range ops {
		name := strings.ToLower(strings.TrimSpace(op.OperationInfo().Name))
		if name == "" {
			return fmt.Errorf("calcgo: cannot register operation with empty name")
		}
		if c.strict {
			if _, exists := c.ops[name]; exists {
				return fmt.Errorf("%w: %q", ErrDuplicateOperation, name)
			}
		}
		keys[i] = name
	}

	for i, op := range ops {
		c.ops[keys[i]] = op
	}
	return nil
}

// Resolve retrieves an operation by name (case-insensitive).
// Returns an error wrapping [ErrUnknownOperation] when the name is not bound.
func (c *Catalog) Resolve(name string) (Binary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	op, exists := c.ops[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// ResolveSymbol retrieves an operation by its display symbol, e.g. "+" for
// suma. Symbols are advisory metadata, so this is a linear scan; it exists
// for interactive callers such as the eval command. Returns an error wrapping
// [ErrUnknownOperation] when no operation advertises the symbol.
func (c *Catalog) ResolveSymbol(symbol string) (Binary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, op := range c.ops {
		if info := op.OperationInfo(); info.Symbol != "" && info.Symbol == symbol {
			return op, nil
		}
	}
	return nil, fmt.Errorf("%w: symbol %q", ErrUnknownOperation, symbol)
}

// Has reports whether an operation with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.ops[strings.ToLower(name)]
	return exists
}

// Names returns the sorted set of canonical operation names currently bound.
// Different catalogs advertise different sets; nothing forces one catalog to
// carry another's operations.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of operations in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ops)
}

// Remove removes an operation from the catalog by name (case-insensitive).
// Returns true if the operation was found and removed, false otherwise.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	lowerName := strings.ToLower(name)
	if _, exists := c.ops[lowerName]; exists {
		delete(c.ops, lowerName)
		return true
	}
	return false
}

// Merge registers all operations from another catalog into this one,
// honoring this catalog's duplicate policy. A nil other is a no-op.
func (c *Catalog) Merge(other *Catalog) error {
	if other == nil {
		return nil
	}

	other.mu.RLock()
	ops := make([]Binary, 0, len(other.ops))
	for _, op := range other.ops {
		ops = append(ops, op)
	}
	other.mu.RUnlock()

	return c.Register(ops...)
}

// Clone creates an independent copy of the catalog carrying the same
// operations and duplicate policy. Mutating the clone does not affect the
// original.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := NewCatalog()
	clone.strict = c.strict
	for name, op := range c.ops {
		clone.ops[name] = op
	}
	return clone
}
