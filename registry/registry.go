// Package registry maps object identifiers to human readable names.
//
// Identifiers are bucketed by their 64-bit xxHash. Two different identifiers
// that share a hash are both kept and told apart with Equal; such a collision
// is recorded and reported by HasCollision.
//
// # Usage
//
//	reg, err := registry.New(registry.WithWellKnown())
//	if err != nil {
//	    return err
//	}
//
//	id, _ := ber.ParseAbsolute("1.3.6.1.4.1.311.21.20")
//	name, rest, ok := reg.Resolve(id)
//	fmt.Println(name, rest, ok) // enterprises .311.21.20 true
//
// A Registry is not safe for concurrent mutation. Concurrent lookups without
// a concurrent Register are safe.
package registry

import (
	"fmt"
	"iter"

	"github.com/arloliu/oid/ber"
	"github.com/arloliu/oid/errs"
	"github.com/arloliu/oid/internal/options"
)

type entry struct {
	name string
	id   ber.Absolute
}

// Registry is a bidirectional name table for identifiers.
type Registry struct {
	entries      []entry          // Registration order
	byHash       map[uint64][]int // Hash → indexes into entries
	byName       map[string]int   // Name → index into entries
	hashFn       func(ber.Absolute) uint64
	hasCollision bool
}

// New creates a registry.
//
// Parameters:
//   - opts: WithCapacity, WithWellKnown
//
// Returns:
//   - *Registry: the new registry
//   - error: option validation error
func New(opts ...Option) (*Registry, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Registry{
		entries: make([]entry, 0, cfg.capacity),
		byHash:  make(map[uint64][]int, cfg.capacity),
		byName:  make(map[string]int, cfg.capacity),
		hashFn:  ber.Absolute.Hash,
	}

	if cfg.wellKnown {
		if err := r.loadWellKnown(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) loadWellKnown() error {
	for _, wk := range wellKnown {
		id, err := ber.ParseAbsolute(wk.text)
		if err != nil {
			return fmt.Errorf("well-known %q: %w", wk.name, err)
		}
		if err := r.Register(wk.name, id); err != nil {
			return err
		}
	}

	return nil
}

// Register adds name for id. The registry stores its own copy of id.
//
// Returns:
//   - error: errs.ErrInvalidName for an empty name, errs.ErrEmpty for the zero
//     Absolute, errs.ErrDuplicateName when name is taken, errs.ErrDuplicateOID
//     when id already has a name
func (r *Registry) Register(name string, id ber.Absolute) error {
	if name == "" {
		return errs.ErrInvalidName
	}
	if id.Len() == 0 {
		return errs.ErrEmpty
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
	}

	h := r.hashFn(id)
	bucket := r.byHash[h]
	for _, i := range bucket {
		if r.entries[i].id.Equal(id) {
			return fmt.Errorf("%w: %s is registered as %q", errs.ErrDuplicateOID, id, r.entries[i].name)
		}
	}
	if len(bucket) > 0 {
		// Different identifier, same hash
		r.hasCollision = true
	}

	idx := len(r.entries)
	r.entries = append(r.entries, entry{name: name, id: id.Clone()})
	r.byHash[h] = append(bucket, idx)
	r.byName[name] = idx

	return nil
}

// Lookup returns the name registered for id.
func (r *Registry) Lookup(id ber.Absolute) (string, bool) {
	for _, i := range r.byHash[r.hashFn(id)] {
		if r.entries[i].id.Equal(id) {
			return r.entries[i].name, true
		}
	}

	return "", false
}

// LookupName returns the identifier registered under name.
// The returned view shares storage with the registry and must not be modified.
func (r *Registry) LookupName(name string) (ber.Absolute, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ber.Absolute{}, false
	}

	return r.entries[i].id, true
}

// Resolve finds the longest registered prefix of id.
//
// Returns:
//   - string: name of the longest registered prefix
//   - ber.Relative: arcs of id after that prefix, sharing storage with id
//   - bool: false when no prefix of id is registered
func (r *Registry) Resolve(id ber.Absolute) (string, ber.Relative, bool) {
	if id.Len() == 0 {
		return "", ber.Relative{}, false
	}
	for cur, ok := id, true; ok; cur, ok = cur.Parent() {
		name, found := r.Lookup(cur)
		if !found {
			continue
		}
		rest, _ := id.CutPrefix(cur)

		return name, rest, true
	}

	return "", ber.Relative{}, false
}

// All returns an iterator over every name and identifier in registration order.
func (r *Registry) All() iter.Seq2[string, ber.Absolute] {
	return func(yield func(string, ber.Absolute) bool) {
		for _, e := range r.entries {
			if !yield(e.name, e.id) {
				return
			}
		}
	}
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// HasCollision reports whether two registered identifiers share a hash.
func (r *Registry) HasCollision() bool {
	return r.hasCollision
}

// Reset removes every entry and clears the collision state, keeping the
// allocated capacity.
func (r *Registry) Reset() {
	clear(r.byHash)
	clear(r.byName)
	r.entries = r.entries[:0]
	r.hasCollision = false
}
