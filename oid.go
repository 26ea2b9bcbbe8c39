// Package oid encodes, decodes and slices ASN.1 object identifiers in their
// BER/DER binary form.
//
// An object identifier is a sequence of arcs such as 1.3.6.1.4.1. In binary
// form the first two arcs are packed into one root byte and every following
// arc is a base-128 integer with a continuation bit. Arcs are limited to 32
// bits.
//
// # Core Features
//
//   - Zero-copy views over encoded bytes, validated once at construction
//   - Slicing that never splits an arc, with panics that name the torn arc
//   - Prefix and suffix tests, cutting and in-place overwrite
//   - Dotted-decimal parsing and formatting
//   - DER element framing (tags 0x06 and 0x0D)
//   - Name registry with longest-prefix resolution, keyed by xxHash64
//
// # Basic Usage
//
// Parsing and inspecting an identifier:
//
//	import "github.com/arloliu/oid"
//
//	id, err := oid.Parse("1.3.6.1.4.1.311.21.20")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("% x\n", id.Bytes()) // 2b 06 01 04 01 82 37 15 14
//	for arc := range id.Arcs() {
//	    fmt.Println(arc)
//	}
//
// Decoding bytes received from the wire:
//
//	id, err := oid.FromBytes(data)
//	if errors.Is(err, errs.ErrUnfinishedArc) {
//	    // truncated input
//	}
//
// Naming identifiers:
//
//	reg, _ := oid.NewRegistry()
//	name, rest, _ := reg.Resolve(id) // "enterprises", ".311.21.20"
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The ber
// package holds the view types and every slicing operation, der frames views
// as ASN.1 elements, registry names them, and errs defines the errors.
package oid

import (
	"github.com/arloliu/oid/ber"
	"github.com/arloliu/oid/der"
	"github.com/arloliu/oid/registry"
)

var defaultRegistryOptions = []registry.Option{
	registry.WithWellKnown(),
}

// Parse parses the dotted-decimal form of a whole identifier.
//
// Parameters:
//   - s: text such as "2.5.4.3"; a single leading dot is accepted
//
// Returns:
//   - ber.Absolute: identifier backed by newly allocated storage
//   - error: *errs.ParseError describing the first problem found
func Parse(s string) (ber.Absolute, error) {
	return ber.ParseAbsolute(s)
}

// MustParse is like Parse but panics on invalid input.
// It is intended for package-level variables.
//
// Example:
//
//	var commonName = oid.MustParse("2.5.4.3")
func MustParse(s string) ber.Absolute {
	id, err := ber.ParseAbsolute(s)
	if err != nil {
		panic(err)
	}

	return id
}

// ParseRelative parses the dotted-decimal form ".a.b" of a fragment.
func ParseRelative(s string) (ber.Relative, error) {
	return ber.ParseRelative(s)
}

// FromBytes validates the content octets of an OBJECT IDENTIFIER and wraps
// them without copying.
//
// Returns:
//   - ber.Absolute: view sharing storage with data
//   - error: errs.ErrEmpty, *errs.RootError or *errs.Base128Error
func FromBytes(data []byte) (ber.Absolute, error) {
	return ber.NewAbsolute(data)
}

// FromRelativeBytes validates the content octets of a RELATIVE-OID and wraps
// them without copying.
func FromRelativeBytes(data []byte) (ber.Relative, error) {
	return ber.NewRelative(data)
}

// Marshal returns id as a complete DER OBJECT IDENTIFIER element.
func Marshal(id ber.Absolute) []byte {
	return der.AppendAbsolute(make([]byte, 0, der.Size(id.Len())), id)
}

// Unmarshal decodes a DER OBJECT IDENTIFIER element from the front of data.
//
// Returns:
//   - ber.Absolute: view sharing storage with data
//   - []byte: bytes following the element
//   - error: framing or content error
func Unmarshal(data []byte) (ber.Absolute, []byte, error) {
	return der.ParseAbsolute(data)
}

// NewRegistry creates a registry preloaded with well-known identifiers.
//
// Additional options are applied after the defaults:
//
//	reg, err := oid.NewRegistry(registry.WithCapacity(256))
func NewRegistry(opts ...registry.Option) (*registry.Registry, error) {
	all := make([]registry.Option, 0, len(defaultRegistryOptions)+len(opts))
	all = append(all, defaultRegistryOptions...)
	all = append(all, opts...)

	return registry.New(all...)
}
