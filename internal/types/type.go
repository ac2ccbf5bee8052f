// Package types declares the types and symbols of SimpleLang and the
// scope stack used to resolve names. It has no dependency on the checker.
package types

// Type is the interface implemented by all types.
type Type interface {
	// Underlying returns the type a Pending placeholder stands for
	// once it is known; all other types return the receiver.
	Underlying() Type

	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
