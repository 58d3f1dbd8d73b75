// Package named provides strong types; A strong type wraps a value of some
// underlying type U and carries a compile-time tag, such that two strong types
// over the same representation (e.g., a width and a height, both float64) cannot
// be confused with each other.
//
// A strong type is declared by aliasing an instantiation of Type:
//
//	type meterTag struct {
//		named.Addable
//		named.Comparable
//	}
//
//	type Meter = named.Type[float64, meterTag]
//
// The tag is never stored; a Type takes up exactly as much memory as its
// underlying value. The tag also declares the capabilities of the strong type by
// embedding capability markers (see Addable, Comparable, Hashable and others).
// Each capability unlocks a set of generic functions (e.g., Add, Less, Hash)
// whose constraints only accept strong types with the matching marker. Using an
// operation whose capability was not declared fails to compile.
//
// Alongside the owning Type, a Ref is a non-owning view over an existing value
// carrying the same tag, and an Argument is a stateless token that binds values
// to strong types at call sites, similar to keyword arguments.
//
// Go accepts == and map keys on any comparable struct, including a Type whose
// tag lacks Comparable or Hashable. The capcheck package reports such misuse
// statically.
package named
