package named

import "golang.org/x/exp/constraints"

// Converter is implemented by underlying types that know how to convert
// themselves to V.
type Converter[V any] interface {
	Convert() V
}

// Convert converts the strong type t to V using the Convert method of its
// underlying value:
//
//	b := named.Convert[B](strongA)
func Convert[V any, U Converter[V], Tag CanConvertTo[V]](t Type[U, Tag]) V {
	return t.value.Convert()
}

// ConvertFunc converts the strong type t to V using fn, typically a constructor
// of V taking a U.
func ConvertFunc[V, U any, Tag CanConvertTo[V]](t Type[U, Tag], fn func(U) V) V {
	return fn(t.value)
}

// Real is the set of underlying types between which Go converts numerically.
type Real interface {
	constraints.Integer | constraints.Float
}

// ConvertNumber converts the strong type t to V with Go's numeric conversion
// V(u), truncating or rounding exactly as the conversion does:
//
//	type sampleTag struct{ named.ConvertibleTo[int64] }
//	wide := named.ConvertNumber[int64](named.Make[sampleTag](int32(7)))
func ConvertNumber[V, U Real, Tag CanConvertTo[V]](t Type[U, Tag]) V {
	return V(t.value)
}

// Unwrap returns the underlying value of a strong type whose tag embeds
// ConvertibleTo[U]; that is, a strong type that converts to its own underlying
// type.
func Unwrap[U any, Tag CanConvertTo[U]](t Type[U, Tag]) U {
	return t.value
}
