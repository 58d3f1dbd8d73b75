package named

// Type is a strong type over values of the underlying type U. Two Types with the
// same U but different Tag are distinct: neither assignable nor convertible to
// one another.
//
// Tag must be a struct type of zero size, usually a named struct embedding the
// capability markers of the strong type. The tag is a phantom; it is never
// materialised, so a Type takes up exactly the memory of U.
//
// The zero value holds the zero value of U.
type Type[U, Tag any] struct {
	// A zero-length array of Tag makes the underlying struct differ per tag (so
	// conversions between tags are rejected) while occupying zero bytes.
	_     [0]Tag
	value U
}

// Make wraps the given value in a strong type with the given tag; U is deduced
// from the value. It is the most convenient way to wrap values whose type is
// hard to spell out, such as function literals:
//
//	cmp := named.Make[comparatorTag](func(a, b int) bool { return a < b })
//
// Untyped constants are deduced to their default type (e.g., int for 10); use
// From to construct a declared strong type from a constant.
func Make[Tag, U any](value U) Type[U, Tag] {
	return Type[U, Tag]{value: value}
}

// From constructs the strong type T from a value of its underlying type. Its
// type parameters are inferred from T:
//
//	type Meter = named.Type[float64, meterTag]
//	m := named.From[Meter](10) // 10 converts to float64
func From[T ~struct {
	_     [0]Tag
	value U
}, U, Tag any](value U) T {
	return T{value: value}
}

// Get returns a copy of the underlying value.
func (t Type[U, Tag]) Get() U { return t.value }

// Ptr returns a pointer to the underlying value stored in t. Writing through the
// pointer modifies t; the value is never copied.
func (t *Type[U, Tag]) Ptr() *U { return &t.value }

// Set replaces the underlying value.
func (t *Type[U, Tag]) Set(value U) { t.value = value }

// Ref returns a view bound to the storage of t. Mutations through the view are
// visible through t, and vice versa.
func (t *Type[U, Tag]) Ref() Ref[U, Tag] { return Ref[U, Tag]{ptr: &t.value} }
