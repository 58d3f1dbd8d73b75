package named

// Ref is a non-owning view over an existing value of type U, carrying the same
// tag as Type[U, Tag]. A Ref never owns storage; it aliases either a raw U (see
// RefTo) or the storage of a Type (see Type.Ref).
//
// A Ref must not be used after the storage it refers to is no longer in use.
// The zero Ref refers to nothing and panics on access, as would a nil pointer.
//
// References compare with == by address, whatever their tag declares; use
// EqualRef and CompareRef to compare the referenced values.
//
// A function taking a Ref accepts both raw values and existing strong-typed
// values without copying them:
//
//	type IntRef = named.Ref[int, strongIntTag]
//	addOne := func(r IntRef) { *r.Ptr()++ }
//
//	i := 42
//	addOne(named.RefTo[strongIntTag](&i)) // i == 43
//
//	s := named.Make[strongIntTag](42)
//	addOne(s.Ref()) // s.Get() == 43
type Ref[U, Tag any] struct {
	_   [0]Tag
	ptr *U
}

// RefTo binds a view to the value p points to. U is deduced from p.
func RefTo[Tag, U any](p *U) Ref[U, Tag] {
	return Ref[U, Tag]{ptr: p}
}

// Get returns a copy of the referenced value.
func (r Ref[U, Tag]) Get() U { return *r.ptr }

// Ptr returns the pointer r is bound to.
func (r Ref[U, Tag]) Ptr() *U { return r.ptr }

// Set replaces the referenced value; the change is visible through every other
// alias of the same storage.
func (r Ref[U, Tag]) Set(value U) { *r.ptr = value }

// Value copies the referenced value into a new owning Type with the same tag.
func (r Ref[U, Tag]) Value() Type[U, Tag] { return Type[U, Tag]{value: *r.ptr} }
