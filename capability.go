package named

// Capabilities are declared by embedding markers into the tag of a strong type:
//
//	type serialNumberTag struct {
//		named.Comparable
//		named.Hashable
//	}
//
// Every marker is an empty struct, hence embedding any number of markers keeps
// the tag (and the strong type) free of storage. Each marker implements the
// matching Can* interface through an unexported method; that interface is then
// used as the constraint on the tag parameter of the capability's operations.
//
// Markers are independent of each other and their order is irrelevant. The one
// documented dependency is that a tag embedding Hashable should also embed
// Comparable (capcheck reports tags that do not).

// Addable unlocks Add.
type Addable struct{}

func (Addable) canAdd() {}

// CanAdd is satisfied by tags embedding Addable.
type CanAdd interface{ canAdd() }

// Subtractable unlocks Sub.
type Subtractable struct{}

func (Subtractable) canSubtract() {}

// CanSubtract is satisfied by tags embedding Subtractable.
type CanSubtract interface{ canSubtract() }

// Multiplicable unlocks Mul.
type Multiplicable struct{}

func (Multiplicable) canMultiply() {}

// CanMultiply is satisfied by tags embedding Multiplicable.
type CanMultiply interface{ canMultiply() }

// Divisible unlocks Div.
type Divisible struct{}

func (Divisible) canDivide() {}

// CanDivide is satisfied by tags embedding Divisible.
type CanDivide interface{ canDivide() }

// Modulable unlocks Mod.
type Modulable struct{}

func (Modulable) canModulo() {}

// CanModulo is satisfied by tags embedding Modulable.
type CanModulo interface{ canModulo() }

// Negatable unlocks Neg.
type Negatable struct{}

func (Negatable) canNegate() {}

// CanNegate is satisfied by tags embedding Negatable.
type CanNegate interface{ canNegate() }

// Incrementable unlocks Inc.
type Incrementable struct{}

func (Incrementable) canIncrement() {}

// CanIncrement is satisfied by tags embedding Incrementable.
type CanIncrement interface{ canIncrement() }

// Decrementable unlocks Dec.
type Decrementable struct{}

func (Decrementable) canDecrement() {}

// CanDecrement is satisfied by tags embedding Decrementable.
type CanDecrement interface{ canDecrement() }

// Comparable unlocks Equal, NotEqual, Less, LessOrEqual, Greater,
// GreaterOrEqual, Compare, Min and Max; it also marks == and != as intended
// for capcheck.
type Comparable struct{}

func (Comparable) canCompare() {}

// CanCompare is satisfied by tags embedding Comparable.
type CanCompare interface{ canCompare() }

// Hashable unlocks Hash and Map; it also marks the strong type as a valid map
// key for capcheck.
//
// A tag embedding Hashable should also embed Comparable, so that equality of the
// strong type is available wherever its hash is.
type Hashable struct{}

func (Hashable) canHash() {}

// CanHash is satisfied by tags embedding Hashable.
type CanHash interface{ canHash() }

// FunctionCallable unlocks Forward and Call, passing the underlying value to
// functions expecting a *U without copying it.
type FunctionCallable struct{}

func (FunctionCallable) canCallFunction() {}

// CanCallFunction is satisfied by tags embedding FunctionCallable.
type CanCallFunction interface{ canCallFunction() }

// MethodCallable unlocks Arrow, which exposes the methods of the underlying
// value.
type MethodCallable struct{}

func (MethodCallable) canCallMethod() {}

// CanCallMethod is satisfied by tags embedding MethodCallable.
type CanCallMethod interface{ canCallMethod() }

// Callable is the union of FunctionCallable and MethodCallable.
type Callable struct {
	FunctionCallable
	MethodCallable
}

// ConvertibleTo unlocks Convert, ConvertFunc and (when V is the underlying type
// itself) Unwrap.
//
// A tag may embed a single ConvertibleTo; embedding two instantiations at the
// same depth makes both ambiguous and neither conversion is available.
type ConvertibleTo[V any] struct{}

func (ConvertibleTo[V]) canConvertTo(*V) {}

// CanConvertTo is satisfied by tags embedding ConvertibleTo[V].
type CanConvertTo[V any] interface{ canConvertTo(*V) }

// Arithmetic bundles every arithmetic marker together with Comparable.
type Arithmetic struct {
	Addable
	Subtractable
	Multiplicable
	Divisible
	Modulable
	Negatable
	Incrementable
	Decrementable
	Comparable
}
