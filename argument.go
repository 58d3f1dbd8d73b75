package named

// Argument is a token binding values to the strong type Type[U, Tag] at call
// sites, such that callers name the parameters they pass:
//
//	var (
//		firstName named.Argument[string, firstNameTag]
//		lastName  named.Argument[string, lastNameTag]
//	)
//
//	fullName(firstName.Is("James"), lastName.Is("Bond"))
//
// An Argument holds no state. Declare it once per parameter and share it.
type Argument[U, Tag any] struct{}

// Is returns value wrapped as Type[U, Tag]; it is equivalent to constructing the
// strong type directly.
func (Argument[U, Tag]) Is(value U) Type[U, Tag] {
	return Type[U, Tag]{value: value}
}

// Func2 adapts a function of two parameters of distinct strong types, such that
// callers may bind its arguments in either order.
//
//	full := named.Func2[FirstName, LastName, string](fullName)
//	full.Call(firstName.Is("James"), lastName.Is("Bond"))
//	full.Flip(lastName.Is("Bond"), firstName.Is("James")) // same result
type Func2[A, B, R any] func(A, B) R

// Call invokes f with its arguments in declaration order.
func (f Func2[A, B, R]) Call(a A, b B) R { return f(a, b) }

// Flip invokes f with its arguments given in reverse order.
func (f Func2[A, B, R]) Flip(b B, a A) R { return f(a, b) }
