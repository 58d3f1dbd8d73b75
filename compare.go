package named

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Every relation below delegates to the corresponding operator of U; none is
// synthesised from another. For floating-point U, relations involving NaN
// behave exactly like the raw operators (all false, except NotEqual).

// Equal reports whether a == b.
func Equal[U comparable, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value == b.value
}

// NotEqual reports whether a != b.
func NotEqual[U comparable, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value != b.value
}

// Less reports whether a < b.
func Less[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value < b.value
}

// LessOrEqual reports whether a <= b.
func LessOrEqual[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value <= b.value
}

// Greater reports whether a > b.
func Greater[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value > b.value
}

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) bool {
	return a.value >= b.value
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to, or
// greater than b, following cmp.Compare (a NaN is less than any other value).
// Its signature fits slices.SortFunc:
//
//	slices.SortFunc(meters, named.Compare[float64, meterTag])
func Compare[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) int {
	return cmp.Compare(a.value, b.value)
}

// Min returns the smaller of a and b (a, when they are equal).
func Min[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) Type[U, Tag] {
	if b.value < a.value {
		return b
	}
	return a
}

// Max returns the larger of a and b (a, when they are equal).
func Max[U constraints.Ordered, Tag CanCompare](a, b Type[U, Tag]) Type[U, Tag] {
	if b.value > a.value {
		return b
	}
	return a
}

// EqualRef reports whether the values referenced by a and b are equal. Unlike
// a == b, which compares the addresses the references are bound to, two
// references to distinct storage holding equal values are equal.
func EqualRef[U comparable, Tag CanCompare](a, b Ref[U, Tag]) bool {
	return *a.ptr == *b.ptr
}

// CompareRef is Compare on the values referenced by a and b.
func CompareRef[U constraints.Ordered, Tag CanCompare](a, b Ref[U, Tag]) int {
	return cmp.Compare(*a.ptr, *b.ptr)
}
