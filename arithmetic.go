package named

import "golang.org/x/exp/constraints"

// Number is the set of underlying types supporting Go's arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Add returns the strong type holding a + b. Strings concatenate.
func Add[U Number | ~string, Tag CanAdd](a, b Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: a.value + b.value}
}

// Sub returns the strong type holding a - b.
func Sub[U Number, Tag CanSubtract](a, b Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: a.value - b.value}
}

// Mul returns the strong type holding a * b.
func Mul[U Number, Tag CanMultiply](a, b Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: a.value * b.value}
}

// Div returns the strong type holding a / b. Integer division by zero panics,
// exactly as it does for U.
func Div[U Number, Tag CanDivide](a, b Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: a.value / b.value}
}

// Mod returns the strong type holding a % b.
func Mod[U constraints.Integer, Tag CanModulo](a, b Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: a.value % b.value}
}

// Neg returns the strong type holding -a.
func Neg[U Number, Tag CanNegate](a Type[U, Tag]) Type[U, Tag] {
	return Type[U, Tag]{value: -a.value}
}

// Inc increments the underlying value of t in place.
func Inc[U Number, Tag CanIncrement](t *Type[U, Tag]) {
	t.value++
}

// Dec decrements the underlying value of t in place.
func Dec[U Number, Tag CanDecrement](t *Type[U, Tag]) {
	t.value--
}
