// Package broken does not type-check.
package broken

var n int = "not an int"
