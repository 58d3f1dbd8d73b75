// Package misuse holds deliberate misuse of strong types; each reported line
// carries a want comment naming the expected rule.
package misuse

import (
	"slices"

	"github.com/go-digitaltwin/go-named"
)

type plainTag struct{}

type compareTag struct{ named.Comparable }

type hashOnlyTag struct{ named.Hashable } // want hash-without-compare

type keyTag struct {
	named.Comparable
	named.Hashable
}

type (
	Plain    = named.Type[int, plainTag]
	Ordered  = named.Type[int, compareTag]
	Key      = named.Type[string, keyTag]
	HashOnly = named.Type[string, hashOnlyTag]
)

func Compare(a, b Plain, c, d Ordered) bool {
	if a == b { // want comparison
		return true
	}
	if a.Get() == b.Get() {
		return true
	}
	return c != d
}

func CompareRefs(a, b named.Ref[int, plainTag]) bool {
	return a != b // want comparison
}

func Switch(a, b Plain, c, d Ordered) int {
	switch a { // want switch
	case b:
		return 1
	}
	switch c {
	case d:
		return 2
	}
	return 0
}

var (
	plainIndex    map[Plain]string // want map-key
	keyIndex      map[Key]string
	hashOnlyIndex map[HashOnly]string
)

func Generic[Tag comparable](a, b named.Type[int, Tag]) bool {
	return a == b // want comparison
}

func Constrained[Tag interface {
	comparable
	named.CanCompare
}](a, b named.Type[int, Tag]) bool {
	return a == b
}

func Local() bool {
	type localTag struct{}
	return named.Make[localTag](1) == named.Make[localTag](2) // want comparison
}

type Rect struct{ W, H Plain }

type Reading struct {
	At    int
	Value Ordered
}

func Structs(a, b Rect, c, d Reading) bool {
	if a == b { // want comparison
		return true
	}
	return c == d
}

func Arrays(a, b [2]Plain) bool {
	return a != b // want comparison
}

func Interfaces(a, b Plain) bool {
	return any(a) == any(b) // want comparison
}

func Eq[T comparable](a, b T) bool { return a == b }

func Instances(plain []Plain, p Plain, ordered []Ordered, o Ordered) bool {
	if Eq(p, p) { // want type-argument
		return true
	}
	if slices.Contains(plain, p) { // want type-argument
		return true
	}
	return slices.Contains(ordered, o) && Eq(o, o)
}

var (
	rectIndex  map[Rect]int     // want map-key
	arrayIndex map[[1]Plain]int // want map-key
)

type refTag struct {
	named.Comparable
	named.Hashable
}

type MeterRef = named.Ref[float64, refTag]

func Refs(a, b MeterRef) bool {
	switch a { // want switch
	case b:
		return true
	}
	return a == b // want comparison
}

var refIndex map[MeterRef]int // want map-key
