// Package clean uses strong types only through the capabilities their tags
// declare.
package clean

import "github.com/go-digitaltwin/go-named"

type meterTag struct {
	named.Addable
	named.Comparable
	named.Hashable
}

type Meter = named.Type[float64, meterTag]

var index = map[Meter]string{}

func Longest(a, b Meter) Meter {
	if a == b || named.Less(b, a) {
		return a
	}
	return b
}

func Label(m Meter) string {
	switch m {
	case named.From[Meter](0):
		return "zero"
	}
	return index[m]
}
