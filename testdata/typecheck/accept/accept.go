// Package accept uses every operation through a tag that declares it.
package accept

import (
	"hash/maphash"

	"github.com/go-digitaltwin/go-named"
)

type meterTag struct {
	named.Arithmetic
	named.Hashable
	named.ConvertibleTo[float64]
}

type Meter = named.Type[float64, meterTag]

func Use() {
	a, b := named.From[Meter](1), named.From[Meter](2)
	c := named.Add(a, b)
	c = named.Sub(c, a)
	c = named.Mul(c, b)
	c = named.Div(c, b)
	c = named.Neg(c)
	named.Inc(&c)
	_ = named.Less(a, b)
	_ = named.Equal(a, b)
	_ = named.Hash(maphash.MakeSeed(), a)
	_ = named.Unwrap(c)
	_ = named.ConvertNumber[float64](c)
}
