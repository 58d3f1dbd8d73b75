// Package modfloat takes the remainder of floating-point strong types.
package modfloat

import "github.com/go-digitaltwin/go-named"

type modTag struct{ named.Modulable }

var _ = named.Mod(named.Make[modTag](1.5), named.Make[modTag](0.5))
