// Package assign assigns a strong type to another over the same underlying
// type.
package assign

import "github.com/go-digitaltwin/go-named"

type (
	widthTag  struct{}
	heightTag struct{}
)

type (
	Width  = named.Type[float64, widthTag]
	Height = named.Type[float64, heightTag]
)

func Assign(h Height) Width {
	var w Width = h
	return w
}
