// Package convert converts a strong type to another over the same underlying
// type.
package convert

import "github.com/go-digitaltwin/go-named"

type (
	widthTag  struct{}
	heightTag struct{}
)

type (
	Width  = named.Type[float64, widthTag]
	Height = named.Type[float64, heightTag]
)

func Convert(h Height) Width {
	return Width(h)
}
