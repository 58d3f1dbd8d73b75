// Package mixed adds strong types of different tags.
package mixed

import "github.com/go-digitaltwin/go-named"

type (
	aTag struct{ named.Addable }
	bTag struct{ named.Addable }
)

var _ = named.Add(named.Make[aTag](1), named.Make[bTag](2))
