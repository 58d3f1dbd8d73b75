// Package underlying adds strong types whose underlying type has no +.
package underlying

import "github.com/go-digitaltwin/go-named"

type addTag struct{ named.Addable }

var _ = named.Add(named.Make[addTag](struct{}{}), named.Make[addTag](struct{}{}))
