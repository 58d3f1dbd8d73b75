// Package unwrap unwraps a strong type whose tag does not declare the
// conversion to its underlying type.
package unwrap

import "github.com/go-digitaltwin/go-named"

type idTag struct{ named.ConvertibleTo[string] }

var _ int = named.Unwrap(named.Make[idTag](42))
