// Package undeclared adds strong types whose tag does not declare Addable.
package undeclared

import "github.com/go-digitaltwin/go-named"

type plainTag struct{ named.Comparable }

var _ = named.Add(named.Make[plainTag](1), named.Make[plainTag](2))
