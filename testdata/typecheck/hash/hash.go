// Package hash hashes a strong type whose tag declares only Comparable.
package hash

import (
	"hash/maphash"

	"github.com/go-digitaltwin/go-named"
)

type keyTag struct{ named.Comparable }

var _ = named.Hash(maphash.MakeSeed(), named.Make[keyTag]("AA11"))
