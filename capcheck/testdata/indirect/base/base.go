// Package base declares capability sets shared by tags of other packages.
package base

import "github.com/go-digitaltwin/go-named"

// Hashing grants hashing only.
type Hashing struct{ named.Hashable }

// Keying grants everything a map key needs.
type Keying struct {
	named.Comparable
	named.Hashable
}
