// Package indirect declares tags whose capabilities come from another package;
// it never imports the named package itself.
package indirect

import "github.com/go-digitaltwin/go-named/capcheck/testdata/indirect/base"

type serialTag struct{ base.Hashing } // want hash-without-compare

type keyTag struct{ base.Keying }

