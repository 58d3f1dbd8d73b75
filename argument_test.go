package named_test

import (
	"testing"

	"github.com/go-digitaltwin/go-named"
)

type (
	firstNameTag struct{}
	lastNameTag  struct{}
)

type (
	FirstName = named.Type[string, firstNameTag]
	LastName  = named.Type[string, lastNameTag]
)

var (
	firstName named.Argument[string, firstNameTag]
	lastName  named.Argument[string, lastNameTag]
)

func fullName(first FirstName, last LastName) string {
	return first.Get() + last.Get()
}

func TestArgument(t *testing.T) {
	if got := fullName(firstName.Is("James"), lastName.Is("Bond")); got != "JamesBond" {
		t.Errorf("fullName(James, Bond) = %q, want %q", got, "JamesBond")
	}

	bound := firstName.Is("James")
	direct := named.From[FirstName]("James")
	if bound.Get() != direct.Get() {
		t.Errorf("Argument.Is(James) = %q, differs from From(James) = %q", bound.Get(), direct.Get())
	}
}

func TestFunc2(t *testing.T) {
	f := named.Func2[FirstName, LastName, string](fullName)

	inOrder := f.Call(firstName.Is("James"), lastName.Is("Bond"))
	reversed := f.Flip(lastName.Is("Bond"), firstName.Is("James"))

	if inOrder != reversed {
		t.Errorf("Call(James, Bond) = %q, Flip(Bond, James) = %q; want equal", inOrder, reversed)
	}
	if inOrder != "JamesBond" {
		t.Errorf("Call(James, Bond) = %q, want %q", inOrder, "JamesBond")
	}
}
