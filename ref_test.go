package named_test

import (
	"testing"

	"github.com/go-digitaltwin/go-named"
)

type strongIntTag struct{}

type (
	StrongInt    = named.Type[int, strongIntTag]
	StrongIntRef = named.Ref[int, strongIntTag]
)

func addOne(r StrongIntRef) { *r.Ptr()++ }

func TestRefTo(t *testing.T) {
	i := 42
	addOne(named.RefTo[strongIntTag](&i))
	if i != 43 {
		t.Errorf("addOne(RefTo(42)) = %d, want 43", i)
	}
}

func TestType_Ref(t *testing.T) {
	i := named.From[StrongInt](42)
	addOne(i.Ref())
	if got := i.Get(); got != 43 {
		t.Errorf("addOne(StrongInt(42).Ref()) = %d, want 43", got)
	}
}

func TestRef_roundTrip(t *testing.T) {
	owner := named.From[StrongInt](1)
	view := owner.Ref()

	view.Set(2)
	if got := owner.Get(); got != 2 {
		t.Errorf("view.Set(2); owner.Get() = %d, want 2", got)
	}

	owner.Set(3)
	if got := view.Get(); got != 3 {
		t.Errorf("owner.Set(3); view.Get() = %d, want 3", got)
	}

	if view.Ptr() != owner.Ptr() {
		t.Errorf("view and owner do not share storage")
	}

	// Value copies; later writes through the view do not affect the copy.
	copied := view.Value()
	view.Set(4)
	if got := copied.Get(); got != 3 {
		t.Errorf("copied.Get() = %d after view.Set(4), want 3", got)
	}
}

func TestRef_capabilities(t *testing.T) {
	raw := 10.0
	r := named.RefTo[meterTag](&raw)

	sum := named.Add(r.Value(), meters(12))
	if !named.Equal(sum, meters(22)) {
		t.Errorf("Add(ref(10), 12) = %v, want 22", sum.Get())
	}
}

func TestRef_zero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("zero Ref.Get() did not panic")
		}
	}()
	var r StrongIntRef
	r.Get()
}
