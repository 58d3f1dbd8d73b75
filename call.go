package named

// Forward returns a pointer to the value stored in t, for passing it to
// functions that expect a *U. The value is not copied, so U may be a type that
// must not be copied (e.g., a struct holding a sync.Mutex).
func Forward[U any, Tag CanCallFunction](t *Type[U, Tag]) *U {
	return &t.value
}

// Call invokes fn with a pointer to the value stored in t and returns its
// result.
func Call[U any, Tag CanCallFunction, R any](t *Type[U, Tag], fn func(*U) R) R {
	return fn(&t.value)
}

// Arrow exposes the methods of the value stored in t, both pointer and value
// receivers, without copying it:
//
//	named.Arrow(&conn).Close()
func Arrow[U any, Tag CanCallMethod](t *Type[U, Tag]) *U {
	return &t.value
}
