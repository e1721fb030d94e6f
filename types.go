package tmas

// Ptr returns a pointer to v, for filling optional record fields.
func Ptr[T any](v T) *T { return &v }

// Value returns the value p points to, or the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
