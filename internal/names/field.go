package names

// Field is the visitation set threaded through canonicalization. It
// records every name seen, in discovery order, and counts validated visits
// against a horizon.
type Field struct {
	seen     map[string]struct{}
	order    []Name
	count    int
	horizon  int
	overflow Name
	exceeded bool
}

// NewField creates an empty field. A horizon <= 0 selects Horizon.
func NewField(horizon int) *Field {
	if horizon <= 0 {
		horizon = Horizon
	}
	return &Field{
		seen:    make(map[string]struct{}),
		horizon: horizon,
	}
}

// Has reports whether s was already visited.
func (f *Field) Has(s string) bool {
	_, ok := f.seen[s]
	return ok
}

// mark records s as seen without counting it.
func (f *Field) mark(s string) {
	f.seen[s] = struct{}{}
	f.order = append(f.order, Name(s))
}

// visit records n as seen and counts it. The first name that pushes the
// count past the horizon is kept as the overflow.
func (f *Field) visit(n Name) {
	f.mark(string(n))
	f.count++
	if f.count > f.horizon && !f.exceeded {
		f.exceeded = true
		f.overflow = n
	}
}

// Count returns the number of counted visits.
func (f *Field) Count() int {
	return f.count
}

// Horizon returns the field's visit bound.
func (f *Field) Horizon() int {
	return f.horizon
}

// Exceeded reports whether the count went past the horizon.
func (f *Field) Exceeded() bool {
	return f.exceeded
}

// Overflow returns the name whose visit exceeded the horizon.
func (f *Field) Overflow() (Name, bool) {
	return f.overflow, f.exceeded
}

// Names returns the visited names in discovery order.
func (f *Field) Names() []Name {
	out := make([]Name, len(f.order))
	copy(out, f.order)
	return out
}
