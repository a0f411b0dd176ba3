package query

// Builder assembles a query programmatically. Each call appends one step
// to a sequence; Build returns the sequence, or Empty when no steps were
// added. Nested expressions are supplied through sub-builders.
type Builder struct {
	items []Query
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Field appends a literal field step.
func (b *Builder) Field(name string) *Builder {
	b.items = append(b.items, Field(name))
	return b
}

// Index appends a literal array index step.
func (b *Builder) Index(i uint32) *Builder {
	b.items = append(b.items, Index(i))
	return b
}

// Slice appends an inclusive index range step. start must not exceed end.
func (b *Builder) Slice(start, end uint32) *Builder {
	b.items = append(b.items, Slice{Start: start, End: end})
	return b
}

// SliceFrom appends an open-ended index range step.
func (b *Builder) SliceFrom(start uint32) *Builder {
	b.items = append(b.items, SliceFrom{Start: start})
	return b
}

// FieldWildcard appends a step matching any single field edge.
func (b *Builder) FieldWildcard() *Builder {
	b.items = append(b.items, FieldWildcard{})
	return b
}

// IndexWildcard appends a step matching any single index edge.
func (b *Builder) IndexWildcard() *Builder {
	b.items = append(b.items, IndexWildcard{})
	return b
}

// Alt appends a disjunction over the given sub-builders. With no
// branches nothing is appended.
func (b *Builder) Alt(branches ...*Builder) *Builder {
	if len(branches) == 0 {
		return b
	}
	alt := make(Alt, len(branches))
	for i, sub := range branches {
		alt[i] = sub.Build()
	}
	b.items = append(b.items, alt)
	return b
}

// Star appends zero-or-more repetitions of the sub-builder's query.
// An empty sub-builder appends nothing, as repetition of the empty
// path is the empty path.
func (b *Builder) Star(sub *Builder) *Builder {
	q := sub.Build()
	if _, empty := q.(Empty); empty {
		return b
	}
	b.items = append(b.items, Star{Sub: q})
	return b
}

// Opt appends an optional occurrence of the sub-builder's query. An
// empty sub-builder appends nothing.
func (b *Builder) Opt(sub *Builder) *Builder {
	q := sub.Build()
	if _, empty := q.(Empty); empty {
		return b
	}
	b.items = append(b.items, Opt{Sub: q})
	return b
}

// Build returns the accumulated query.
func (b *Builder) Build() Query {
	switch len(b.items) {
	case 0:
		return Empty{}
	case 1:
		return b.items[0]
	}
	return Seq(append([]Query(nil), b.items...))
}
