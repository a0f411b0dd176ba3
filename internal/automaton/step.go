package automaton

import "strconv"

// Step is one edge taken while descending a document: an object field
// or an array index.
type Step struct {
	IsIndex bool
	Field   string
	Index   uint32
}

// FieldStep returns the step for an object edge labelled name.
func FieldStep(name string) Step { return Step{Field: name} }

// IndexStep returns the step for an array edge at position i.
func IndexStep(i uint32) Step { return Step{IsIndex: true, Index: i} }

func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.FormatUint(uint64(s.Index), 10) + "]"
	}
	return s.Field
}
