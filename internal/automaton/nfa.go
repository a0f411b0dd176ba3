package automaton

import (
	"fmt"

	"github.com/jacoelho/jg/internal/query"
)

// stepPattern labels a non-epsilon transition and decides which
// concrete steps may cross it.
type stepPattern interface {
	matches(Step) bool
}

type (
	fieldLit  string
	indexLit  uint32
	anyField  struct{}
	anyIndex  struct{}
	indexFrom uint32
)

func (p fieldLit) matches(s Step) bool { return !s.IsIndex && s.Field == string(p) }

func (p indexLit) matches(s Step) bool { return s.IsIndex && s.Index == uint32(p) }

func (anyField) matches(s Step) bool { return !s.IsIndex }

func (anyIndex) matches(s Step) bool { return s.IsIndex }

func (p indexFrom) matches(s Step) bool { return s.IsIndex && s.Index >= uint32(p) }

// transition leaves a state. A nil pattern marks an epsilon edge.
type transition struct {
	pattern stepPattern
	target  int
}

// NFA is a Thompson-form automaton over path steps: a single initial
// state, a single accepting state, and states addressed by index into
// a flat pool.
type NFA struct {
	edges     [][]transition
	initial   int
	accepting int
}

// Compile builds the automaton for q by Thompson construction. Slices
// expand to one literal index edge per position in the range.
func Compile(q query.Query) *NFA {
	b := &nfaBuilder{}
	initial, accepting := b.compile(q)
	return &NFA{edges: b.edges, initial: initial, accepting: accepting}
}

type nfaBuilder struct {
	edges [][]transition
}

func (b *nfaBuilder) state() int {
	b.edges = append(b.edges, nil)
	return len(b.edges) - 1
}

func (b *nfaBuilder) edge(from int, pattern stepPattern, to int) {
	b.edges[from] = append(b.edges[from], transition{pattern: pattern, target: to})
}

func (b *nfaBuilder) epsilon(from, to int) {
	b.edge(from, nil, to)
}

func (b *nfaBuilder) atom(p stepPattern) (int, int) {
	start, end := b.state(), b.state()
	b.edge(start, p, end)
	return start, end
}

func (b *nfaBuilder) compile(q query.Query) (start, end int) {
	switch q := q.(type) {
	case query.Field:
		return b.atom(fieldLit(q))
	case query.Index:
		return b.atom(indexLit(q))
	case query.FieldWildcard:
		return b.atom(anyField{})
	case query.IndexWildcard:
		return b.atom(anyIndex{})
	case query.SliceFrom:
		return b.atom(indexFrom(q.Start))
	case query.Slice:
		start, end = b.state(), b.state()
		for i := q.Start; ; i++ {
			b.edge(start, indexLit(i), end)
			if i == q.End {
				break
			}
		}
		return start, end
	case query.Seq:
		if len(q) == 0 {
			state := b.state()
			return state, state
		}
		start, end = b.compile(q[0])
		for _, item := range q[1:] {
			next, nextEnd := b.compile(item)
			b.epsilon(end, next)
			end = nextEnd
		}
		return start, end
	case query.Alt:
		start, end = b.state(), b.state()
		for _, branch := range q {
			sub, subEnd := b.compile(branch)
			b.epsilon(start, sub)
			b.epsilon(subEnd, end)
		}
		return start, end
	case query.Star:
		sub, subEnd := b.compile(q.Sub)
		start, end = b.state(), b.state()
		b.epsilon(start, sub)
		b.epsilon(start, end)
		b.epsilon(subEnd, sub)
		b.epsilon(subEnd, end)
		return start, end
	case query.Opt:
		sub, subEnd := b.compile(q.Sub)
		start, end = b.state(), b.state()
		b.epsilon(start, sub)
		b.epsilon(start, end)
		b.epsilon(subEnd, end)
		return start, end
	case query.Empty:
		state := b.state()
		return state, state
	}
	panic(fmt.Sprintf("automaton: unhandled query node %T", q))
}
