// Package engine evaluates compiled queries against documents. The
// walk visits nodes in pre-order, advancing an automaton state per
// step, skips any subtree whose step leads to the dead state, and
// emits a match whenever the state accepts.
package engine

import (
	"slices"

	"github.com/jacoelho/jg/internal/automaton"
	"github.com/jacoelho/jg/internal/document"
	"github.com/jacoelho/jg/internal/query"
)

// Match is a single result: the path from the document root and the
// value found there. Path is empty when the root itself matches.
type Match struct {
	Path  []automaton.Step
	Value *document.Value
}

// Find returns every node of doc whose path matches q, in document
// order. A parent match is emitted before any match inside it. Object
// members are visited in input order, array items in ascending index
// order, so results are deterministic for a given document.
func Find(q query.Query, doc *document.Value) []Match {
	d := automaton.NewDFA(automaton.Compile(q))

	w := &walker{dfa: d}
	w.visit(doc, d.Start())
	return w.matches
}

// FindFixed returns every node reachable at any depth under a member
// named name, equivalent to the query (*|[*])*."name".
func FindFixed(name string, doc *document.Value) []Match {
	q := query.NewBuilder().
		Star(query.NewBuilder().Alt(
			query.NewBuilder().FieldWildcard(),
			query.NewBuilder().IndexWildcard(),
		)).
		Field(name).
		Build()
	return Find(q, doc)
}

type walker struct {
	dfa     *automaton.DFA
	path    []automaton.Step
	matches []Match
}

func (w *walker) visit(v *document.Value, state int) {
	if state == automaton.Dead {
		return
	}

	if w.dfa.Accepting(state) {
		w.matches = append(w.matches, Match{Path: slices.Clone(w.path), Value: v})
	}

	switch v.Kind {
	case document.KindObject:
		for _, member := range v.Members {
			w.descend(member.Value, state, automaton.FieldStep(member.Key))
		}
	case document.KindArray:
		for i, item := range v.Items {
			w.descend(item, state, automaton.IndexStep(uint32(i)))
		}
	}
}

func (w *walker) descend(v *document.Value, state int, step automaton.Step) {
	next := w.dfa.Next(state, step)
	if next == automaton.Dead {
		return
	}
	w.path = append(w.path, step)
	w.visit(v, next)
	w.path = w.path[:len(w.path)-1]
}
