package automaton

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jacoelho/jg/internal/stack"
)

// Dead is the state reached when no pattern matches a step. Every
// transition out of it leads back to it and it never accepts.
const Dead = -1

// DFA determinizes an NFA by subset construction. The alphabet is the
// set of concrete steps observed while walking a document, so the
// transition table is computed on demand and memoised. A DFA serves
// one evaluation at a time; the cache is not synchronised.
type DFA struct {
	nfa    *NFA
	states []dfaState
	index  map[string]int
}

// dfaState is a canonical set of NFA states with its memoised moves.
type dfaState struct {
	members   []int
	accepting bool
	moves     map[Step]int
}

// NewDFA returns a DFA whose start state is the epsilon closure of the
// NFA initial state.
func NewDFA(n *NFA) *DFA {
	d := &DFA{nfa: n, index: make(map[string]int)}
	d.intern(d.closure([]int{n.initial}))
	return d
}

// Start returns the start state identifier.
func (d *DFA) Start() int { return 0 }

// Accepting reports whether state contains the NFA accepting state.
func (d *DFA) Accepting(state int) bool {
	if state == Dead {
		return false
	}
	return d.states[state].accepting
}

// Next returns the state reached from state on step, or Dead when no
// pattern in the current set matches. Literal and wildcard edges
// compose: every matching pattern contributes its target.
func (d *DFA) Next(state int, step Step) int {
	if state == Dead {
		return Dead
	}

	if next, ok := d.states[state].moves[step]; ok {
		return next
	}

	var targets []int
	for _, nfaState := range d.states[state].members {
		for _, tr := range d.nfa.edges[nfaState] {
			if tr.pattern != nil && tr.pattern.matches(step) {
				targets = append(targets, tr.target)
			}
		}
	}

	next := Dead
	if len(targets) > 0 {
		next = d.intern(d.closure(targets))
	}
	d.states[state].moves[step] = next
	return next
}

// closure expands seeds with every state reachable over epsilon edges,
// returning a sorted set.
func (d *DFA) closure(seeds []int) []int {
	seen := make(map[int]bool, len(seeds))
	pending := stack.NewWithCapacity[int](len(seeds))
	pending.Push(seeds...)

	for {
		state, ok := pending.Pop()
		if !ok {
			break
		}
		if seen[state] {
			continue
		}
		seen[state] = true

		for _, tr := range d.nfa.edges[state] {
			if tr.pattern == nil && !seen[tr.target] {
				pending.Push(tr.target)
			}
		}
	}

	members := make([]int, 0, len(seen))
	for state := range seen {
		members = append(members, state)
	}
	slices.Sort(members)
	return members
}

// intern returns the identifier for the canonical member set, creating
// the state on first sight.
func (d *DFA) intern(members []int) int {
	key := memberKey(members)
	if id, ok := d.index[key]; ok {
		return id
	}

	d.states = append(d.states, dfaState{
		members:   members,
		accepting: slices.Contains(members, d.nfa.accepting),
		moves:     make(map[Step]int),
	})
	id := len(d.states) - 1
	d.index[key] = id
	return id
}

func memberKey(members []int) string {
	var sb strings.Builder
	for i, member := range members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(member))
	}
	return sb.String()
}
