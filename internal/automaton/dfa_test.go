package automaton

import (
	"testing"

	"github.com/jacoelho/jg/internal/query"
)

func compileText(t *testing.T, text string) *DFA {
	t.Helper()

	q, err := query.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	return NewDFA(Compile(q))
}

func run(d *DFA, steps []Step) int {
	state := d.Start()
	for _, step := range steps {
		state = d.Next(state, step)
	}
	return state
}

func TestDFAAcceptance(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		steps  []Step
		accept bool
	}{
		{
			name:   "empty_query_accepts_root",
			query:  "",
			steps:  nil,
			accept: true,
		},
		{
			name:   "empty_query_rejects_descent",
			query:  "",
			steps:  []Step{FieldStep("x")},
			accept: false,
		},
		{
			name:   "literal_path",
			query:  "foo.bar",
			steps:  []Step{FieldStep("foo"), FieldStep("bar")},
			accept: true,
		},
		{
			name:   "literal_path_prefix",
			query:  "foo.bar",
			steps:  []Step{FieldStep("foo")},
			accept: false,
		},
		{
			name:   "field_wildcard_single_edge",
			query:  "*",
			steps:  []Step{FieldStep("anything")},
			accept: true,
		},
		{
			name:   "field_wildcard_rejects_index",
			query:  "*",
			steps:  []Step{IndexStep(0)},
			accept: false,
		},
		{
			name:   "field_wildcard_rejects_two_edges",
			query:  "*",
			steps:  []Step{FieldStep("a"), FieldStep("b")},
			accept: false,
		},
		{
			name:   "index_wildcard",
			query:  "[*]",
			steps:  []Step{IndexStep(42)},
			accept: true,
		},
		{
			name:   "descend_any_fields",
			query:  "**.a",
			steps:  []Step{FieldStep("x"), FieldStep("y"), FieldStep("a")},
			accept: true,
		},
		{
			name:   "descend_any_zero_repetitions",
			query:  "**.a",
			steps:  []Step{FieldStep("a")},
			accept: true,
		},
		{
			name:   "slice_lower_bound",
			query:  "[1:3]",
			steps:  []Step{IndexStep(1)},
			accept: true,
		},
		{
			name:   "slice_upper_bound_inclusive",
			query:  "[1:3]",
			steps:  []Step{IndexStep(3)},
			accept: true,
		},
		{
			name:   "slice_from_far_index",
			query:  "[2:]",
			steps:  []Step{IndexStep(100)},
			accept: true,
		},
		{
			name:   "alternation_first_branch",
			query:  "(a|c).b",
			steps:  []Step{FieldStep("a"), FieldStep("b")},
			accept: true,
		},
		{
			name:   "alternation_second_branch",
			query:  "(a|c).b",
			steps:  []Step{FieldStep("c"), FieldStep("b")},
			accept: true,
		},
		{
			name:   "optional_taken",
			query:  "foo?",
			steps:  []Step{FieldStep("foo")},
			accept: true,
		},
		{
			name:   "optional_skipped",
			query:  "foo?",
			steps:  nil,
			accept: true,
		},
		{
			name:   "star_zero_repetitions",
			query:  "foo*",
			steps:  nil,
			accept: true,
		},
		{
			name:   "star_three_repetitions",
			query:  "foo*",
			steps:  []Step{FieldStep("foo"), FieldStep("foo"), FieldStep("foo")},
			accept: true,
		},
		{
			name:   "literal_and_wildcard_union",
			query:  "foo.(*|[*])*.bar",
			steps:  []Step{FieldStep("foo"), IndexStep(0), FieldStep("x"), FieldStep("bar")},
			accept: true,
		},
		{
			name:   "literal_and_wildcard_union_direct",
			query:  "foo.(*|[*])*.bar",
			steps:  []Step{FieldStep("foo"), FieldStep("bar")},
			accept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := compileText(t, tt.query)
			state := run(d, tt.steps)
			if got := d.Accepting(state); got != tt.accept {
				t.Errorf("query %q on %v: accepting = %t, want %t", tt.query, tt.steps, got, tt.accept)
			}
		})
	}
}

func TestDFADeadState(t *testing.T) {
	tests := []struct {
		name  string
		query string
		steps []Step
	}{
		{name: "wrong_field", query: "foo", steps: []Step{FieldStep("bar")}},
		{name: "index_below_slice", query: "[1:3]", steps: []Step{IndexStep(0)}},
		{name: "index_above_slice", query: "[1:3]", steps: []Step{IndexStep(4)}},
		{name: "index_below_open_slice", query: "[2:]", steps: []Step{IndexStep(1)}},
		{name: "index_on_field_pattern", query: "**.a", steps: []Step{IndexStep(0)}},
		{name: "descent_past_accept", query: "foo?", steps: []Step{FieldStep("foo"), FieldStep("foo")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := compileText(t, tt.query)
			state := run(d, tt.steps)
			if state != Dead {
				t.Fatalf("query %q on %v: state = %d, want Dead", tt.query, tt.steps, state)
			}
			if d.Accepting(state) {
				t.Error("dead state must not accept")
			}
			if next := d.Next(state, FieldStep("foo")); next != Dead {
				t.Errorf("Next from dead state = %d, want Dead", next)
			}
		})
	}
}

func TestDFAMemoisation(t *testing.T) {
	d := compileText(t, "users.[*].name")

	first := d.Next(d.Start(), FieldStep("users"))
	second := d.Next(d.Start(), FieldStep("users"))
	if first != second {
		t.Errorf("repeated Next returned %d then %d", first, second)
	}

	// Distinct indices matched by the same wildcard land in the same
	// canonical state.
	a := d.Next(first, IndexStep(0))
	b := d.Next(first, IndexStep(1))
	if a != b {
		t.Errorf("wildcard targets differ: %d vs %d", a, b)
	}
}

func TestCompileShape(t *testing.T) {
	q, err := query.Parse("")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	n := Compile(q)
	if n.initial != n.accepting {
		t.Errorf("empty query: initial %d != accepting %d", n.initial, n.accepting)
	}

	q, err = query.Parse("foo")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	n = Compile(q)
	if n.initial == n.accepting {
		t.Error("single atom: initial and accepting states must differ")
	}
	if len(n.edges) != 2 {
		t.Errorf("single atom: state count = %d, want 2", len(n.edges))
	}
}
