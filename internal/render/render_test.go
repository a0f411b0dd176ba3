package render

import (
	"fmt"
	"strings"
	"syscall"
	"testing"

	"github.com/jacoelho/jg/internal/automaton"
	"github.com/jacoelho/jg/internal/document"
	"github.com/jacoelho/jg/internal/engine"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		path []automaton.Step
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{
			name: "fields",
			path: []automaton.Step{automaton.FieldStep("a"), automaton.FieldStep("b")},
			want: "a.b",
		},
		{
			name: "index_attaches_without_dot",
			path: []automaton.Step{
				automaton.FieldStep("users"),
				automaton.IndexStep(0),
				automaton.FieldStep("name"),
			},
			want: "users[0].name",
		},
		{
			name: "index_first",
			path: []automaton.Step{automaton.IndexStep(2), automaton.FieldStep("x")},
			want: "[2].x",
		},
		{
			name: "quoted_field",
			path: []automaton.Step{automaton.FieldStep("/endpoint"), automaton.FieldStep("x")},
			want: `"/endpoint".x`,
		},
		{
			name: "field_with_space",
			path: []automaton.Step{automaton.FieldStep("first name")},
			want: `"first name"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.path); got != tt.want {
				t.Errorf("Path(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func decodeText(t *testing.T, input string) *document.Value {
	t.Helper()

	v, err := document.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode(%q) returned error: %v", input, err)
	}
	return v
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		path     []automaton.Step
		compact  bool
		showPath bool
		want     string
	}{
		{
			name:     "scalar_with_header",
			input:    `"Alice"`,
			path:     []automaton.Step{automaton.FieldStep("users"), automaton.IndexStep(0), automaton.FieldStep("name")},
			showPath: true,
			want:     "users[0].name:\n\"Alice\"\n",
		},
		{
			name:     "root_match_has_no_header",
			input:    `{"a":1}`,
			path:     nil,
			showPath: true,
			want:     "{\n  \"a\": 1\n}\n",
		},
		{
			name:  "pretty_nested",
			input: `{"a":{"b":[1,true,null]},"c":"x"}`,
			want: `{
  "a": {
    "b": [
      1,
      true,
      null
    ]
  },
  "c": "x"
}
`,
		},
		{
			name:    "compact",
			input:   `{"a":{"b":[1,true,null]},"c":"x"}`,
			compact: true,
			want:    `{"a":{"b":[1,true,null]},"c":"x"}` + "\n",
		},
		{
			name:  "empty_containers",
			input: `{"a":[],"b":{}}`,
			want:  "{\n  \"a\": [],\n  \"b\": {}\n}\n",
		},
		{
			name:  "number_keeps_source_text",
			input: "1e2",
			want:  "1e2\n",
		},
		{
			name:  "string_escapes",
			input: `"a\"b"`,
			want:  "\"a\\\"b\"\n",
		},
		{
			name:  "header_suppressed",
			input: "7",
			path:  []automaton.Step{automaton.FieldStep("x")},
			want:  "7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			p := &Printer{
				Out:      &sb,
				Styles:   PlainStyles(),
				Compact:  tt.compact,
				ShowPath: tt.showPath,
			}
			m := engine.Match{Path: tt.path, Value: decodeText(t, tt.input)}
			if err := p.Print(m); err != nil {
				t.Fatalf("Print returned error: %v", err)
			}
			if got := sb.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestPrinterPropagatesWriteError(t *testing.T) {
	p := &Printer{Out: &failingWriter{err: syscall.EPIPE}, Styles: PlainStyles()}
	err := p.Print(engine.Match{Value: document.Null()})
	if err == nil {
		t.Fatal("Print returned nil error")
	}
	if !IsBrokenPipe(err) {
		t.Errorf("IsBrokenPipe(%v) = false, want true", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Error("nil error reported as broken pipe")
	}
	if !IsBrokenPipe(fmt.Errorf("write /dev/stdout: %w", syscall.EPIPE)) {
		t.Error("wrapped EPIPE not recognised")
	}
	if IsBrokenPipe(syscall.ENOSPC) {
		t.Error("unrelated errno reported as broken pipe")
	}
}
