package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jacoelho/jg/internal/document"
	"github.com/jacoelho/jg/internal/engine"
)

const indentStep = "  "

// Printer writes matches to Out. When ShowPath is set, each match is
// preceded by a header line with the rendered path and a colon; a
// match at the document root has no header because its path is empty.
type Printer struct {
	Out      io.Writer
	Styles   Styles
	Compact  bool
	ShowPath bool
}

// Print writes one match.
func (p *Printer) Print(m engine.Match) error {
	s := &sink{w: p.Out}

	if p.ShowPath {
		if header := Path(m.Path); header != "" {
			s.writeString(p.Styles.Path.Render(header))
			s.writeString(":\n")
		}
	}
	p.value(s, m.Value, 0)
	s.writeString("\n")
	return s.err
}

func (p *Printer) value(s *sink, v *document.Value, depth int) {
	switch v.Kind {
	case document.KindNull:
		s.writeString(p.Styles.Null.Render("null"))
	case document.KindBool:
		text := "false"
		if v.Bool {
			text = "true"
		}
		s.writeString(p.Styles.Bool.Render(text))
	case document.KindNumber:
		s.writeString(p.Styles.Number.Render(v.Num.String()))
	case document.KindString:
		s.writeString(p.Styles.String.Render(quote(v.Str)))
	case document.KindArray:
		p.array(s, v, depth)
	case document.KindObject:
		p.object(s, v, depth)
	}
}

func (p *Printer) array(s *sink, v *document.Value, depth int) {
	if len(v.Items) == 0 {
		s.writeString("[]")
		return
	}

	s.writeString("[")
	for i, item := range v.Items {
		if i > 0 {
			s.writeString(",")
		}
		p.newline(s, depth+1)
		p.value(s, item, depth+1)
	}
	p.newline(s, depth)
	s.writeString("]")
}

func (p *Printer) object(s *sink, v *document.Value, depth int) {
	if len(v.Members) == 0 {
		s.writeString("{}")
		return
	}

	s.writeString("{")
	for i, member := range v.Members {
		if i > 0 {
			s.writeString(",")
		}
		p.newline(s, depth+1)
		s.writeString(p.Styles.Key.Render(quote(member.Key)))
		if p.Compact {
			s.writeString(":")
		} else {
			s.writeString(": ")
		}
		p.value(s, member.Value, depth+1)
	}
	p.newline(s, depth)
	s.writeString("}")
}

func (p *Printer) newline(s *sink, depth int) {
	if p.Compact {
		return
	}
	s.writeString("\n")
	s.writeString(strings.Repeat(indentStep, depth))
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string only fails on invalid UTF-8, which the
		// decoder already replaced.
		return `""`
	}
	return string(b)
}

// sink accumulates the first write error so formatting code stays
// free of per-write checks.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) writeString(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}
