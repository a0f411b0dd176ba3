package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Query is a path expression over JSON documents. The concrete types
// below form a closed set; compilation and rendering switch over them.
// String renders the expression as query text. For expressions returned
// by Parse, that text parses back to an equivalent expression; Empty
// renders as nothing, so an Empty nested inside an Alt or Seq yields
// text that does not parse.
type Query interface {
	fmt.Stringer
	query()
}

// Field matches an object edge with an exact name.
type Field string

// Index matches an array edge at an exact position.
type Index uint32

// Slice matches array edges with positions Start through End, both
// inclusive. Start <= End.
type Slice struct {
	Start uint32
	End   uint32
}

// SliceFrom matches array edges at position Start or later.
type SliceFrom struct {
	Start uint32
}

// FieldWildcard matches exactly one object edge, any name.
type FieldWildcard struct{}

// IndexWildcard matches exactly one array edge, any position.
type IndexWildcard struct{}

// Seq matches its sub-expressions one after another.
type Seq []Query

// Alt matches when any one of its branches matches.
type Alt []Query

// Star matches zero or more repetitions of its sub-expression.
// Sub is never Empty.
type Star struct {
	Sub Query
}

// Opt matches its sub-expression or nothing. Sub is never Empty.
type Opt struct {
	Sub Query
}

// Empty matches the document root only.
type Empty struct{}

func (Field) query()         {}
func (Index) query()         {}
func (Slice) query()         {}
func (SliceFrom) query()     {}
func (FieldWildcard) query() {}
func (IndexWildcard) query() {}
func (Seq) query()           {}
func (Alt) query()           {}
func (Star) query()          {}
func (Opt) query()           {}
func (Empty) query()         {}

func (f Field) String() string { return FormatField(string(f)) }

func (i Index) String() string { return "[" + strconv.FormatUint(uint64(i), 10) + "]" }

func (s Slice) String() string { return fmt.Sprintf("[%d:%d]", s.Start, s.End) }

func (s SliceFrom) String() string { return fmt.Sprintf("[%d:]", s.Start) }

func (FieldWildcard) String() string { return "*" }

func (IndexWildcard) String() string { return "[*]" }

// String joins the sequence with dots, except before index expressions,
// which attach to the preceding step without a separator.
func (s Seq) String() string {
	var sb strings.Builder
	for i, item := range s {
		text := item.String()
		if i > 0 && !strings.HasPrefix(text, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func (a Alt) String() string {
	parts := make([]string, len(a))
	for i, branch := range a {
		parts[i] = branch.String()
	}
	return "(" + strings.Join(parts, "|") + ")"
}

func (s Star) String() string { return grouped(s.Sub) + "*" }

func (o Opt) String() string { return grouped(o.Sub) + "?" }

func (Empty) String() string { return "" }

// grouped renders a postfix operand, parenthesizing sub-expressions
// whose rendering would otherwise bind the postfix to their last step.
func grouped(q Query) string {
	switch sub := q.(type) {
	case Seq:
		if len(sub) == 1 {
			return grouped(sub[0])
		}
		return "(" + sub.String() + ")"
	case Star, Opt:
		return "(" + q.String() + ")"
	}
	return q.String()
}

// FormatField renders a field name as query text, quoting it when it
// could not appear as an unquoted identifier.
func FormatField(name string) string {
	if !needsQuoting(name) {
		return name
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(name); i++ {
		if c := name[i]; c == '\\' || c == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsQuoting(name string) bool {
	if name == "" || !identStart(name[0]) {
		return true
	}
	for i := 1; i < len(name); i++ {
		if !identRune(name[i]) {
			return true
		}
	}
	return false
}
