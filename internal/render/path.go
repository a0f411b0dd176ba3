// Package render turns matches into terminal output: path headers,
// pretty or compact value formatting, and optional colour.
package render

import (
	"strconv"
	"strings"

	"github.com/jacoelho/jg/internal/automaton"
	"github.com/jacoelho/jg/internal/query"
)

// Path renders a match path. Fields print bare when they form a valid
// unquoted identifier (a letter or underscore followed by word
// characters and dashes), quoted otherwise; indices print as [i].
// Steps join with '.', except that an index attaches directly to the
// preceding step. The empty path renders as the empty string.
func Path(path []automaton.Step) string {
	var sb strings.Builder
	for i, step := range path {
		if step.IsIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.FormatUint(uint64(step.Index), 10))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(query.FormatField(step.Field))
	}
	return sb.String()
}
