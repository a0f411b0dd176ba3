package query

// tokenKind enumerates the lexical token categories.
type tokenKind uint8

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenQuoted
	tokenInteger
	tokenDot
	tokenPipe
	tokenStar
	tokenQuestion
	tokenLBracket
	tokenRBracket
	tokenLParen
	tokenRParen
	tokenColon
	tokenRegex
)

// token is a single lexical unit with its byte offset in the source.
// text holds the unescaped name for identifiers and the pattern body
// for regex tokens; num holds the value of integer tokens.
type token struct {
	kind tokenKind
	text string
	num  uint32
	pos  int
}

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenQuoted:
		return "quoted identifier"
	case tokenInteger:
		return "integer"
	case tokenDot:
		return "'.'"
	case tokenPipe:
		return "'|'"
	case tokenStar:
		return "'*'"
	case tokenQuestion:
		return "'?'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenColon:
		return "':'"
	case tokenRegex:
		return "regex pattern"
	}
	return "unknown"
}
