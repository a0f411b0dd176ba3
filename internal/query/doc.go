package query

// Package query parses path expressions over JSON documents into an
// expression tree. A query is a regular expression whose alphabet is
// path steps rather than characters:
//
//   - field names: users, "first name" (quoted when outside [A-Za-z0-9_-])
//   - array indices: [0], inclusive ranges [1:3], open ranges [2:]
//   - wildcards: * for any field, [*] for any index
//   - composition: '.' sequencing, '|' alternation, postfix '*' and '?',
//     '(...)' grouping
//
// Dots separate steps, but an index expression attaches to the previous
// step without one, so users[0].name is three steps. Empty input parses
// to Empty, which matches the document root. Parsed expressions render
// back to query text via String and re-parse to an equivalent tree.
