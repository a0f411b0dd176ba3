// Package document holds fully materialised JSON values. Unlike a
// map-based representation, object members keep the order they appear
// in the input, which downstream traversal and output depend on.
package document

import "encoding/json"

// Kind discriminates the value categories.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is one object entry.
type Member struct {
	Key   string
	Value *Value
}

// Value is a single document node. Numbers keep their source text via
// json.Number. Items is populated for arrays, Members for objects.
type Value struct {
	Kind    Kind
	Bool    bool
	Num     json.Number
	Str     string
	Items   []*Value
	Members []Member
}

func Null() *Value { return &Value{Kind: KindNull} }

func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

func Number(n json.Number) *Value { return &Value{Kind: KindNumber, Num: n} }

func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

func Array(items ...*Value) *Value { return &Value{Kind: KindArray, Items: items} }

func Object(members ...Member) *Value { return &Value{Kind: KindObject, Members: members} }

// IsScalar reports whether v has no children to descend into.
func (v *Value) IsScalar() bool {
	return v.Kind != KindArray && v.Kind != KindObject
}

// Depth returns the maximum nesting depth. Scalars and empty
// containers have depth 1.
func (v *Value) Depth() int {
	deepest := 0
	switch v.Kind {
	case KindArray:
		for _, item := range v.Items {
			if d := item.Depth(); d > deepest {
				deepest = d
			}
		}
	case KindObject:
		for _, member := range v.Members {
			if d := member.Value.Depth(); d > deepest {
				deepest = d
			}
		}
	default:
		return 1
	}
	return 1 + deepest
}
