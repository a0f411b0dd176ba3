package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDecode indicates the input is not a well-formed document.
var ErrDecode = errors.New("document: decode error")

// Decode reads a single JSON document from r. Object member order is
// preserved and numbers keep their source text.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrDecode, t)
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrDecode, tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := &Value{Kind: KindObject}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrDecode, tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: value})
	}
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: KindArray}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}

		item, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
}

func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return tok, nil
}
