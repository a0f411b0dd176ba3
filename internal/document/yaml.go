package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
)

// DecodeYAML reads a single YAML document from r into the same value
// model as Decode. Mapping key order is preserved.
func DecodeYAML(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return fromYAML(raw)
}

func fromYAML(raw any) (*Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Number(json.Number(strconv.FormatInt(int64(v), 10))), nil
	case int64:
		return Number(json.Number(strconv.FormatInt(v, 10))), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(v, 10))), nil
	case float64:
		return Number(json.Number(strconv.FormatFloat(v, 'g', -1, 64))), nil
	case yaml.MapSlice:
		obj := &Value{Kind: KindObject}
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			value, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Members = append(obj.Members, Member{Key: key, Value: value})
		}
		return obj, nil
	case []any:
		arr := &Value{Kind: KindArray}
		for _, item := range v {
			value, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, value)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: unsupported YAML value %T", ErrDecode, raw)
}
