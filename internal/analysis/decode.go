package analysis

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// UnmarshalJSON decodes a plan leniently. Scalars accept numbers and
// booleans, lists accept a single value, and values of the wrong shape are
// left absent. Only a document that is not a JSON object is an error.
func (a *Analysis) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Analysis
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		DecodeHook: mapstructure.DecodeHookFuncType(conform),
		Result:     &out,
	})
	if err != nil {
		return err
	}

	// conform leaves nothing the decoder can reject; any residual field
	// error only drops that field.
	_ = dec.Decode(raw)
	*a = out
	return nil
}

// conform reshapes a raw JSON value to fit the target field type.
func conform(_ reflect.Type, to reflect.Type, data any) (any, error) {
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}

	switch to.Kind() {
	case reflect.String:
		if s, ok := scalar(data); ok {
			return s, nil
		}
		return nil, nil
	case reflect.Struct:
		if m, ok := data.(map[string]any); ok {
			return m, nil
		}
		return nil, nil
	case reflect.Slice:
		return conformList(to.Elem(), data), nil
	}
	return data, nil
}

func conformList(elem reflect.Type, data any) []any {
	items, ok := data.([]any)
	if !ok {
		if data == nil {
			return []any{}
		}
		items = []any{data}
	}

	out := make([]any, 0, len(items))
	for _, it := range items {
		switch elem.Kind() {
		case reflect.String:
			if s, ok := scalar(it); ok {
				out = append(out, s)
			}
		case reflect.Struct:
			if m, ok := it.(map[string]any); ok {
				out = append(out, m)
			}
		default:
			out = append(out, it)
		}
	}
	return out
}

func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}
