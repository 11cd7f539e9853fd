package settings

import "fmt"

// propType enumerates the value types a property may carry. Coercion is
// deliberately forgiving toward JSON decoding, which hands back float64
// for numbers and []any / map[string]any for collections.
type propType int

const (
	typeString propType = iota
	typeBool
	typeInt
	typeStringList
	typeStringMap
)

// coerceValue normalizes raw into the canonical Go representation for
// typ: string, bool, int64, []string, or map[string]string. The returned
// value never aliases mutable input.
func coerceValue(typ propType, raw any) (any, error) {
	switch typ {
	case typeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil

	case typeBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return v, nil

	case typeInt:
		switch n := raw.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case uint32:
			return int64(n), nil
		case float64:
			if n != float64(int64(n)) {
				return nil, fmt.Errorf("expected integer, got %v", n)
			}
			return int64(n), nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", raw)
		}

	case typeStringList:
		switch l := raw.(type) {
		case []string:
			out := make([]string, len(l))
			copy(out, l)
			return out, nil
		case []any:
			out := make([]string, 0, len(l))
			for _, item := range l {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected string list element, got %T", item)
				}
				out = append(out, s)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("expected string list, got %T", raw)
		}

	case typeStringMap:
		switch m := raw.(type) {
		case map[string]string:
			out := make(map[string]string, len(m))
			for k, v := range m {
				out[k] = v
			}
			return out, nil
		case map[string]any:
			out := make(map[string]string, len(m))
			for k, item := range m {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected string map value for %q, got %T", k, item)
				}
				out[k] = s
			}
			return out, nil
		default:
			return nil, fmt.Errorf("expected string map, got %T", raw)
		}
	}
	return nil, fmt.Errorf("unhandled property type %d", typ)
}

// deepCopyValue copies a canonical property value. Scalars are returned
// as-is; lists and maps are duplicated.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	default:
		return v
	}
}

// valueEqual compares two canonical property values.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case map[string]string:
		bv, ok := b.(map[string]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, item := range av {
			if bv[k] != item {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
