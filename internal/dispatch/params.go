package dispatch

import (
	"encoding/json"
	"fmt"
	"math"

	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/paths"
)

type ParamType string

const (
	TypeString      ParamType = "string"
	TypeInteger     ParamType = "integer"
	TypeNumber      ParamType = "number"
	TypeBoolean     ParamType = "boolean"
	TypeStringList  ParamType = "string[]"
	TypeIntegerList ParamType = "integer[]"
	TypeNumberList  ParamType = "number[]"
)

// Param declares one named argument of an operation.
type Param struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool
	// Default is applied when the argument is absent or null. A nil Default
	// on an optional param leaves the argument absent.
	Default any
	// Enum lists suggested values. Values outside it are still accepted.
	Enum []string
	// Path params are resolved against the storage root.
	Path bool
	// Index params must not be negative.
	Index bool
}

// normalize checks args against params and returns a new map holding
// defaults, coerced values and resolved paths. Arguments that are not
// declared are dropped.
func normalize(op Operation, args map[string]any, root string) (map[string]any, error) {
	out := make(map[string]any, len(op.Params))
	for _, param := range op.Params {
		raw, present := args[param.Name]
		if !present || raw == nil {
			if param.Required {
				return nil, errinfo.ValidationFailed(op.Phase, fmt.Sprintf("missing required parameter %s", param.Name))
			}
			if param.Default == nil {
				continue
			}
			raw = cloneDefault(param.Default)
		}
		value, err := coerce(param.Type, raw)
		if err != nil {
			return nil, errinfo.ValidationFailed(op.Phase, fmt.Sprintf("parameter %s: %v", param.Name, err))
		}
		if param.Index {
			if err := checkNonNegative(op.Phase, param.Name, value); err != nil {
				return nil, err
			}
		}
		if param.Path {
			value = paths.Resolve(value.(string), root)
		}
		out[param.Name] = value
	}
	return out, nil
}

func checkNonNegative(phase, name string, value any) error {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return errinfo.IndexOutOfRange(phase, fmt.Sprintf("%s %d must not be negative", name, v))
		}
	case []int:
		for _, item := range v {
			if item < 0 {
				return errinfo.IndexOutOfRange(phase, fmt.Sprintf("%s entry %d must not be negative", name, item))
			}
		}
	}
	return nil
}

func cloneDefault(value any) any {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []int:
		return append([]int{}, v...)
	case []float64:
		return append([]float64{}, v...)
	}
	return value
}

func coerce(kind ParamType, raw any) (any, error) {
	switch kind {
	case TypeString:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return value, nil
	case TypeBoolean:
		value, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", raw)
		}
		return value, nil
	case TypeInteger:
		return toInt(raw)
	case TypeNumber:
		return toFloat(raw)
	case TypeStringList:
		return coerceList(raw, func(item any) (string, error) {
			value, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("expected string, got %T", item)
			}
			return value, nil
		})
	case TypeIntegerList:
		return coerceList(raw, toInt)
	case TypeNumberList:
		return coerceList(raw, toFloat)
	}
	return nil, fmt.Errorf("unknown parameter type %q", kind)
}

func coerceList[T any](raw any, each func(any) (T, error)) ([]T, error) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []T:
		return append([]T{}, v...), nil
	case []string:
		items = anySlice(v)
	case []int:
		items = anySlice(v)
	case []float64:
		items = anySlice(v)
	default:
		return nil, fmt.Errorf("expected array, got %T", raw)
	}
	out := make([]T, 0, len(items))
	for idx, item := range items {
		value, err := each(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}
		out = append(out, value)
	}
	return out, nil
}

func anySlice[T any](values []T) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int(v), nil
	case json.Number:
		value, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %s", v)
		}
		return int(value), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", raw)
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		value, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected number, got %s", v)
		}
		return value, nil
	}
	return 0, fmt.Errorf("expected number, got %T", raw)
}
