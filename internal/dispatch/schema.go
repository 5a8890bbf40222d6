package dispatch

import "encoding/json"

// InputSchema describes the operation's arguments as a JSON Schema object.
func (o Operation) InputSchema() map[string]any {
	properties := make(map[string]any, len(o.Params))
	required := []string{}
	for _, param := range o.Params {
		properties[param.Name] = param.schema()
		if param.Required {
			required = append(required, param.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (o Operation) RawInputSchema() (json.RawMessage, error) {
	return json.Marshal(o.InputSchema())
}

func (p Param) schema() map[string]any {
	out := map[string]any{}
	switch p.Type {
	case TypeStringList:
		out["type"] = "array"
		out["items"] = map[string]any{"type": "string"}
	case TypeIntegerList:
		items := map[string]any{"type": "integer"}
		if p.Index {
			items["minimum"] = 0
		}
		out["type"] = "array"
		out["items"] = items
	case TypeNumberList:
		out["type"] = "array"
		out["items"] = map[string]any{"type": "number"}
	default:
		out["type"] = string(p.Type)
		if p.Index {
			out["minimum"] = 0
		}
	}
	if p.Description != "" {
		out["description"] = p.Description
	}
	if p.Default != nil {
		out["default"] = p.Default
	}
	if len(p.Enum) > 0 {
		out["examples"] = p.Enum
	}
	return out
}
