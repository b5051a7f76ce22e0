package tools

import (
	"fmt"
	"strconv"
)

// Argument coercion helpers. Model-emitted arguments arrive as generic JSON
// values; the model sometimes sends a number where a string is declared and
// vice versa, so lookups coerce rather than type-assert strictly.

func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func numberArg(args map[string]any, key string) float64 {
	v, ok := args[key]
	if !ok || v == nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func intArg(args map[string]any, key string) int {
	return int(numberArg(args, key))
}
