package server

// StringParam returns params[key] as a string, or def when absent.
func StringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// BoolParam returns params[key] as a bool, or def when absent. The strings
// "true" and "false" are accepted as well.
func BoolParam(params map[string]any, key string, def bool) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return def
}
