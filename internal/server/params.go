package server

// boolParam extracts a bool from tool arguments.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// floatParam extracts a number from tool arguments. JSON numbers decode as
// float64; ints are accepted for callers that build arguments in Go.
func floatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}
