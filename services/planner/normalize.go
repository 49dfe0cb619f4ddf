package planner

// The provider boundary is untyped and inconsistent: a search may return a
// bare list or a map wrapping the list under one of several key names, and
// individual record fields vary in shape. All of that defensiveness lives
// here, in one seam; the nodes only ever see canonical option values.

// recordList coerces a provider result into a list of raw records. A map
// result is unwrapped under the given category keys, then "options".
func recordList(result any, keys ...string) []map[string]any {
	switch v := result.(type) {
	case []map[string]any:
		return v
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return records
	case map[string]any:
		for _, key := range append(keys, "options") {
			if inner, ok := v[key]; ok {
				return recordList(inner)
			}
		}
	}
	return nil
}

// capRecords truncates to the top-N records.
func capRecords(records []map[string]any, n int) []map[string]any {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}

// fieldString reads a string field, substituting empty for anything else.
func fieldString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			// Some providers nest display objects, e.g. {"name": "..."}.
			if name, ok := v["name"].(string); ok && name != "" {
				return name
			}
		}
	}
	return ""
}

// fieldNumber reads a numeric field, substituting zero for anything else.
func fieldNumber(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// fieldStrings reads a string-list field.
func fieldStrings(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
