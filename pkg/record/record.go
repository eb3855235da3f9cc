package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a loosely typed upstream object. It must not travel past the converters.
type Record map[string]any

// Extract returns the first candidate field whose value is present and not blank.
func Extract(rec Record, candidates ...string) (any, bool) {
	if rec == nil {
		return nil, false
	}
	for _, key := range candidates {
		value, ok := rec[key]
		if !ok || value == nil {
			continue
		}
		if strings.TrimSpace(Stringify(value)) == "" {
			continue
		}
		return value, true
	}
	return nil, false
}

// ExtractString is Extract with the value rendered as a trimmed string, "" when nothing matched.
func ExtractString(rec Record, candidates ...string) string {
	value, ok := Extract(rec, candidates...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(Stringify(value))
}

// ExtractStrings collects every non-blank candidate value in priority order.
func ExtractStrings(rec Record, candidates ...string) []string {
	var values []string
	for _, key := range candidates {
		if v := ExtractString(rec, key); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Stringify renders a decoded JSON value the way it was written upstream.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeList unwraps the two payload shapes the upstream API returns:
// a bare array, or an object carrying the array under "data".
func NormalizeList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []Record:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case map[string]any:
		if list, ok := v["data"].([]any); ok {
			return list
		}
	case Record:
		if list, ok := v["data"].([]any); ok {
			return list
		}
	}
	return []any{}
}

// NormalizeRecords is NormalizeList keeping only object elements.
func NormalizeRecords(raw any) []Record {
	list := NormalizeList(raw)
	records := make([]Record, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			records = append(records, Record(v))
		case Record:
			records = append(records, v)
		}
	}
	return records
}
