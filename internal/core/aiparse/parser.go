// Package aiparse extracts the structured weekly narrative from free-form model output.
package aiparse

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/markdave123-py/healthsense/internal/models"
)

// ParseWeeklyInsights slices raw from the first '{' to the last '}' and decodes
// the result as {summary, key_patterns, suggestions}. It returns nil on any
// failure; callers fall back to rule-based output.
//
// The slice is a literal first/last index scan, not balanced-brace matching, so a
// '{' in prose before the object or a '}' after it makes extraction fail.
func ParseWeeklyInsights(raw string) *models.AIInsights {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil
	}

	var out models.AIInsights
	if !decodeField(fields, "summary", &out.Summary) ||
		!decodeField(fields, "key_patterns", &out.KeyPatterns) ||
		!decodeField(fields, "suggestions", &out.Suggestions) {
		return nil
	}
	return &out
}

// decodeField requires key to be present, non-null and of dst's type.
func decodeField(fields map[string]json.RawMessage, key string, dst any) bool {
	v, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return false
	}
	return json.Unmarshal(v, dst) == nil
}
