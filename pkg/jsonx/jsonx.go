// Package jsonx holds the tolerant JSON helpers used for user-supplied blobs
// (collection tags, item custom fields, alternative images). These never
// return an error: a malformed blob degrades to an empty value so a single
// corrupt row cannot break reads that aggregate over it.
package jsonx

import (
	"encoding/json"
	"strings"

	"github.com/colletro/colletro-backend/pkg/logger"
)

// StringArray decodes a JSON string array, returning an empty slice on any
// failure. nil is never returned.
func StringArray(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Warn().Str("raw", truncate(raw)).Msg("Malformed JSON array, degrading to empty")
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// MarshalStringArray encodes a string slice; nil encodes as [].
func MarshalStringArray(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ObjectMap decodes a JSON object, returning an empty map on any failure.
func ObjectMap(raw string) map[string]interface{} {
	if strings.TrimSpace(raw) == "" {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Warn().Str("raw", truncate(raw)).Msg("Malformed JSON object, degrading to empty")
		return map[string]interface{}{}
	}
	if out == nil {
		return map[string]interface{}{}
	}
	return out
}

// MarshalObjectMap encodes a map; nil encodes as {}.
func MarshalObjectMap(values map[string]interface{}) string {
	if values == nil {
		values = map[string]interface{}{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func truncate(s string) string {
	if len(s) > 80 {
		return s[:80]
	}
	return s
}
