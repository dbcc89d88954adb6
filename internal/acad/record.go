package acad

import (
	"strconv"
	"strings"
)

// Record is a single raw entry from the ACAD API. The API is loosely typed:
// fields come and go between exports and numeric fields sometimes arrive as
// strings, so records are kept as decoded JSON objects and read through the
// accessors below.
type Record map[string]interface{}

// Str returns the value for key as a trimmed string. Missing keys, explicit
// nulls and unsupported value types all yield the empty string.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	}

	return ""
}

// Has reports whether key is present with a non-empty value.
func (r Record) Has(key string) bool {
	return r.Str(key) != ""
}

// StrOr returns the value for key, or fallback when the key is absent or
// empty.
func (r Record) StrOr(key, fallback string) string {
	if s := r.Str(key); s != "" {
		return s
	}
	return fallback
}

// FirstOf returns the first non-empty value among keys, or the empty string.
func (r Record) FirstOf(keys ...string) string {
	for _, key := range keys {
		if s := r.Str(key); s != "" {
			return s
		}
	}
	return ""
}

// Int parses the value for key as an integer.
func (r Record) Int(key string) (int64, error) {
	return strconv.ParseInt(r.Str(key), 10, 64)
}
