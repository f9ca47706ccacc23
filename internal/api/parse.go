package api

import (
	"encoding/json"
	"strconv"
)

// The backend's field naming is inconsistent (legacy Spanish and English
// names coexist, lists arrive wrapped or bare). The helpers below parse
// "candidates in priority order" so each response shape is handled once.

// FirstString returns the first non-empty string found under keys.
func FirstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// FirstObject returns the first value under keys that is a JSON object.
func FirstObject(m map[string]any, keys ...string) (map[string]any, bool) {
	for _, k := range keys {
		if o, ok := m[k].(map[string]any); ok {
			return o, true
		}
	}
	return nil, false
}

// AsInt64 coerces a decoded JSON value (number or numeric string) to int64.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// AsString renders a decoded JSON scalar as a string ("" for non-scalars).
func AsString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// unwrapList accepts either a bare JSON array or an object wrapping the array
// under one of the given keys, and returns the array's raw elements.
func unwrapList(raw json.RawMessage, keys ...string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	for _, k := range keys {
		inner, ok := envelope[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &items); err == nil {
			return items, nil
		}
	}
	return nil, nil
}

// decodeList unwraps a possibly-enveloped array and unmarshals each element
// into T, skipping elements that do not decode.
func decodeList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	items, err := unwrapList(raw, keys...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// extractToken pulls the bearer token out of a login response, checking the
// known field names in priority order: token, accessToken, data.token,
// tokenAccess.
func extractToken(body map[string]any) string {
	if s := FirstString(body, "token", "accessToken"); s != "" {
		return s
	}
	if data, ok := FirstObject(body, "data"); ok {
		if s := FirstString(data, "token"); s != "" {
			return s
		}
	}
	return FirstString(body, "tokenAccess")
}

// extractUser pulls an explicit identity object out of a login response:
// user, usuario, data.user, data.usuario. Token-only responses return nil;
// the whole body is deliberately never used as a fallback.
func extractUser(body map[string]any) map[string]any {
	if u, ok := FirstObject(body, "user", "usuario"); ok {
		return u
	}
	if data, ok := FirstObject(body, "data"); ok {
		if u, ok := FirstObject(data, "user", "usuario"); ok {
			return u
		}
	}
	return nil
}
