package storage

import "encoding/json"

// DecodeJSON parses a persisted record. A blank raw value or malformed JSON
// yields (zero, false); every call site supplies its own documented default
// instead of scattering defensive parses.
func DecodeJSON[T any](raw string) (T, bool) {
	var decoded T
	if raw == "" {
		return decoded, false
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return decoded, false
	}
	return decoded, true
}

// EncodeJSON serializes a record for the adapter. Encoding plain data
// records cannot fail in practice; a failure returns ("", false) and the
// caller skips the write.
func EncodeJSON(value any) (string, bool) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	return string(encoded), true
}
