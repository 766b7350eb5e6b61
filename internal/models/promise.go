package models

import "strings"

// SharedPromise is the pair's standing travel vow: a short mantra plus the
// next ritual they agreed on. An all-empty promise is never persisted.
type SharedPromise struct {
	Mantra  string `json:"mantra"`
	Ritual  string `json:"ritual"`
	SavedAt string `json:"savedAt,omitempty"`
}

// IsEmpty reports whether both fields are blank after trimming, the state
// in which the persisted key must be removed rather than written.
func (promise SharedPromise) IsEmpty() bool {
	return strings.TrimSpace(promise.Mantra) == "" && strings.TrimSpace(promise.Ritual) == ""
}
