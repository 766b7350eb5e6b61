package storage

import (
	"sort"
	"strings"
)

// Global keys shared by every session.
const (
	AccountsKey      = "travel_pair_accounts"
	ActiveSessionKey = "travel_pair_active_session"

	// LegacyDestinationsKey is the un-namespaced key written by the
	// single-user app versions. It is read once during migration and still
	// written for anonymous use.
	LegacyDestinationsKey = "custom_destinations"
)

// Per-session key suffixes.
const (
	DestinationsSuffix = "destinations_state"
	PinsSuffix         = "pinned_achievements"
	PromptsSuffix      = "connection_prompts"
	PromiseSuffix      = "shared_promise"
)

// Normalize folds a member name for matching: surrounding whitespace is
// dropped and the remainder lower-cased.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PairKey derives the shared storage key for two member names. Sorting the
// normalized names makes the key symmetric, so either member may appear in
// either role at registration or login.
func PairKey(nameA string, nameB string) string {
	members := []string{Normalize(nameA), Normalize(nameB)}
	sort.Strings(members)
	return strings.Join(members, "__")
}

// NamespacedKey scopes a suffix under a pair's storage key.
func NamespacedKey(storageKey string, suffix string) string {
	return storageKey + "_" + suffix
}
