package models

// Member is one half of a paired account. DisplayName keeps the casing the
// person typed at registration; Normalized is the trimmed lower-case form
// used for matching and key derivation.
type Member struct {
	DisplayName string `json:"displayName"`
	Normalized  string `json:"normalized"`
}

// Account is one persisted pair of travellers sharing a storage namespace.
// Accounts are created only by registration and never deleted. Members may
// be absent on records written by pre-pairing app versions; the directory
// backfills them on first login.
type Account struct {
	ID         string   `json:"id"`
	StorageKey string   `json:"storageKey"`
	Members    []Member `json:"members,omitempty"`
	Password   string   `json:"password"`
	CreatedAt  string   `json:"createdAt"`
}

// SessionPointer records which account and member were active when the app
// last ran. It is the only session state that survives a restart.
type SessionPointer struct {
	AccountID    string `json:"accountId"`
	ActiveMember string `json:"activeMember"`
}

// Session is the in-memory identity of the pair currently using the app.
// It is rebuilt on every startup and discarded on logout.
type Session struct {
	AccountID       string
	MyUsername      string
	PartnerUsername string
	Members         []Member
	StorageKey      string
}
