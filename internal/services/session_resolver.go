package services

import (
	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

// SessionResolver turns the persisted session pointer into a live Session
// on startup and maintains the pointer across login and logout. It never
// fails: anything malformed degrades to the anonymous state.
type SessionResolver struct {
	adapter   storage.Adapter
	directory *AccountDirectory
}

func NewSessionResolver(adapter storage.Adapter, directory *AccountDirectory) *SessionResolver {
	return &SessionResolver{adapter: adapter, directory: directory}
}

// ResolveOnStartup rebuilds the session recorded by the last run. A missing
// or corrupt pointer, or a pointer to a vanished account, yields anonymous.
func (resolver *SessionResolver) ResolveOnStartup() (models.Session, bool) {
	raw, found := resolver.adapter.Get(storage.ActiveSessionKey)
	if !found {
		return models.Session{}, false
	}
	pointer, ok := storage.DecodeJSON[models.SessionPointer](raw)
	if !ok || pointer.AccountID == "" {
		return models.Session{}, false
	}

	account, ok := resolver.directory.FindByID(pointer.AccountID)
	if !ok || len(account.Members) == 0 {
		return models.Session{}, false
	}

	self := ResolveSelfMember(account, pointer.ActiveMember)
	return BuildSession(account, self), true
}

// Start persists a fresh pointer for the member who just authenticated and
// returns their session.
func (resolver *SessionResolver) Start(account models.Account, self models.Member) models.Session {
	pointer := models.SessionPointer{AccountID: account.ID, ActiveMember: self.Normalized}
	if encoded, ok := storage.EncodeJSON(pointer); ok {
		resolver.adapter.Set(storage.ActiveSessionKey, encoded)
	}
	return BuildSession(account, self)
}

// End forgets the persisted pointer. The caller drops its in-memory session
// and reverts to the anonymous dataset.
func (resolver *SessionResolver) End() {
	resolver.adapter.Remove(storage.ActiveSessionKey)
}

// ResolveSelfMember matches the pointer's active member against the account
// members, falling back to the first member when the record is off.
func ResolveSelfMember(account models.Account, normalized string) models.Member {
	for _, member := range account.Members {
		if member.Normalized == normalized {
			return member
		}
	}
	return account.Members[0]
}

// resolvePartnerMember picks the other half of the pair, with defensive
// fallbacks for records whose members list is damaged.
func resolvePartnerMember(account models.Account, self models.Member) models.Member {
	for _, member := range account.Members {
		if member.Normalized != self.Normalized {
			return member
		}
	}
	if len(account.Members) > 1 {
		return account.Members[1]
	}
	return account.Members[0]
}

// BuildSession assembles the ephemeral session record for one member of an
// account.
func BuildSession(account models.Account, self models.Member) models.Session {
	partner := resolvePartnerMember(account, self)
	members := make([]models.Member, len(account.Members))
	copy(members, account.Members)
	return models.Session{
		AccountID:       account.ID,
		MyUsername:      self.DisplayName,
		PartnerUsername: partner.DisplayName,
		Members:         members,
		StorageKey:      account.StorageKey,
	}
}
