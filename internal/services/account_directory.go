package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/storage"
)

var (
	ErrPairExists       = errors.New("pair already registered")
	ErrAccountNotFound  = errors.New("account not found")
	ErrPasswordMismatch = errors.New("password mismatch")
)

// AccountDirectory keeps the persisted list of paired accounts under the
// global accounts key and answers registration and login for the pair gate.
// The shared password is a nickname gate, not an authentication boundary,
// and is stored and compared as plain text on purpose.
type AccountDirectory struct {
	adapter storage.Adapter
	now     func() time.Time
	newID   func() string
}

func NewAccountDirectory(adapter storage.Adapter) *AccountDirectory {
	return &AccountDirectory{
		adapter: adapter,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// loadAccounts reads the directory; an absent or malformed record defaults
// to an empty directory.
func (directory *AccountDirectory) loadAccounts() []models.Account {
	raw, found := directory.adapter.Get(storage.AccountsKey)
	if !found {
		return nil
	}
	accounts, ok := storage.DecodeJSON[[]models.Account](raw)
	if !ok {
		return nil
	}
	return accounts
}

func (directory *AccountDirectory) saveAccounts(accounts []models.Account) {
	encoded, ok := storage.EncodeJSON(accounts)
	if !ok {
		return
	}
	directory.adapter.Set(storage.AccountsKey, encoded)
}

// Register creates a new paired account. The pair key must not already be
// taken; the key is symmetric, so swapping the two names cannot sneak a
// duplicate past the check.
func (directory *AccountDirectory) Register(myName string, partnerName string, password string, confirmPassword string) (models.Account, error) {
	credentials, err := ValidateRegistrationInput(myName, partnerName, password, confirmPassword)
	if err != nil {
		return models.Account{}, err
	}

	accounts := directory.loadAccounts()
	for _, existing := range accounts {
		if existing.StorageKey == credentials.PairKey {
			return models.Account{}, ErrPairExists
		}
	}

	account := models.Account{
		ID:         directory.newID(),
		StorageKey: credentials.PairKey,
		Members: []models.Member{
			{DisplayName: credentials.MyDisplayName, Normalized: credentials.MyNormalized},
			{DisplayName: credentials.PartnerDisplayName, Normalized: credentials.PartnerNormalized},
		},
		Password:  credentials.Password,
		CreatedAt: directory.now().Format(time.RFC3339),
	}

	directory.saveAccounts(append(accounts, account))
	return account, nil
}

// Login matches the pair key and checks the shared password. Accounts
// written before the pairing model carry no members; the first successful
// login migrates them from the supplied names.
func (directory *AccountDirectory) Login(myName string, partnerName string, password string) (models.Account, error) {
	credentials, err := NormalizePairInput(myName, partnerName, password)
	if err != nil {
		return models.Account{}, err
	}

	accounts := directory.loadAccounts()
	for index, existing := range accounts {
		if existing.StorageKey != credentials.PairKey {
			continue
		}
		if existing.Password != credentials.Password {
			return models.Account{}, ErrPasswordMismatch
		}
		if migrateLegacyAccount(&accounts[index], credentials) {
			directory.saveAccounts(accounts)
		}
		return accounts[index], nil
	}

	return models.Account{}, ErrAccountNotFound
}

// ResetPassword replaces the shared password for a pair, the maintenance
// path for couples locked out of their own gate. The new password must meet
// the registration rule.
func (directory *AccountDirectory) ResetPassword(myName string, partnerName string, newPassword string) error {
	credentials, err := NormalizePairInput(myName, partnerName, newPassword)
	if err != nil {
		return err
	}
	if len([]rune(credentials.Password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	accounts := directory.loadAccounts()
	for index, existing := range accounts {
		if existing.StorageKey == credentials.PairKey {
			accounts[index].Password = credentials.Password
			directory.saveAccounts(accounts)
			return nil
		}
	}
	return ErrAccountNotFound
}

// FindByID resolves an account referenced by a persisted session pointer.
func (directory *AccountDirectory) FindByID(accountID string) (models.Account, bool) {
	if accountID == "" {
		return models.Account{}, false
	}
	for _, account := range directory.loadAccounts() {
		if account.ID == accountID {
			return account, true
		}
	}
	return models.Account{}, false
}

// migrateLegacyAccount backfills the members list on a v1 record (written
// before members existed) and reports whether the record changed.
func migrateLegacyAccount(account *models.Account, credentials PairCredentials) bool {
	if len(account.Members) > 0 {
		return false
	}
	account.Members = []models.Member{
		{DisplayName: credentials.MyDisplayName, Normalized: credentials.MyNormalized},
		{DisplayName: credentials.PartnerDisplayName, Normalized: credentials.PartnerNormalized},
	}
	return true
}
