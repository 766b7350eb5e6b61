package services

import (
	"errors"
	"strings"

	"github.com/wanderpair/wanderpair/internal/storage"
)

var (
	ErrNamesRequired           = errors.New("pair names required")
	ErrSameNames               = errors.New("pair names identical")
	ErrPasswordTooShort        = errors.New("password too short")
	ErrPasswordConfirmMismatch = errors.New("password confirmation mismatch")
)

const MinPasswordLength = 6

// PairCredentials is a validated, normalized pair of member names plus the
// shared password. Display names keep the casing the person typed.
type PairCredentials struct {
	MyDisplayName      string
	PartnerDisplayName string
	MyNormalized       string
	PartnerNormalized  string
	Password           string
	PairKey            string
}

// NormalizePairInput validates the name pair shared by login and
// registration: both names present and distinct after normalization.
func NormalizePairInput(myName string, partnerName string, password string) (PairCredentials, error) {
	credentials := PairCredentials{
		MyDisplayName:      strings.TrimSpace(myName),
		PartnerDisplayName: strings.TrimSpace(partnerName),
		MyNormalized:       storage.Normalize(myName),
		PartnerNormalized:  storage.Normalize(partnerName),
		Password:           strings.TrimSpace(password),
	}
	if credentials.MyNormalized == "" || credentials.PartnerNormalized == "" {
		return PairCredentials{}, ErrNamesRequired
	}
	if credentials.MyNormalized == credentials.PartnerNormalized {
		return PairCredentials{}, ErrSameNames
	}
	credentials.PairKey = storage.PairKey(myName, partnerName)
	return credentials, nil
}

// ValidateRegistrationInput additionally enforces the password rules that
// only apply when a pair is first created.
func ValidateRegistrationInput(myName string, partnerName string, password string, confirmPassword string) (PairCredentials, error) {
	credentials, err := NormalizePairInput(myName, partnerName, password)
	if err != nil {
		return PairCredentials{}, err
	}
	if len([]rune(credentials.Password)) < MinPasswordLength {
		return PairCredentials{}, ErrPasswordTooShort
	}
	if confirmPassword != "" && credentials.Password != strings.TrimSpace(confirmPassword) {
		return PairCredentials{}, ErrPasswordConfirmMismatch
	}
	return credentials, nil
}
