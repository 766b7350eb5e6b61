package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("random string length must not be negative")
	errEmptyAlphabet  = errors.New("random string alphabet must not be empty")
)

// RandomString draws an unbiased string of the requested length from the
// alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case len(alphabet) == 0:
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	generated := make([]byte, 0, length)
	for len(generated) < length {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		generated = append(generated, alphabet[position.Int64()])
	}

	return string(generated), nil
}
