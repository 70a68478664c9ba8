package lead

import (
	"crypto/rand"
	"math/big"
)

const (
	slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	SlugLength   = 6
)

// GenerateSlug returns a plan id of SlugLength characters from
// [a-zA-Z0-9]. Uniqueness is not checked here.
func GenerateSlug() (string, error) {
	max := big.NewInt(int64(len(slugAlphabet)))
	b := make([]byte, SlugLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = slugAlphabet[n.Int64()]
	}
	return string(b), nil
}
