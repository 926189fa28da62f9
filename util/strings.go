package util

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// RandomString32 returns a 32 bytes long string with 24 bytes (192 bits) of entropy.
func RandomString32() (string, error) {

	b := make([]byte, 24)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	result := base64.URLEncoding.EncodeToString(b)

	if len(result) < 32 {
		return "", errors.New("random string too short")
	}

	if len(result) > 32 {
		result = result[:32]
	}

	return result, nil
}
