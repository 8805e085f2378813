package cookie

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// derivedKeySize is 32 bytes for both HMAC-SHA256 and AES-256.
	derivedKeySize = 32

	signInfo    = "sessionkit-cookie-sign-v1"
	encryptInfo = "sessionkit-cookie-encrypt-v1"
)

// keySet holds the signing and encryption keys derived from one secret.
// Separate keys per purpose give domain separation even though both come
// from the same configured secret.
type keySet struct {
	sign    []byte
	encrypt []byte
}

// deriveKeySet expands a configured secret into purpose-bound keys using
// HKDF-SHA256. The secret itself is never used directly as key material.
func deriveKeySet(secret string) (keySet, error) {
	sign, err := deriveKey(secret, signInfo)
	if err != nil {
		return keySet{}, err
	}
	encrypt, err := deriveKey(secret, encryptInfo)
	if err != nil {
		return keySet{}, err
	}
	return keySet{sign: sign, encrypt: encrypt}, nil
}

func deriveKey(secret, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	key := make([]byte, derivedKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}
