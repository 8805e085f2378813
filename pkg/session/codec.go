package session

import (
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Codec turns a Session into an opaque ASCII-safe token and back. In signed
// mode the payload is readable but tamper-proof; in encrypted mode it is
// also confidential. Both modes are content-deterministic only: encrypted
// output randomizes per call through the nonce.
type Codec struct {
	manager *cookie.Manager
	encrypt bool
}

// NewCodec creates a codec on top of a cookie manager. When encrypt is
// false tokens are HMAC-signed JSON; when true they are sealed with
// AES-GCM.
func NewCodec(manager *cookie.Manager, encrypt bool) *Codec {
	return &Codec{manager: manager, encrypt: encrypt}
}

// Encode serializes the session map and protects it with the process
// secret. Pure transformation, no side effects.
func (c *Codec) Encode(s *Session) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}

	if c.encrypt {
		token, err := c.manager.Encrypt(string(payload))
		if err != nil {
			return "", errors.Join(ErrEncodeFailed, err)
		}
		return token, nil
	}

	return c.manager.Sign(string(payload)), nil
}

// Decode validates and deserializes a token. Every failure mode - wrong
// encoding, truncation, bad signature, failed decryption, missing
// identifier - collapses into ErrInvalidToken so callers degrade to a fresh
// session instead of surfacing an error to the client.
func (c *Codec) Decode(token string) (*Session, error) {
	var (
		payload string
		err     error
	)
	if c.encrypt {
		payload, err = c.manager.Decrypt(token)
	} else {
		payload, err = c.manager.Verify(token)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	s := &Session{}
	if err := json.Unmarshal([]byte(payload), s); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if s.ID == "" {
		return nil, ErrInvalidToken
	}
	return s, nil
}
