package session

import (
	"encoding/json"

	"github.com/google/uuid"
)

// IDKey is the reserved key under which the session identifier travels in
// the serialized session map.
const IDKey = "session_id"

// Session is a string key-value store scoped to one client. The whole
// session, identifier included, is carried in a signed cookie; nothing is
// kept server-side.
type Session struct {
	ID   string
	Data map[string]string
}

// NewSession creates an empty session with a freshly generated identifier.
func NewSession() *Session {
	return &Session{
		ID:   uuid.NewString(),
		Data: make(map[string]string),
	}
}

// Get retrieves a value. The reserved IDKey resolves to the session ID.
func (s *Session) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	if key == IDKey {
		return s.ID, s.ID != ""
	}
	val, ok := s.Data[key]
	return val, ok
}

// Set stores a value. Setting IDKey replaces the session identifier.
func (s *Session) Set(key, value string) {
	if s == nil {
		return
	}
	if key == IDKey {
		s.ID = value
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]string)
	}
	s.Data[key] = value
}

// SetIfAbsent assigns value only when key is missing or holds an empty
// value, and reports whether an assignment happened. Calling it again with
// the same key is a no-op, which makes session initialization idempotent
// across repeated requests from the same client.
func (s *Session) SetIfAbsent(key, value string) bool {
	if v, ok := s.Get(key); ok && v != "" {
		return false
	}
	s.Set(key, value)
	return true
}

// Delete removes a value. The session identifier cannot be deleted.
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil || key == IDKey {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data but keeps the identifier.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]string)
}

// Values returns the flat wire-format map including the identifier.
func (s *Session) Values() map[string]string {
	out := make(map[string]string, len(s.Data)+1)
	for k, v := range s.Data {
		if k == IDKey {
			continue
		}
		out[k] = v
	}
	if s.ID != "" {
		out[IDKey] = s.ID
	}
	return out
}

// MarshalJSON encodes the session as the flat map, session_id included.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes the flat map, splitting out the identifier.
func (s *Session) UnmarshalJSON(data []byte) error {
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.ID = values[IDKey]
	delete(values, IDKey)
	s.Data = values
	return nil
}
