package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	s := session.NewSession()
	assert.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Data)
	assert.Empty(t, s.Data)

	other := session.NewSession()
	assert.NotEqual(t, s.ID, other.ID, "identifiers must be unique")
}

func TestSession_GetSet(t *testing.T) {
	t.Parallel()

	s := session.NewSession()
	s.Set("key", "value")

	got, ok := s.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSession_ReservedIDKey(t *testing.T) {
	t.Parallel()

	s := session.NewSession()

	id, ok := s.Get(session.IDKey)
	assert.True(t, ok)
	assert.Equal(t, s.ID, id)

	s.Set(session.IDKey, "replaced")
	assert.Equal(t, "replaced", s.ID)
	assert.NotContains(t, s.Data, session.IDKey)

	s.Delete(session.IDKey)
	assert.Equal(t, "replaced", s.ID, "identifier must survive Delete")
}

func TestSession_SetIfAbsent(t *testing.T) {
	t.Parallel()

	t.Run("assigns when missing", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession()
		assert.True(t, s.SetIfAbsent("hello", "World"))
		got, _ := s.Get("hello")
		assert.Equal(t, "World", got)
	})

	t.Run("no-op when present", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession()
		s.Set("hello", "World")
		assert.False(t, s.SetIfAbsent("hello", "Other"))
		got, _ := s.Get("hello")
		assert.Equal(t, "World", got)
	})

	t.Run("assigns over empty value", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession()
		s.Set("hello", "")
		assert.True(t, s.SetIfAbsent("hello", "World"))
		got, _ := s.Get("hello")
		assert.Equal(t, "World", got)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once := session.NewSession()
		once.ID = "fixed"
		once.SetIfAbsent("k", "v")

		twice := session.NewSession()
		twice.ID = "fixed"
		twice.SetIfAbsent("k", "v")
		twice.SetIfAbsent("k", "v")

		assert.Equal(t, once.Values(), twice.Values())
	})
}

func TestSession_Clear(t *testing.T) {
	t.Parallel()

	s := session.NewSession()
	s.Set("a", "1")
	s.Set("b", "2")
	s.Clear()

	assert.Empty(t, s.Data)
	assert.NotEmpty(t, s.ID, "identifier must survive Clear")
}

func TestSession_Values(t *testing.T) {
	t.Parallel()

	s := session.NewSession()
	s.Set("hello", "World")

	values := s.Values()
	assert.Equal(t, s.ID, values[session.IDKey])
	assert.Equal(t, "World", values["hello"])

	values["hello"] = "mutated"
	got, _ := s.Get("hello")
	assert.Equal(t, "World", got, "Values must return a copy")
}

func TestSession_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	s := session.NewSession()
	s.Set("session_hello", "World")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	// Wire format is the flat map including session_id
	var flat map[string]string
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, s.ID, flat[session.IDKey])
	assert.Equal(t, "World", flat["session_hello"])

	decoded := &session.Session{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, s.ID, decoded.ID)
	assert.Equal(t, s.Data, decoded.Data)
}
