package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/requestid"
)

func serve(t *testing.T, inbound string) (ctxID, headerID string) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		r.Header.Set(requestid.Header, inbound)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	return ctxID, w.Header().Get(requestid.Header)
}

func TestMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serve(t, "")
	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, headerID)
}

func TestMiddleware_ReusesValidID(t *testing.T) {
	t.Parallel()

	ctxID, headerID := serve(t, "client-id-42")
	assert.Equal(t, "client-id-42", ctxID)
	assert.Equal(t, "client-id-42", headerID)
}

func TestMiddleware_RejectsInvalidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
	}{
		{"spaces", "has spaces"},
		{"header injection", "id\r\nInjected: x"},
		{"too long", strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctxID, _ := serve(t, tt.inbound)
			assert.NotEqual(t, tt.inbound, ctxID)
			assert.NotEmpty(t, ctxID)
		})
	}
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, requestid.FromContext(r.Context()))
}
