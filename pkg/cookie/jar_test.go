package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJar_LoadAndValues(t *testing.T) {
	t.Parallel()
	m := newTestManager(t)

	r := &http.Request{Header: http.Header{}}
	r.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	r.AddCookie(&http.Cookie{Name: "b", Value: "2"})
	r.AddCookie(&http.Cookie{Name: "_session_id", Value: "opaque"})

	jar := m.Jar(r, "_session_id")
	if jar.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", jar.Len())
	}
	if _, ok := jar.Get("_session_id"); ok {
		t.Error("excluded cookie present in jar")
	}

	values := jar.Values()
	values["a"] = "mutated"
	if v, _ := jar.Get("a"); v != "1" {
		t.Error("Values() did not return a copy")
	}
}

func TestJar_SetIfAbsent(t *testing.T) {
	t.Parallel()
	m := newTestManager(t)
	jar := m.Jar(&http.Request{Header: http.Header{}})

	if !jar.SetIfAbsent("hello", "World") {
		t.Error("first SetIfAbsent() = false, want true")
	}
	if jar.SetIfAbsent("hello", "Other") {
		t.Error("second SetIfAbsent() = true, want false")
	}
	if v, _ := jar.Get("hello"); v != "World" {
		t.Errorf("Get() = %q, want %q", v, "World")
	}

	// Empty values count as absent
	jar.Set("empty", "")
	if !jar.SetIfAbsent("empty", "filled") {
		t.Error("SetIfAbsent() on empty value = false, want true")
	}
}

func TestWriteJar(t *testing.T) {
	t.Parallel()
	m := newTestManager(t)
	jar := m.Jar(&http.Request{Header: http.Header{}})
	jar.Set("one", "1")
	jar.Set("two", "2")

	w := httptest.NewRecorder()
	if err := m.WriteJar(w, jar); err != nil {
		t.Fatalf("WriteJar() error = %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 Set-Cookie headers, got %d", len(cookies))
	}
	for _, c := range cookies {
		if c.HttpOnly {
			t.Errorf("jar cookie %q is HttpOnly, want client-visible", c.Name)
		}
		if c.SameSite != http.SameSiteStrictMode {
			t.Errorf("jar cookie %q SameSite = %v, want Strict", c.Name, c.SameSite)
		}
		if c.Path != "/" {
			t.Errorf("jar cookie %q Path = %q, want /", c.Name, c.Path)
		}
	}
}
