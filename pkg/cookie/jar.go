package cookie

import (
	"maps"
	"net/http"
	"slices"
)

// Jar is a mutable string-to-string view over the plain (unsigned) cookies
// of a single request. Mutations are local until Write emits them as
// Set-Cookie headers.
type Jar struct {
	values map[string]string
}

// Jar collects the request's plain cookies into a Jar. Names listed in
// except are skipped, which keeps the signed session token out of the plain
// view. Cookies the standard library could not parse are already dropped
// individually by r.Cookies, so a single malformed cookie never fails the
// request.
func (m *Manager) Jar(r *http.Request, except ...string) *Jar {
	values := make(map[string]string)
	for _, c := range r.Cookies() {
		if c.Name == "" || slices.Contains(except, c.Name) {
			continue
		}
		values[c.Name] = c.Value
	}
	return &Jar{values: values}
}

func (j *Jar) Get(name string) (string, bool) {
	v, ok := j.values[name]
	return v, ok
}

func (j *Jar) Set(name, value string) {
	j.values[name] = value
}

// SetIfAbsent assigns value only when name is missing or holds an empty
// value. It reports whether an assignment happened, and is a no-op on
// repeated calls with the same name.
func (j *Jar) SetIfAbsent(name, value string) bool {
	if v, ok := j.values[name]; ok && v != "" {
		return false
	}
	j.values[name] = value
	return true
}

func (j *Jar) Delete(name string) {
	delete(j.values, name)
}

func (j *Jar) Len() int {
	return len(j.values)
}

// Values returns a copy of the jar's contents.
func (j *Jar) Values() map[string]string {
	out := make(map[string]string, len(j.values))
	maps.Copy(out, j.values)
	return out
}

// Write emits one Set-Cookie header per jar entry with the manager's
// defaults and the given options applied uniformly. Jar cookies stay
// client-visible, so HttpOnly is forced off unless an option re-enables it.
func (m *Manager) WriteJar(w http.ResponseWriter, j *Jar, opts ...Option) error {
	opts = append([]Option{WithHTTPOnly(false)}, opts...)
	for _, name := range slices.Sorted(maps.Keys(j.values)) {
		if err := m.Set(w, name, j.values[name], opts...); err != nil {
			return err
		}
	}
	return nil
}
