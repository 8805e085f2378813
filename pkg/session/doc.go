// Package session implements a client-side session store: the whole session
// map, identifier included, travels in a single signed (optionally
// encrypted) cookie. There is no server-side persistence, which makes every
// request a self-contained transformation and removes cross-request shared
// state entirely.
//
// # Overview
//
// Three pieces cooperate:
//
//   • Session – a string key-value map with a reserved session_id entry,
//     generated on first access. SetIfAbsent gives idempotent
//     initialization across repeated requests.
//   • Codec – pure Encode/Decode between a Session and an opaque token,
//     built on the cookie package's signing and encryption primitives.
//   • Manager – Load on the way in, Save on the way out, plus Middleware
//     that does both around a handler and parks the session in the request
//     context.
//
// # Failure policy
//
// A token that fails validation for any reason - tampering, truncation,
// wrong encoding, expired key - is treated as absent: Load hands back a
// fresh session with a new identifier and the request proceeds. No failure
// mode in this package propagates to the client.
//
// # Usage
//
//	cookieMgr, _ := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	sessions := session.New(cookieMgr, session.WithTTL(24*time.Hour))
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
//		sess := session.MustFromContext(r.Context())
//		sess.SetIfAbsent("session_hello", "World")
//		_ = json.NewEncoder(w).Encode(sess)
//	})
//	http.ListenAndServe(":8080", sessions.Middleware(mux))
//
// # Configuration
//
// Config carries the recognized knobs - cookie name, same-site policy,
// TTL, encryption mode, Secure flag - with env tags for
// github.com/caarlos0/env. TTL 0 issues a browser-session cookie; a nonzero
// TTL slides because Save re-issues the cookie on every response.
package session
