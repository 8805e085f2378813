// Package cookie provides a secure HTTP cookie manager with signing,
// authenticated encryption and a plain-cookie jar.
//
// # Overview
//
// The Manager type is the entry point. It is initialised with one or more
// secret keys and a set of default cookie Options. Each secret is expanded
// into separate signing and encryption keys via HKDF-SHA256, giving HMAC
// signatures tamper detection and AES-GCM encryption confidentiality without
// key reuse across purposes.
//
// Once created you can:
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – signed cookies (integrity only)
//   • SetEncrypted(), GetEncrypted() – encrypted cookies (integrity + privacy)
//   • Sign(), Verify(), Encrypt(), Decrypt() – raw token primitives for
//     callers that manage their own transport, such as a session codec
//   • Jar(), WriteJar() – bulk view over a request's plain cookies
//
// # Architecture
//
// Signing uses crypto/hmac with SHA-256 over the base64 encoded value.
// Encryption uses AES-256 in GCM mode with a randomly generated nonce that
// is prepended to the ciphertext. Multiple secrets are supported to enable
// key rotation – the first is used for writing, the rest for reading.
//
// # Usage
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//		_ = man.SetSigned(w, "token", "opaque-value")
//	})
//
// # Configuration
//
// The Config struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for common failure scenarios
// such as ErrCookieNotFound, ErrInvalidSignature and ErrDecryptionFailed so
// callers can use errors.Is.
package cookie
