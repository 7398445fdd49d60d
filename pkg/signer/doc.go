// Package signer produces deterministic signatures over cookie payloads.
//
// The Signer interface is the only contract the cookie codec depends on:
// the same payload signed with the same secret always yields the same
// signature. HMAC is the stock implementation. It signs with HMAC-SHA256 and
// hex-encodes the result, so a signature never contains the '-' that separates
// it from the payload in a session cookie.
//
// Multiple secrets enable key rotation: the first secret signs, every secret
// verifies.
//
//	s, err := signer.New(os.Getenv("HTTPKIT_SECRETS"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sig := s.Sign(payload)
//	ok := s.Verify(payload, sig)
//
// Derive turns a single master secret into independent purpose-bound keys with
// HKDF-SHA256, so the session key never equals a key used elsewhere.
package signer
