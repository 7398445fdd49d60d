// Package session keeps per-user state in a signed cookie.
//
// A Session is an ordered key/value store with an id and an optional expiry.
// Nothing is stored on the server: the whole session travels in the cookie
//
//	<hmac signature>-<percent-encoded records>
//
// and the signature makes tampering evident. A cookie that fails verification,
// cannot be parsed, or carries an expired session is silently replaced by a
// fresh session. Callers never see an error for it, only an empty session.
//
// # Usage
//
// Build a Codec once at startup and hand it the signer:
//
//	s, err := signer.NewDerived("session", secrets...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	codec := session.NewCodec(s, session.WithLogger(log))
//
// Per request, resolve the incoming cookie, work with the session, and send
// back whatever Serialize returns:
//
//	sess := codec.Resolve(incoming, 30*time.Minute)
//	_ = sess.Put("user", "42")
//	if c := sess.Serialize("sid"); c != nil {
//	    _ = cookies.Write(w, c)
//	}
//
// Serialize returns nil for an untouched session without expiry, so reading a
// session never re-issues its cookie. An empty or expired session produces a
// deletion cookie.
//
// Codec.Middleware does all of that for net/http handlers and makes the
// session available through FromContext.
//
// # Expiry
//
// A non-negative TTL passed to Resolve sets a sliding expiry of now+TTL. The
// expiry is stored in the cookie under KeyExpiry and only ever moves forward.
//
// # Side storage
//
// With WithCache, Cache/Cached/Evict keep large values in a cache.Service under
// "<session id>:<key>", so only the id has to fit into the cookie.
//
// A Session belongs to one request and is not safe for concurrent use. The
// Codec is.
package session
