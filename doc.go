// Package httpkit is a small HTTP vocabulary layer for net/http applications:
// signed cookie sessions, one-shot flash messages, content format negotiation
// and locale resolution, wired together once at startup.
//
// # Setup
//
// Load the configuration from the environment and build a Kit:
//
//	var cfg httpkit.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	kit, err := httpkit.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer kit.Close()
//
//	r := chi.NewRouter()
//	r.Use(kit.Middleware)
//
// HTTPKIT_SECRETS is required. The session signing key is derived from it
// with HKDF, so the same secret can safely be used elsewhere for other
// purposes.
//
// # Per request
//
// The middleware resolves the session and flash cookies, negotiates Accept and
// Content-Type, picks the locale and stores a *Context in the request context:
//
//	func profile(w http.ResponseWriter, r *http.Request) {
//		c := httpkit.MustFromContext(r.Context())
//		user, ok := c.Session().Get("user")
//		if !ok {
//			_ = c.Flash().Error("Please sign in")
//			c.Redirect("/login")
//			return
//		}
//		if c.Accept() == format.JSON {
//			// ...
//		}
//	}
//
// Changed sessions and scheduled flash values are written as cookies right
// before the first byte of the response. A cookie that fails verification is
// replaced by an empty session without an error; see package session.
//
// # Packages
//
//   - session: signed cookie sessions with sliding expiry and side storage
//   - flash: unsigned one-shot messages
//   - format: Accept/Content-Type classification and a custom format registry
//   - locale: Accept-Language negotiation
//   - cookie: cookie descriptors and a manager applying default attributes
//   - codec, kv, signer: the cookie payload format and its signature
//   - cache: memory and Redis stores for session side storage
//   - header, status, method: HTTP vocabulary
package httpkit
