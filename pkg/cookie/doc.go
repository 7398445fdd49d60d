// Package cookie models the cookies exchanged by the session and flash codecs.
//
// Cookie is a plain descriptor: codecs produce one, and an adapter turns it
// into a Set-Cookie header. The core never touches a response itself.
//
// Manager holds the default attributes (path, domain, Secure, HttpOnly,
// SameSite) shared by every cookie an application writes, and converts between
// descriptors and net/http values.
//
//	man := cookie.NewManager(cookie.WithSecure(true))
//
//	c, err := man.Get(r, "sid")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // first visit
//	}
//
//	_ = man.Write(w, cookie.New("theme", "dark"))
//	_ = man.Delete(w, "theme")
//
// Parse reads a single cookie out of a raw Cookie header value for adapters
// that do not have an *http.Request at hand.
//
// # Configuration
//
// Config can be populated from the environment with github.com/caarlos0/env
// and passed to NewFromConfig.
package cookie
