// Package flash carries one-shot messages from one request to the next in an
// unsigned cookie.
//
// A Flash has two scopes. Values stored with Put are visible right away and
// are also scheduled for the next request. Values stored with Now are visible
// for the current request only. Values that arrive in the cookie are visible
// but not rescheduled; call Keep to carry them one more round trip.
//
//	f := flash.MustFromContext(r.Context())
//	_ = f.Success("Profile saved")
//	http.Redirect(w, r, "/profile", http.StatusSeeOther)
//
// On the next request:
//
//	if msg, ok := flash.MustFromContext(r.Context()).SuccessMessage(); ok {
//	    // render msg
//	}
//
// The cookie uses the same percent-encoded record format as the session
// cookie, without a signature. Do not put anything in a flash that must be
// trusted. A malformed cookie is ignored.
package flash
