package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Cookie describes a cookie to send or one that was received.
// MaxAge follows net/http: zero means a session cookie, a negative value
// deletes the cookie, a positive value is a lifetime in seconds.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// New returns a session cookie with the given name and value.
func New(name, value string) *Cookie {
	return &Cookie{Name: name, Value: value}
}

// Deletion returns a cookie that instructs the client to drop name.
func Deletion(name string) *Cookie {
	return &Cookie{Name: name, MaxAge: -1}
}

// IsDeletion reports whether the cookie asks the client to remove it.
func (c *Cookie) IsDeletion() bool {
	return c != nil && c.MaxAge < 0
}

// HTTP converts the descriptor into a net/http cookie.
func (c *Cookie) HTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
	if c.MaxAge < 0 {
		hc.Value = ""
		hc.Expires = time.Unix(0, 0)
	}
	return hc
}

// String renders the cookie as a Set-Cookie header value.
func (c *Cookie) String() string {
	return c.HTTP().String()
}

// Parse extracts the cookie called name from a raw Cookie header value.
func Parse(header, name string) (*Cookie, bool) {
	if header == "" || name == "" {
		return nil, false
	}
	cookies, err := http.ParseCookie(header)
	if err != nil {
		// A single malformed pair should not hide the others.
		cookies = parseLenient(header)
	}
	for _, hc := range cookies {
		if hc.Name == name {
			return &Cookie{Name: hc.Name, Value: hc.Value}, true
		}
	}
	return nil, false
}

func parseLenient(header string) []*http.Cookie {
	var out []*http.Cookie
	for part := range strings.SplitSeq(header, ";") {
		part = strings.TrimSpace(part)
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			continue
		}
		out = append(out, &http.Cookie{Name: name, Value: strings.Trim(value, `"`)})
	}
	return out
}

// Manager applies default attributes to cookies and moves them between
// descriptors and net/http requests and responses.
type Manager struct {
	defaults Options
}

// NewManager creates a Manager. Defaults are path "/", HttpOnly and SameSite=Lax.
func NewManager(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Defaults returns the options applied to every written cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Get reads the cookie called name from the request.
func (m *Manager) Get(r *http.Request, name string) (*Cookie, error) {
	hc, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrCookieNotFound
		}
		return nil, err
	}
	return &Cookie{Name: hc.Name, Value: hc.Value}, nil
}

// Apply fills the unset attributes of c from the manager defaults and opts.
// MaxAge is never touched: it carries the codec's decision.
func (m *Manager) Apply(c *Cookie, opts ...Option) *Cookie {
	options := applyOptions(m.defaults, opts)

	out := *c
	if out.Path == "" {
		out.Path = options.Path
	}
	if out.Domain == "" {
		out.Domain = options.Domain
	}
	out.Secure = out.Secure || options.Secure
	out.HttpOnly = out.HttpOnly || options.HttpOnly
	if out.SameSite == 0 {
		out.SameSite = options.SameSite
	}
	return &out
}

// Write adds a Set-Cookie header for c.
func (m *Manager) Write(w http.ResponseWriter, c *Cookie, opts ...Option) error {
	if c == nil {
		return nil
	}
	if c.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	hc := m.Apply(c, opts...).HTTP()
	if err := hc.Valid(); err != nil {
		return errors.Join(ErrInvalidName, err)
	}
	http.SetCookie(w, hc)
	return nil
}

// Delete writes a deletion cookie for name.
func (m *Manager) Delete(w http.ResponseWriter, name string) error {
	return m.Write(w, Deletion(name))
}
