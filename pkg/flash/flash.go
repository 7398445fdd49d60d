package flash

import (
	"strconv"

	"github.com/dmitrymomot/httpkit/pkg/codec"
	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/kv"
)

// Reserved keys used by the message helpers.
const (
	KeyError   = "error"
	KeySuccess = "success"
)

// Flash is a key/value store for one-shot messages. The embedded store holds
// what is visible during the current request; out holds what is sent to the
// next one. It is owned by a single request and is not safe for concurrent use.
type Flash struct {
	kv.Store
	out kv.Store
}

// New returns an empty flash.
func New() *Flash {
	return &Flash{}
}

// Resolve rebuilds the flash carried by ck. Incoming values are visible for
// the current request only; call Keep to carry them further. A missing or
// malformed cookie yields an empty flash.
func Resolve(ck *cookie.Cookie) *Flash {
	f := New()
	if ck == nil || ck.Value == "" {
		return f
	}
	if err := codec.Decode(ck.Value, &f.Store); err != nil {
		return New()
	}
	return f
}

// Put stores value for this request and schedules it for the next one.
func (f *Flash) Put(key, value string) error {
	if err := f.Store.Put(key, value); err != nil {
		return err
	}
	return f.out.Put(key, value)
}

func (f *Flash) PutAll(m map[string]string) error {
	if err := f.Store.PutAll(m); err != nil {
		return err
	}
	return f.out.PutAll(m)
}

func (f *Flash) PutInt(key string, v int) error {
	return f.Put(key, strconv.Itoa(v))
}

func (f *Flash) PutBool(key string, v bool) error {
	return f.Put(key, strconv.FormatBool(v))
}

// Now stores value for the current request only.
func (f *Flash) Now(key, value string) error {
	return f.Store.Put(key, value)
}

// Keep schedules current values for the next request. Without keys every
// current value is kept; otherwise only the listed keys that are present.
func (f *Flash) Keep(keys ...string) {
	if len(keys) == 0 {
		f.Each(func(k, v string) {
			_ = f.out.Put(k, v)
		})
		return
	}
	for _, k := range keys {
		if v, ok := f.Get(k); ok {
			_ = f.out.Put(k, v)
		}
	}
}

// Discard unschedules keys without touching the current values.
func (f *Flash) Discard(keys ...string) {
	for _, k := range keys {
		f.out.Remove(k)
	}
}

// Remove drops key from both scopes.
func (f *Flash) Remove(key string) {
	f.Store.Remove(key)
	f.out.Remove(key)
}

// Clear empties both scopes.
func (f *Flash) Clear() {
	f.Store.Clear()
	f.out.Clear()
}

// Out returns a copy of the values scheduled for the next request.
func (f *Flash) Out() map[string]string {
	return f.out.Map()
}

// Error schedules an error message.
func (f *Flash) Error(msg string) error {
	return f.Put(KeyError, msg)
}

// Success schedules a success message.
func (f *Flash) Success(msg string) error {
	return f.Put(KeySuccess, msg)
}

func (f *Flash) ErrorMessage() (string, bool) {
	return f.Get(KeyError)
}

func (f *Flash) SuccessMessage() (string, bool) {
	return f.Get(KeySuccess)
}

// Serialize returns the cookie carrying the scheduled values, or a deletion
// cookie when nothing is scheduled. The payload is not signed.
func (f *Flash) Serialize(name string) *cookie.Cookie {
	if f.out.IsEmpty() {
		return cookie.Deletion(name)
	}
	return cookie.New(name, codec.Encode(&f.out))
}
