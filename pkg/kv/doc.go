// Package kv provides the ordered string key/value store that backs cookie
// persisted state such as sessions and flash messages.
//
// A Store remembers insertion order so that serialization is reproducible, and
// tracks whether application code changed it. Values restored from a cookie go
// through Load, which validates like Put but leaves the store clean, so that a
// request which only reads state does not cause the cookie to be re-issued.
//
// Keys may not contain the record delimiter ':' or the NUL separator byte;
// values may not contain the NUL separator byte. Violations are reported with
// ErrInvalidKey and ErrInvalidValue.
//
// A Store is not safe for concurrent use. Each request owns its own instance.
package kv
