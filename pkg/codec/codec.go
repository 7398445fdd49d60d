package codec

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/httpkit/pkg/kv"
	"github.com/dmitrymomot/httpkit/pkg/signer"
)

// SignatureSeparator splits the signature from the payload in a signed value.
const SignatureSeparator = '-'

var recordPattern = regexp.MustCompile("\x00([^:\x00]*):([^\x00]*)\x00")

// Source is anything that can enumerate its pairs in a stable order.
type Source interface {
	Each(fn func(key, value string))
}

// Loader receives decoded pairs.
type Loader interface {
	Load(key, value string) error
}

// Encode serializes src into a percent-encoded payload.
func Encode(src Source) string {
	var b strings.Builder
	src.Each(func(key, value string) {
		b.WriteByte(kv.Separator)
		b.WriteString(key)
		b.WriteByte(kv.Delimiter)
		b.WriteString(value)
		b.WriteByte(kv.Separator)
	})
	return url.QueryEscape(b.String())
}

// Decode parses a payload produced by Encode into dst.
func Decode(payload string, dst Loader) error {
	raw, err := url.QueryUnescape(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for _, m := range recordPattern.FindAllStringSubmatch(raw, -1) {
		if err := dst.Load(m[1], m[2]); err != nil {
			return err
		}
	}
	return nil
}

// Sign returns payload prefixed with its signature.
func Sign(s signer.Signer, payload string) string {
	return s.Sign(payload) + string(SignatureSeparator) + payload
}

// Unsign splits a signed value at the first separator and verifies it.
// It returns the payload when the signature matches.
func Unsign(s signer.Signer, value string) (string, error) {
	i := strings.IndexByte(value, SignatureSeparator)
	if i <= 0 {
		return "", ErrMalformed
	}
	sig, payload := value[:i], value[i+1:]
	if !signer.Verify(s, payload, sig) {
		return "", ErrInvalidSignature
	}
	return payload, nil
}
