package codec_test

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/codec"
	"github.com/dmitrymomot/httpkit/pkg/kv"
)

type fixedSigner struct{}

func (fixedSigner) Sign(payload string) string {
	h := fnv.New32a()
	h.Write([]byte(payload))
	return fmt.Sprintf("%08x", h.Sum32())
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	src := kv.New()
	require.NoError(t, src.Put("user", "42"))
	require.NoError(t, src.Put("url", "http://example.com:8080/?a=b&c=d"))
	require.NoError(t, src.Put("greeting", "héllo wörld"))
	require.NoError(t, src.Put("empty", ""))

	payload := codec.Encode(src)
	assert.NotContains(t, payload, "\x00")
	assert.NotContains(t, payload, " ")
	assert.NotContains(t, payload, ";")

	dst := kv.New()
	require.NoError(t, codec.Decode(payload, dst))
	assert.True(t, src.Equal(dst))
	assert.Equal(t, src.Keys(), dst.Keys())
	assert.False(t, dst.Dirty())
}

func TestEncode_RecordLayout(t *testing.T) {
	t.Parallel()

	src := kv.New()
	require.NoError(t, src.Put("a", "1"))
	require.NoError(t, src.Put("b", "2"))

	raw, err := url.QueryUnescape(codec.Encode(src))
	require.NoError(t, err)
	assert.Equal(t, "\x00a:1\x00\x00b:2\x00", raw)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	err := codec.Decode("%zz", kv.New())
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_IgnoresGarbageBetweenRecords(t *testing.T) {
	t.Parallel()

	dst := kv.New()
	require.NoError(t, codec.Decode(url.QueryEscape("junk\x00a:1\x00noise\x00b:x:y\x00"), dst))
	v, _ := dst.Get("a")
	assert.Equal(t, "1", v)
	v, _ = dst.Get("b")
	assert.Equal(t, "x:y", v)
	assert.Equal(t, 2, dst.Len())
}

func TestSignUnsign(t *testing.T) {
	t.Parallel()

	s := fixedSigner{}
	payload := "%00a%3A1%00"
	value := codec.Sign(s, payload)
	assert.True(t, strings.HasPrefix(value, s.Sign(payload)+"-"))

	got, err := codec.Unsign(s, value)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = codec.Unsign(s, s.Sign(payload)+"-"+payload+"x")
	require.ErrorIs(t, err, codec.ErrInvalidSignature)

	_, err = codec.Unsign(s, "nosignature")
	require.ErrorIs(t, err, codec.ErrMalformed)

	_, err = codec.Unsign(s, "-payload")
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestUnsign_PayloadMayContainSeparator(t *testing.T) {
	t.Parallel()

	s := fixedSigner{}
	payload := "a-b-c"
	got, err := codec.Unsign(s, codec.Sign(s, payload))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
