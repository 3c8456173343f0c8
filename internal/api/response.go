package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/esponce/client-go/internal/transport"
)

// Response headers read into Meta.
const (
	HeaderAPIVersion         = "X-Api-Version"
	HeaderContentType        = "Content-Type"
	HeaderContentLength      = "Content-Length"
	HeaderRateLimitLimit     = "X-Ratelimit-Limit"
	HeaderRateLimitRemaining = "X-Ratelimit-Remaining"
	HeaderRateLimitReset     = "X-Ratelimit-Reset"
)

// TextThreshold is the minimum share of safe characters for a non-JSON body
// to be treated as text.
const TextThreshold = 0.5

// Normalize turns a transport outcome into exactly one of an Envelope or an
// error. err is the error returned by the transport, if any.
func Normalize(raw *transport.RawResponse, err error) (*Envelope, error) {
	if err != nil {
		return nil, transportError(err)
	}
	if raw == nil {
		return nil, transportError(errNoResponse)
	}
	if raw.StatusCode >= http.StatusBadRequest {
		return nil, statusError(raw)
	}

	data, kind := DecodeBody(raw.Body)
	return &Envelope{
		Meta: ExtractMeta(raw.Header),
		Data: data,
		Kind: kind,
		Raw:  raw.Body,
	}, nil
}

// DecodeBody decodes a response body: JSON first, then null for an empty
// body, then text or binary depending on the share of safe characters.
func DecodeBody(body []byte) (any, DataKind) {
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v, DataJSON
	}
	if len(body) == 0 {
		return nil, DataNull
	}
	if IsMostlyText(body) {
		return string(body), DataText
	}
	return body, DataBinary
}

// IsMostlyText reports whether at least TextThreshold of the characters in
// body are letters, digits, underscore, whitespace or one of . , - + : " ' { }.
// Characters are counted in UTF-16 code units after UTF-8 decoding. Each
// maximal ill-formed subsequence counts as one replacement character, the
// way WHATWG decoders substitute U+FFFD.
func IsMostlyText(body []byte) bool {
	var safe, total int
	for len(body) > 0 {
		r, size := utf8.DecodeRune(body)
		if r == utf8.RuneError && size == 1 {
			size = invalidLen(body)
		}
		body = body[size:]

		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		total += n
		if isSafeRune(r) {
			safe++
		}
	}
	if total == 0 {
		return false
	}
	return float64(safe)/float64(total) >= TextThreshold
}

// invalidLen returns the length of the maximal subpart of an ill-formed
// sequence at the start of b: the lead byte plus every continuation byte
// that could still have completed it.
func invalidLen(b []byte) int {
	lo, hi := byte(0x80), byte(0xbf)
	var need int
	switch c := b[0]; {
	case c >= 0xc2 && c <= 0xdf:
		need = 1
	case c == 0xe0:
		need, lo = 2, 0xa0
	case c == 0xed:
		need, hi = 2, 0x9f
	case c >= 0xe1 && c <= 0xef:
		need = 2
	case c == 0xf0:
		need, lo = 3, 0x90
	case c == 0xf4:
		need, hi = 3, 0x8f
	case c >= 0xf1 && c <= 0xf3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
	}
	return n
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case strings.ContainsRune(".,-+:\"'{}", r):
		return true
	}
	return isSpace(r)
}

// isSpace matches the ECMAScript WhiteSpace and LineTerminator sets.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// ExtractMeta reads API metadata from response headers. Missing or
// non-integer numeric headers are left nil.
func ExtractMeta(h http.Header) Meta {
	return Meta{
		APIVersion:    headerString(h, HeaderAPIVersion),
		ContentType:   headerString(h, HeaderContentType),
		ContentLength: headerInt(h, HeaderContentLength),
		RateLimit: RateLimit{
			Total:     headerInt(h, HeaderRateLimitLimit),
			Remaining: headerInt(h, HeaderRateLimitRemaining),
			Reset:     headerInt(h, HeaderRateLimitReset),
		},
	}
}

func headerString(h http.Header, key string) *string {
	if h == nil {
		return nil
	}
	vv := h.Values(key)
	if len(vv) == 0 {
		return nil
	}
	v := vv[0]
	return &v
}

func headerInt(h http.Header, key string) *int {
	s := headerString(h, key)
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &n
}
