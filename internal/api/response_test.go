package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	skipqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esponce/client-go/internal/apierrors"
	"github.com/esponce/client-go/internal/transport"
)

func raw(status int, body []byte, kv ...string) *transport.RawResponse {
	h := http.Header{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Set(kv[i], kv[i+1])
	}
	return &transport.RawResponse{StatusCode: status, Header: h, Body: body}
}

func TestNormalize_JSONObject(t *testing.T) {
	t.Parallel()
	env, err := Normalize(raw(200, []byte(`{"a":1}`)), nil)
	require.NoError(t, err)
	require.NotNil(t, env)

	assert.Equal(t, DataJSON, env.Kind)
	assert.Equal(t, map[string]any{"a": float64(1)}, env.Data)

	var typed struct{ A int }
	require.NoError(t, env.Decode(&typed))
	assert.Equal(t, 1, typed.A)
}

func TestNormalize_JSONScalars(t *testing.T) {
	t.Parallel()
	tests := []struct {
		body string
		want any
	}{
		{`"quoted"`, "quoted"},
		{`42`, float64(42)},
		{`true`, true},
		{`null`, nil},
		{`[1,"x"]`, []any{float64(1), "x"}},
		{" {\"padded\": true}\n", map[string]any{"padded": true}},
	}
	for _, tt := range tests {
		env, err := Normalize(raw(200, []byte(tt.body)), nil)
		require.NoError(t, err, tt.body)
		assert.Equal(t, DataJSON, env.Kind, tt.body)
		assert.Equal(t, tt.want, env.Data, tt.body)
	}
}

func TestNormalize_EmptyBody(t *testing.T) {
	t.Parallel()
	for _, body := range [][]byte{nil, {}} {
		env, err := Normalize(raw(200, body), nil)
		require.NoError(t, err)
		assert.Nil(t, env.Data)
		assert.Equal(t, DataNull, env.Kind)
		assert.True(t, env.IsEmpty())
	}
}

func TestNormalize_SVGIsText(t *testing.T) {
	t.Parallel()
	svg := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><rect x="0" y="0" width="10" height="10" fill="#000000"/></svg>`

	env, err := Normalize(raw(200, []byte(svg), "Content-Type", "image/svg+xml"), nil)
	require.NoError(t, err)
	assert.Equal(t, DataText, env.Kind)

	text, ok := env.Text()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, "<svg")
}

func TestNormalize_CSVIsText(t *testing.T) {
	t.Parallel()
	csv := "date,scans,country\n2024-01-01,12,SI\n2024-01-02,7,DE\n"
	env, err := Normalize(raw(200, []byte(csv)), nil)
	require.NoError(t, err)
	assert.Equal(t, DataText, env.Kind)
	assert.Equal(t, csv, env.Data)
}

func TestNormalize_TruncatedSequenceIsText(t *testing.T) {
	t.Parallel()
	body := []byte{0xe2, 0x82, 'A'}
	env, err := Normalize(raw(200, body), nil)
	require.NoError(t, err)
	assert.Equal(t, DataText, env.Kind)
	assert.Equal(t, string(body), env.Data)
}

func TestNormalize_PNGIsBinaryAndUntouched(t *testing.T) {
	t.Parallel()
	png, err := skipqrcode.Encode("https://www.esponce.com", skipqrcode.Medium, 128)
	require.NoError(t, err)

	env, err := Normalize(raw(200, png, "Content-Type", "image/png"), nil)
	require.NoError(t, err)
	assert.Equal(t, DataBinary, env.Kind)

	data, ok := env.Bytes()
	require.True(t, ok)
	assert.Equal(t, png, data)

	_, isText := env.Text()
	assert.False(t, isText)
	assert.ErrorIs(t, env.Decode(&struct{}{}), ErrNotJSON)
}

func TestNormalize_MagicBytesIsBinary(t *testing.T) {
	t.Parallel()
	body := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0xff, 0xd8, 0xfe, 0x80}
	env, err := Normalize(raw(200, body), nil)
	require.NoError(t, err)
	assert.Equal(t, DataBinary, env.Kind)
	assert.Equal(t, body, env.Data)
}

func TestNormalize_StatusError(t *testing.T) {
	t.Parallel()
	env, err := Normalize(raw(404, []byte("ignored"),
		"x-api-error-code", "42",
		"x-api-error", "not found",
	), nil)
	require.Error(t, err)
	assert.Nil(t, env)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "42", apiErr.Subcode)
	assert.Equal(t, "not found", apiErr.Details)
	assert.Contains(t, err.Error(), "404")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestNormalize_StatusErrorWithoutHeaders(t *testing.T) {
	t.Parallel()
	_, err := Normalize(&transport.RawResponse{StatusCode: 500}, nil)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "HTTP Status Code 500", apiErr.Error())
}

func TestNormalize_RedirectStatusIsSuccess(t *testing.T) {
	t.Parallel()
	env, err := Normalize(raw(304, nil), nil)
	require.NoError(t, err)
	assert.True(t, env.IsEmpty())
}

func TestNormalize_TransportError(t *testing.T) {
	t.Parallel()
	env, err := Normalize(nil, context.DeadlineExceeded)
	assert.Nil(t, env)

	var netErr *apierrors.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNormalize_TransportErrorWinsOverResponse(t *testing.T) {
	t.Parallel()
	_, err := Normalize(raw(200, []byte(`{}`)), errors.New("connection reset"))
	var netErr *apierrors.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestNormalize_NilResponse(t *testing.T) {
	t.Parallel()
	_, err := Normalize(nil, nil)
	var netErr *apierrors.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestNormalize_HostErrorWithStatus(t *testing.T) {
	t.Parallel()
	h := http.Header{}
	h.Set("X-Api-Error-Code", "9")
	h.Set("X-Api-Error", "quota")
	hostErr := &transport.HostError{StatusCode: 429, Header: h, Err: errors.New("aborted")}

	_, err := Normalize(nil, hostErr)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "9", apiErr.Subcode)
	assert.ErrorIs(t, err, apierrors.ErrRateLimited)
}

func TestNormalize_HostErrorWithoutStatus(t *testing.T) {
	t.Parallel()
	hostErr := &transport.HostError{Err: errors.New("Failed to fetch")}

	_, err := Normalize(nil, hostErr)
	var netErr *apierrors.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.ErrorIs(t, err, hostErr)
}

func TestNormalize_HostErrorWithSuccessStatus(t *testing.T) {
	t.Parallel()
	hostErr := &transport.HostError{StatusCode: 200, Err: errors.New("body read failed")}

	_, err := Normalize(nil, hostErr)
	var netErr *apierrors.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestExtractMeta(t *testing.T) {
	t.Parallel()
	h := http.Header{}
	h.Set("x-api-version", "3.1")
	h.Set("content-type", "application/json; charset=utf-8")
	h.Set("content-length", "7")
	h.Set("x-ratelimit-limit", "100")
	h.Set("x-ratelimit-remaining", "99")

	meta := ExtractMeta(h)
	require.NotNil(t, meta.APIVersion)
	assert.Equal(t, "3.1", *meta.APIVersion)
	require.NotNil(t, meta.ContentType)
	assert.Equal(t, "application/json; charset=utf-8", *meta.ContentType)
	require.NotNil(t, meta.ContentLength)
	assert.Equal(t, 7, *meta.ContentLength)

	require.NotNil(t, meta.RateLimit.Total)
	assert.Equal(t, 100, *meta.RateLimit.Total)
	require.NotNil(t, meta.RateLimit.Remaining)
	assert.Equal(t, 99, *meta.RateLimit.Remaining)
	assert.Nil(t, meta.RateLimit.Reset, "missing header must not become 0")
}

func TestExtractMeta_Unparsable(t *testing.T) {
	t.Parallel()
	h := http.Header{}
	h.Set("content-length", "seven")
	h.Set("x-ratelimit-reset", " 60 ")

	meta := ExtractMeta(h)
	assert.Nil(t, meta.ContentLength)
	require.NotNil(t, meta.RateLimit.Reset)
	assert.Equal(t, 60, *meta.RateLimit.Reset)
	assert.Nil(t, meta.APIVersion)
}

func TestExtractMeta_NilHeader(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Meta{}, ExtractMeta(nil))
}

func TestIsMostlyText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body []byte
		want bool
	}{
		{"plain words", []byte("hello world"), true},
		{"exactly half safe", []byte("ab##"), true},
		{"just under half", []byte("ab###"), false},
		{"punctuation set", []byte(`.,-+:"'{}`), true},
		{"underscore counts", []byte("_#_#"), true},
		{"short markup", []byte("<a>b</a>"), false},
		{"non-breaking spaces", []byte("\u00a0\u00a0#"), true},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd, 'a'}, false},
		{"truncated sequence is one character", []byte{0xe2, 0x82, 'A'}, true},
		{"truncated four byte sequence", []byte{0xf0, 0x9f, 0x98, 'o', 'k'}, true},
		{"bad second byte splits", []byte{0xe0, 0x80, 'A'}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsMostlyText(tt.body))
		})
	}
}

func TestInvalidLen(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		b    []byte
		want int
	}{
		{"stray continuation", []byte{0x80, 'a'}, 1},
		{"overlong lead", []byte{0xc0, 0x80}, 1},
		{"two byte lead at end", []byte{0xc3}, 1},
		{"three byte prefix", []byte{0xe2, 0x82, 'A'}, 2},
		{"e0 rejects low second byte", []byte{0xe0, 0x80, 0x80}, 1},
		{"ed rejects surrogate range", []byte{0xed, 0xa0, 0x80}, 1},
		{"four byte prefix", []byte{0xf0, 0x9f, 0x98, 'x'}, 3},
		{"f4 rejects above max", []byte{0xf4, 0x90, 0x80, 0x80}, 1},
		{"out of range lead", []byte{0xf5, 0x80}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, invalidLen(tt.b))
		})
	}
}

func TestDataKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "null", DataNull.String())
	assert.Equal(t, "json", DataJSON.String())
	assert.Equal(t, "text", DataText.String())
	assert.Equal(t, "binary", DataBinary.String())
	assert.Equal(t, "DataKind(9)", DataKind(9).String())
}
