package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esponce/client-go/internal/query"
)

func TestEndpoints_Routes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name        string
		call        func(c *Client) error
		method      string
		url         string
		contentType string
		body        string
	}{
		{
			name: "generate",
			call: func(c *Client) error {
				_, err := c.Generate(ctx, "k", query.Params{}.Add("content", "hi").Add("format", "svg"))
				return err
			},
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/generate?auth=k&content=hi&format=svg",
		},
		{
			name:        "decode",
			call:        func(c *Client) error { _, err := c.Decode(ctx, "k", png); return err },
			method:      http.MethodPost,
			url:         "https://www.esponce.com/api/v3/decode?auth=k",
			contentType: "image/png",
			body:        string(png),
		},
		{
			name:   "list",
			call:   func(c *Client) error { _, err := c.List(ctx, "k"); return err },
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/track/list?auth=k",
		},
		{
			name:   "get campaign",
			call:   func(c *Client) error { _, err := c.GetCampaign(ctx, "k", "c 1"); return err },
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/track/campaign/c%201?auth=k",
		},
		{
			name:        "create campaign",
			call:        func(c *Client) error { _, err := c.CreateCampaign(ctx, "k", map[string]int{"n": 1}); return err },
			method:      http.MethodPost,
			url:         "https://www.esponce.com/api/v3/track/campaign?auth=k",
			contentType: "application/json",
			body:        `{"n":1}`,
		},
		{
			name:        "update campaign",
			call:        func(c *Client) error { _, err := c.UpdateCampaign(ctx, "k", "c1", `{"n":2}`); return err },
			method:      http.MethodPut,
			url:         "https://www.esponce.com/api/v3/track/campaign/c1?auth=k",
			contentType: "application/json",
			body:        `{"n":2}`,
		},
		{
			name:   "delete campaign",
			call:   func(c *Client) error { _, err := c.DeleteCampaign(ctx, "k", "c1"); return err },
			method: http.MethodDelete,
			url:    "https://www.esponce.com/api/v3/track/campaign/c1?auth=k",
		},
		{
			name:   "get qrcode",
			call:   func(c *Client) error { _, err := c.GetQRCode(ctx, "k", "q/1"); return err },
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/track/qrcode/q%2F1?auth=k",
		},
		{
			name:        "create qrcode",
			call:        func(c *Client) error { _, err := c.CreateQRCode(ctx, "k", struct{ N int }{3}); return err },
			method:      http.MethodPost,
			url:         "https://www.esponce.com/api/v3/track/qrcode?auth=k",
			contentType: "application/json",
			body:        `{"N":3}`,
		},
		{
			name:        "update qrcode",
			call:        func(c *Client) error { _, err := c.UpdateQRCode(ctx, "k", "q1", []byte(`{}`)); return err },
			method:      http.MethodPut,
			url:         "https://www.esponce.com/api/v3/track/qrcode/q1?auth=k",
			contentType: "application/json",
			body:        `{}`,
		},
		{
			name:   "delete qrcode",
			call:   func(c *Client) error { _, err := c.DeleteQRCode(ctx, "k", "q1"); return err },
			method: http.MethodDelete,
			url:    "https://www.esponce.com/api/v3/track/qrcode/q1?auth=k",
		},
		{
			name:   "statistics",
			call:   func(c *Client) error { _, err := c.GetStatistics(ctx, "k", "q1", "csv"); return err },
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/track/statistics/q1.csv?auth=k",
		},
		{
			name:        "import",
			call:        func(c *Client) error { _, err := c.Import(ctx, "k", "csv", "text/csv", []byte("a,b\n")); return err },
			method:      http.MethodPost,
			url:         "https://www.esponce.com/api/v3/track/import?format=csv&auth=k",
			contentType: "text/csv",
			body:        "a,b\n",
		},
		{
			name:   "export",
			call:   func(c *Client) error { _, err := c.Export(ctx, "k", "campaigns", "xml"); return err },
			method: http.MethodGet,
			url:    "https://www.esponce.com/api/v3/track/export.xml?format=campaigns&auth=k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recordingTransport{}
			c, err := NewClient(Config{BaseURL: "https://www.esponce.com/", Transport: rec})
			require.NoError(t, err)

			require.NoError(t, tt.call(c))
			require.NotNil(t, rec.last)
			assert.Equal(t, tt.method, rec.last.Method)
			assert.Equal(t, tt.url, rec.last.URL)
			assert.Equal(t, tt.contentType, rec.last.Header.Get("Content-Type"))
			assert.Equal(t, tt.body, string(rec.last.Body))
			assert.Equal(t, "application/json", rec.last.Header.Get("Accept"))
		})
	}
}
