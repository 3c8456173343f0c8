package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/esponce/client-go/internal/query"
)

// API routes, relative to the base URL.
const (
	RouteGenerate   = "api/v3/generate"
	RouteDecode     = "api/v3/decode"
	RouteList       = "api/v3/track/list"
	RouteCampaign   = "api/v3/track/campaign"
	RouteQRCode     = "api/v3/track/qrcode"
	RouteStatistics = "api/v3/track/statistics"
	RouteImport     = "api/v3/track/import"
	RouteExport     = "api/v3/track/export"
)

// Content types sent with request bodies.
const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
)

func auth(key string) query.Params {
	return query.Params{}.Add("auth", key)
}

func contentType(ct string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", ct)
	return h
}

// Generate renders a QR Code. params are appended after auth.
func (c *Client) Generate(ctx context.Context, key string, params query.Params) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteGenerate,
		Query:  append(auth(key), params...),
	})
}

// Decode uploads a PNG image and returns its decoded content.
func (c *Client) Decode(ctx context.Context, key string, image []byte) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPost,
		Route:  RouteDecode,
		Query:  auth(key),
		Header: contentType(ContentTypePNG),
		Body:   image,
	})
}

// List returns all campaigns and QR Codes.
func (c *Client) List(ctx context.Context, key string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteList,
		Query:  auth(key),
	})
}

// GetCampaign retrieves a campaign.
func (c *Client) GetCampaign(ctx context.Context, key, id string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteCampaign + "/" + url.PathEscape(id),
		Query:  auth(key),
	})
}

// CreateCampaign creates a campaign from a JSON body.
func (c *Client) CreateCampaign(ctx context.Context, key string, body any) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPost,
		Route:  RouteCampaign,
		Query:  auth(key),
		Header: contentType(ContentTypeJSON),
		Body:   body,
	})
}

// UpdateCampaign replaces a campaign.
func (c *Client) UpdateCampaign(ctx context.Context, key, id string, body any) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPut,
		Route:  RouteCampaign + "/" + url.PathEscape(id),
		Query:  auth(key),
		Header: contentType(ContentTypeJSON),
		Body:   body,
	})
}

// DeleteCampaign deletes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, key, id string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodDelete,
		Route:  RouteCampaign + "/" + url.PathEscape(id),
		Query:  auth(key),
	})
}

// GetQRCode retrieves a tracked QR Code.
func (c *Client) GetQRCode(ctx context.Context, key, id string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteQRCode + "/" + url.PathEscape(id),
		Query:  auth(key),
	})
}

// CreateQRCode creates a tracked QR Code from a JSON body.
func (c *Client) CreateQRCode(ctx context.Context, key string, body any) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPost,
		Route:  RouteQRCode,
		Query:  auth(key),
		Header: contentType(ContentTypeJSON),
		Body:   body,
	})
}

// UpdateQRCode replaces a tracked QR Code.
func (c *Client) UpdateQRCode(ctx context.Context, key, id string, body any) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPut,
		Route:  RouteQRCode + "/" + url.PathEscape(id),
		Query:  auth(key),
		Header: contentType(ContentTypeJSON),
		Body:   body,
	})
}

// DeleteQRCode deletes a tracked QR Code.
func (c *Client) DeleteQRCode(ctx context.Context, key, id string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodDelete,
		Route:  RouteQRCode + "/" + url.PathEscape(id),
		Query:  auth(key),
	})
}

// GetStatistics downloads scan statistics for a QR Code in the given format
// (file extension), e.g. "csv".
func (c *Client) GetStatistics(ctx context.Context, key, id, format string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteStatistics + "/" + url.PathEscape(id) + "." + url.PathEscape(format),
		Query:  auth(key),
	})
}

// Import uploads campaigns and QR Codes. format is sent as a query
// parameter before auth.
func (c *Client) Import(ctx context.Context, key, format, mediaType string, data []byte) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodPost,
		Route:  RouteImport,
		Query:  query.Params{}.Add("format", format).Add("auth", key),
		Header: contentType(mediaType),
		Body:   data,
	})
}

// Export downloads all campaigns and QR Codes as a file with extension ext.
func (c *Client) Export(ctx context.Context, key, format, ext string) (*Envelope, error) {
	return c.Do(ctx, Call{
		Method: http.MethodGet,
		Route:  RouteExport + "." + url.PathEscape(ext),
		Query:  query.Params{}.Add("format", format).Add("auth", key),
	})
}
