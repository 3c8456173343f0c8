package esponce

import "github.com/esponce/client-go/internal/api"

// Result is the normalized outcome of a successful call.
type Result = api.Envelope

// Meta is response metadata read from headers. Absent values are nil.
type Meta = api.Meta

// RateLimit holds the x-ratelimit-* header values.
type RateLimit = api.RateLimit

// DataKind tells how a Result payload was decoded.
type DataKind = api.DataKind

// Payload kinds.
const (
	DataNull   = api.DataNull
	DataJSON   = api.DataJSON
	DataText   = api.DataText
	DataBinary = api.DataBinary
)

// ErrNotJSON is returned by Result.Decode when the payload was not JSON.
var ErrNotJSON = api.ErrNotJSON
