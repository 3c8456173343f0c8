// Package api provides HTTP client functionality for communicating with the
// Esponce API. It resolves routes, attaches default headers and the API key,
// and normalizes every response into an [Envelope] or an error.
//
// # Client Creation
//
// [NewClient] takes a [Config] with an absolute base URL and a
// transport.Transport. The API key is passed per call and sent as the auth
// query parameter.
//
// # Response Normalization
//
// [Normalize] applies the same rules to every response, whichever transport
// produced it:
//
//   - A transport failure becomes an apierrors.NetworkError.
//   - Status 400 and above becomes an apierrors.APIError, with the subcode
//     from x-api-error-code and details from x-api-error.
//   - Otherwise the body is decoded as JSON if it parses, as null if it is
//     empty, and as text or binary depending on how much of it is plain
//     ASCII (see [IsMostlyText]). Binary bodies are never re-encoded.
//   - Metadata (API version, content type and length, rate limits) is read
//     from headers into [Meta]. Missing headers stay nil.
//
// # Retries
//
// There are none. Every call maps to exactly one HTTP request.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use.
package api
