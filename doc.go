// Package esponce provides a Go client SDK for the Esponce QR Code API.
//
// The client generates and decodes QR Codes and manages tracked campaigns,
// tracked QR Codes, scan statistics and bulk import/export. Encoding and
// decoding happen on the Esponce service; this package builds the requests,
// attaches the API key and normalizes every response into a [Result].
//
// Basic usage:
//
//	client, err := esponce.New(esponce.WithAPIKey("your-api-key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Generate(ctx, esponce.GenerateParams{
//	    Content: "https://www.esponce.com",
//	    Format:  "svg",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svg, _ := res.Text()
//	fmt.Println(svg)
//
// # Results
//
// A [Result] carries [Meta] read from response headers and a payload whose
// [DataKind] tells how it was decoded: JSON values, nil for an empty body,
// text for mostly-ASCII bodies (SVG, CSV, XML) and raw bytes for anything
// else (PNG, XLS). Use [Result.Decode] to unmarshal a JSON payload into a
// typed value.
//
// # Errors
//
// Arguments are validated before any request is sent; failures are
// [*ValidationError]. Transport failures are [*NetworkError] and HTTP
// statuses of 400 and above are [*APIError]. Use errors.Is with the
// sentinel errors, e.g. [ErrMissingAPIKey] or [ErrNotFound].
//
// # Configuration
//
// [LoadConfig] reads ESPONCE_* environment variables, optionally from a .env
// file. [NewFromEnv] builds a client from them directly.
package esponce
