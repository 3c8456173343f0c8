package esponce

import (
	"strings"

	"github.com/esponce/client-go/internal/query"
)

// GenerateParams are the arguments of Generate. Zero-valued optional fields
// are not sent, so the service applies its own defaults.
type GenerateParams struct {
	// Content is the text to encode. Required.
	Content string
	// Format is the image format, e.g. "png", "svg", "eps", "xaml".
	Format string
	// Version is the QR Code version (1-40).
	Version int
	// Size is the module size in pixels.
	Size int
	// Padding is the quiet zone in modules. Use Int(0) to request none.
	Padding *int
	// EncodeMode selects the data encoding ("byte", "alphanumeric", "numeric"). Sent as em.
	EncodeMode string
	// ErrorCorrection is the error correction level ("L", "M", "Q", "H"). Sent as ec.
	ErrorCorrection string
	// Foreground and Background are colors, e.g. "#000000".
	Foreground string
	Background string
	// Shorten asks the service to shorten URL content first.
	Shorten *bool
	// Attachment asks for a Content-Disposition: attachment response.
	Attachment *bool
	// Filename names the attachment.
	Filename string
}

// query returns the parameters in the order the API documents them.
func (p GenerateParams) query() query.Params {
	var q query.Params
	q = addString(q, "content", p.Content)
	q = addString(q, "format", p.Format)
	q = addInt(q, "version", p.Version)
	q = addInt(q, "size", p.Size)
	if p.Padding != nil {
		q = q.Add("padding", *p.Padding)
	}
	q = addString(q, "em", p.EncodeMode)
	q = addString(q, "ec", p.ErrorCorrection)
	q = addString(q, "foreground", p.Foreground)
	q = addString(q, "background", p.Background)
	if p.Shorten != nil {
		q = q.Add("shorten", *p.Shorten)
	}
	if p.Attachment != nil {
		q = q.Add("attachment", *p.Attachment)
	}
	q = addString(q, "filename", p.Filename)
	return q
}

func addString(q query.Params, key, v string) query.Params {
	if v == "" {
		return q
	}
	return q.Add(key, v)
}

func addInt(q query.Params, key string, v int) query.Params {
	if v == 0 {
		return q
	}
	return q.Add(key, v)
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// DefaultStatisticsFormat is used when StatisticsParams.Format is empty.
const DefaultStatisticsFormat = "csv"

// StatisticsParams are the arguments of GetStatistics.
type StatisticsParams struct {
	// Format is the file extension of the statistics download. Defaults to csv.
	Format string
}

// ImportParams are the arguments of Import.
type ImportParams struct {
	// Format of the uploaded data: "csv", "xml", "xls" or "xlsx". Required.
	Format string
}

// DefaultExportExt is used when ExportParams.Ext is empty.
const DefaultExportExt = "csv"

// ExportParams are the arguments of Export.
type ExportParams struct {
	// Format selects what the service exports. Required.
	Format string
	// Ext is the file extension of the download. Defaults to csv.
	Ext string
}

var importMediaTypes = map[string]string{
	"csv":  "text/csv",
	"xml":  "application/xml",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ImportMediaType returns the Content-Type sent for an import format.
func ImportMediaType(format string) string {
	if mt, ok := importMediaTypes[strings.ToLower(format)]; ok {
		return mt
	}
	return "application/octet-stream"
}
