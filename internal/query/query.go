// Package query builds URL query strings for Esponce API routes.
//
// Parameters keep their insertion order and only scalar values (strings,
// booleans, integers, floats, or non-nil pointers to them) are emitted.
// Anything else is skipped without an error:
//
//	p := query.Params{}.Add("auth", key).Add("content", "hello world")
//	route := "api/v3/generate" + p.Encode() // api/v3/generate?auth=...&content=hello%20world
package query

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single key/value pair.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters.
type Params []Param

// Add appends a parameter and returns the extended list.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode returns "?k=v&k2=v2" for every scalar parameter, or "" when none
// qualify.
func (p Params) Encode() string {
	var b strings.Builder
	for _, param := range p {
		v, ok := Scalar(param.Value)
		if !ok {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(Escape(param.Key))
		b.WriteByte('=')
		b.WriteString(Escape(v))
	}
	return b.String()
}

// Scalar formats v when it is a scalar value. Pointers are followed once.
func Scalar(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// Escape percent-encodes s for use as a query key or value. Spaces become
// %20 rather than '+'.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
