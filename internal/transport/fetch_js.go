//go:build js && wasm

package transport

import (
	"context"
	"errors"
	"net/http"
	"syscall/js"
)

// FetchTransport is the host-delegated strategy for browsers. Requests go
// through the global fetch function and bodies are read with arrayBuffer so
// binary payloads arrive untouched.
type FetchTransport struct {
	fetch js.Value
}

// NewFetchTransport wraps a fetch function value.
func NewFetchTransport(fetch js.Value) *FetchTransport {
	return &FetchTransport{fetch: fetch}
}

// Name returns "fetch".
func (t *FetchTransport) Name() string { return "fetch" }

// Do executes req through fetch. Promise rejections become a *HostError with
// whatever status and headers were already known.
func (t *FetchTransport) Do(ctx context.Context, req *Request) (*RawResponse, error) {
	init := js.Global().Get("Object").New()
	init.Set("method", req.Method)
	init.Set("cache", "no-store")

	headers := js.Global().Get("Headers").New()
	for k, vv := range req.Header {
		for _, v := range vv {
			headers.Call("append", k, v)
		}
	}
	init.Set("headers", headers)

	if len(req.Body) > 0 {
		body := js.Global().Get("Uint8Array").New(len(req.Body))
		js.CopyBytesToJS(body, req.Body)
		init.Set("body", body)
	}

	if ctor := js.Global().Get("AbortController"); ctor.Type() == js.TypeFunction {
		controller := ctor.New()
		init.Set("signal", controller.Get("signal"))
		stop := context.AfterFunc(ctx, func() { controller.Call("abort") })
		defer stop()
	}

	resp, err := await(ctx, t.fetch.Invoke(req.URL, init))
	if err != nil {
		return nil, &HostError{Err: err}
	}

	status := resp.Get("status").Int()
	header := make(http.Header)
	forEach := js.FuncOf(func(_ js.Value, args []js.Value) any {
		// Headers.forEach passes (value, name).
		header.Add(args[1].String(), args[0].String())
		return nil
	})
	resp.Get("headers").Call("forEach", forEach)
	forEach.Release()

	buf, err := await(ctx, resp.Call("arrayBuffer"))
	if err != nil {
		return nil, &HostError{StatusCode: status, Header: header, Err: err}
	}

	view := js.Global().Get("Uint8Array").New(buf)
	body := make([]byte, view.Get("length").Int())
	js.CopyBytesToGo(body, view)

	return &RawResponse{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}, nil
}

type settled struct {
	value js.Value
	err   error
}

// await blocks until promise settles or ctx is done.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	ch := make(chan settled, 1)

	var onResolve, onReject js.Func
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer release()
		ch <- settled{value: args[0]}
		return nil
	})
	onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer release()
		ch <- settled{err: jsError(args[0])}
		return nil
	})
	promise.Call("then", onResolve, onReject)

	select {
	case s := <-ch:
		return s.value, s.err
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}

func jsError(v js.Value) error {
	if v.Type() == js.TypeObject {
		if msg := v.Get("message"); msg.Type() == js.TypeString {
			return errors.New(msg.String())
		}
	}
	return errors.New(v.String())
}
