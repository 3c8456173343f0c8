package esponce

import "context"

// Outcome is the value delivered by Async. Exactly one field is set.
type Outcome struct {
	Result *Result
	Err    error
}

// Async runs call on its own goroutine. The returned channel delivers
// exactly one Outcome and is then closed.
//
//	ch := client.Async(ctx, func(ctx context.Context) (*esponce.Result, error) {
//	    return client.List(ctx)
//	})
//	out := <-ch
func (c *Client) Async(ctx context.Context, call func(context.Context) (*Result, error)) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := call(ctx)
		if err != nil {
			ch <- Outcome{Err: err}
			return
		}
		ch <- Outcome{Result: res}
	}()
	return ch
}
