package esponce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Async_DeliversOnceAndCloses(t *testing.T) {
	api := newFakeAPI(t, jsonReply(`{"campaigns":[]}`))
	c := newTestClient(t, api.URL)

	ch := c.Async(context.Background(), func(ctx context.Context) (*Result, error) {
		return c.List(ctx)
	})

	out, ok := <-ch
	require.True(t, ok)
	require.NoError(t, out.Err)
	require.NotNil(t, out.Result)
	assert.Equal(t, DataJSON, out.Result.Kind)

	_, ok = <-ch
	assert.False(t, ok, "channel must be closed after one outcome")
}

func TestClient_Async_Error(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	out := <-c.Async(context.Background(), func(ctx context.Context) (*Result, error) {
		return c.GetCampaign(ctx, "")
	})
	assert.Nil(t, out.Result)
	assert.ErrorIs(t, out.Err, ErrMissingAPIKey)
}
