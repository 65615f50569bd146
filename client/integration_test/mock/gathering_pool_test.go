package client_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/gs2io/gs2-realtime-go/client"
	"github.com/gs2io/gs2-realtime-go/client/realtimetest"
)

func newClient(t *testing.T, srv *realtimetest.Server, opts ...client.Option) *client.Client {
	t.Helper()
	creds, err := client.NewBasicCredentials(realtimetest.ClientID, realtimetest.ClientSecret)
	require.NoError(t, err)
	opts = append([]client.Option{client.WithBaseURL(srv.URL), client.WithHTTPClient(srv.Client())}, opts...)
	c, err := client.New("", creds, opts...)
	require.NoError(t, err)
	return c
}

func TestClient_GatheringPoolLifecycle(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer(realtimetest.WithOwnerID("owner-42"))
	defer srv.Close()
	c := newClient(t, srv)
	ctx := context.Background()

	created, err := c.CreateGatheringPool(ctx, &client.CreateGatheringPoolRequest{
		Name:        client.String("lobby"),
		Description: client.String("casual matches"),
	})
	require.NoError(t, err)
	assert.Equal(t, "lobby", created.Name)
	assert.Equal(t, "casual matches", created.Description)
	assert.Equal(t, "owner-42", created.OwnerID)
	assert.NotEmpty(t, created.GatheringPoolID)
	assert.NotZero(t, created.CreateAt)

	got, err := c.GetGatheringPool(ctx, &client.GetGatheringPoolRequest{GatheringPoolName: "lobby"})
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	updated, err := c.UpdateGatheringPool(ctx, &client.UpdateGatheringPoolRequest{
		GatheringPoolName: "lobby",
		Description:       client.String("ranked matches"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ranked matches", updated.Description)
	assert.Equal(t, created.GatheringPoolID, updated.GatheringPoolID)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/gatheringPool/lobby", last.Path)
	assert.JSONEq(t, `{"description":"ranked matches"}`, last.Body)

	require.NoError(t, c.DeleteGatheringPool(ctx, &client.DeleteGatheringPoolRequest{GatheringPoolName: "lobby"}))

	_, err = c.GetGatheringPool(ctx, &client.GetGatheringPoolRequest{GatheringPoolName: "lobby"})
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestClient_CreateGatheringPoolConflict(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer()
	defer srv.Close()
	c := newClient(t, srv)
	ctx := context.Background()

	req := &client.CreateGatheringPoolRequest{Name: client.String("dup")}
	_, err := c.CreateGatheringPool(ctx, req)
	require.NoError(t, err)

	_, err = c.CreateGatheringPool(ctx, req)
	se, ok := client.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %T", err)
	assert.Equal(t, http.StatusConflict, se.StatusCode)
	assert.Equal(t, client.Irrecoverable, se.Category)
}

func TestClient_DescribeGatheringPoolPaging(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer()
	defer srv.Close()
	c := newClient(t, srv)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := c.CreateGatheringPool(ctx, &client.CreateGatheringPoolRequest{Name: client.String(fmt.Sprintf("pool-%d", i))})
		require.NoError(t, err)
	}

	first, err := c.DescribeGatheringPool(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "pool-0", first.Items[0].Name)
	require.True(t, first.HasNext())

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "limit=2", last.RawQuery)

	second, err := c.DescribeGatheringPool(ctx, first.NextPageToken, 2)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.Equal(t, "pool-2", second.Items[0].Name)

	last, _ = srv.LastRequest()
	assert.Equal(t, "pageToken="+first.NextPageToken+"&limit=2", last.RawQuery)

	var names []string
	err = c.WalkGatheringPools(ctx, 2, func(p client.GatheringPool) error {
		names = append(names, p.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pool-0", "pool-1", "pool-2", "pool-3", "pool-4"}, names)

	names = names[:0]
	err = c.WalkGatheringPools(ctx, 2, func(p client.GatheringPool) error {
		names = append(names, p.Name)
		if len(names) == 3 {
			return client.ErrStopWalk
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestClient_SignsEveryRequest(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer()
	defer srv.Close()

	// A client holding a different secret is rejected by the backend.
	wrong, err := client.NewBasicCredentials(realtimetest.ClientID, "c29tZXRoaW5nLWVsc2U=")
	require.NoError(t, err)
	c, err := client.New("", wrong, client.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.DescribeGatheringPool(context.Background(), "", 0)
	se, ok := client.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)

	good := newClient(t, srv)
	_, err = good.DescribeGatheringPool(context.Background(), "", 0)
	require.NoError(t, err)

	last, _ := srv.LastRequest()
	assert.Equal(t, realtimetest.ClientID, last.Header.Get("X-GS2-CLIENT-ID"))
	assert.NotEmpty(t, last.Header.Get("X-GS2-REQUEST-TIMESTAMP"))
	assert.NotEmpty(t, last.Header.Get("X-GS2-REQUEST-SIGNATURE"))
}

func TestClient_ServiceErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		status   int
		category client.ErrorCategory
	}{
		{"bad request", http.StatusBadRequest, client.Irrecoverable},
		{"throttled", http.StatusTooManyRequests, client.Recoverable},
		{"internal", http.StatusInternalServerError, client.Recoverable},
		{"unavailable", http.StatusServiceUnavailable, client.Recoverable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := realtimetest.NewServer()
			defer srv.Close()
			c := newClient(t, srv)

			srv.FailNext(tt.status, "boom")
			_, err := c.GetGatheringPool(context.Background(), &client.GetGatheringPoolRequest{GatheringPoolName: "p"})
			se, ok := client.AsServiceError(err)
			require.True(t, ok, "expected ServiceError, got %v", err)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.category, se.Category)
			assert.Equal(t, "boom", se.Message)
			assert.Equal(t, "GetGatheringPool", se.Operation)
			assert.False(t, client.IsArgumentError(err))
		})
	}
}

func TestClient_ArgumentErrorsSendNothing(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer()
	defer srv.Close()
	c := newClient(t, srv)
	ctx := context.Background()

	_, err := c.GetGatheringPool(ctx, nil)
	assert.True(t, client.IsArgumentError(err))
	_, err = c.UpdateGatheringPool(ctx, &client.UpdateGatheringPoolRequest{})
	assert.True(t, client.IsArgumentError(err))
	err = c.DeleteGatheringPool(ctx, &client.DeleteGatheringPoolRequest{})
	assert.True(t, client.IsArgumentError(err))
	_, err = c.CreateGatheringPool(ctx, nil)
	assert.True(t, client.IsArgumentError(err))

	var argErr *client.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "CreateGatheringPool", argErr.Operation)

	assert.Empty(t, srv.Requests())
}

func TestClient_CanceledContext(t *testing.T) {
	t.Parallel()
	srv := realtimetest.NewServer()
	defer srv.Close()
	c := newClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := c.DescribeGatheringPool(ctx, "", 0)
	_, ok := client.AsServiceError(err)
	assert.True(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
