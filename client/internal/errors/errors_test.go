package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError_Classification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code int
		want ErrorCategory
	}{
		{http.StatusBadRequest, Irrecoverable},
		{http.StatusUnauthorized, Irrecoverable},
		{http.StatusNotFound, Irrecoverable},
		{http.StatusRequestTimeout, Recoverable},
		{http.StatusTooManyRequests, Recoverable},
		{http.StatusInternalServerError, Recoverable},
		{http.StatusServiceUnavailable, Recoverable},
	}
	for _, tc := range cases {
		err := NewHTTPError("GetGathering", tc.code, nil)
		assert.Equal(t, tc.want, err.Category, "status %d", tc.code)
		assert.Equal(t, tc.want == Irrecoverable, IsIrrecoverable(err), "status %d", tc.code)
	}
}

func TestNewHTTPError_DecodesEnvelope(t *testing.T) {
	t.Parallel()
	err := NewHTTPError("GetGatheringPool", http.StatusNotFound, []byte(`{"message":"gatheringPool not found"}`))
	assert.Equal(t, "gatheringPool not found", err.Message)
	assert.Equal(t, "GetGatheringPool: [Irrecoverable] HTTP 404: gatheringPool not found", err.Error())

	err = NewHTTPError("GetGatheringPool", http.StatusBadGateway, []byte(`{"error":"upstream"}`))
	assert.Equal(t, "upstream", err.Message)

	err = NewHTTPError("GetGatheringPool", http.StatusBadGateway, []byte(`<html>`))
	assert.Empty(t, err.Message)
	assert.Equal(t, "<html>", err.Body)
	assert.Equal(t, "GetGatheringPool: [Recoverable] HTTP 502", err.Error())
}

func TestNewNetworkError_Unwraps(t *testing.T) {
	t.Parallel()
	err := NewNetworkError("DeleteGathering", context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, IsIrrecoverable(err))
	assert.Zero(t, err.StatusCode)
}

func TestAsServiceError_WrappedChain(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("outer: %w", NewHTTPError("CreateGathering", http.StatusConflict, nil))
	se, ok := AsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, se.StatusCode)

	_, ok = AsServiceError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.False(t, IsIrrecoverable(fmt.Errorf("plain")))
}

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Recoverable", Recoverable.String())
	assert.Equal(t, "Irrecoverable", Irrecoverable.String())
	assert.Equal(t, "Unknown(7)", ErrorCategory(7).String())
}
