package api

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/gs2io/gs2-realtime-go/client/internal/transport"
)

// recordingDoer is a transport stub that records every call and replies with
// a canned body or error.
type recordingDoer struct {
	mu    sync.Mutex
	calls []transport.Request
	resp  []byte
	err   error
}

func (d *recordingDoer) Do(_ context.Context, req transport.Request) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, req)
	return d.resp, d.err
}

func (d *recordingDoer) n() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

func (d *recordingDoer) last(t *testing.T) transport.Request {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		t.Fatal("no transport call recorded")
	}
	return d.calls[len(d.calls)-1]
}

// bodyJSON renders a recorded request body the way the transport would send it.
func bodyJSON(t *testing.T, req transport.Request) string {
	t.Helper()
	b, err := json.Marshal(req.Body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return string(b)
}

func strPtr(s string) *string { return &s }
