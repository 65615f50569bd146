package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gs2io/gs2-realtime-go/client/internal/signature"
)

// Credentials produce the authentication headers for one call. service and
// operation identify the API being invoked ("Gs2Realtime", "GetGathering").
// Implementations must be safe for concurrent use.
type Credentials interface {
	Sign(ctx context.Context, service, operation string) (http.Header, error)
}

// BasicCredentials signs requests with a client ID and a base64 client secret
// issued by the GS2 console.
type BasicCredentials struct {
	clientID string
	key      []byte
	now      func() time.Time
}

// NewBasicCredentials validates the pair and returns a signer.
func NewBasicCredentials(clientID, clientSecret string) (*BasicCredentials, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client id cannot be empty")
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("client secret cannot be empty")
	}
	key, err := signature.DecodeSecret(clientSecret)
	if err != nil {
		return nil, err
	}
	return &BasicCredentials{clientID: clientID, key: key, now: time.Now}, nil
}

// ClientID returns the identifier sent with every request.
func (b *BasicCredentials) ClientID() string { return b.clientID }

// Sign implements Credentials.
func (b *BasicCredentials) Sign(_ context.Context, service, operation string) (http.Header, error) {
	ts := b.now().Unix()
	h := make(http.Header, 3)
	h.Set(signature.HeaderClientID, b.clientID)
	h.Set(signature.HeaderTimestamp, strconv.FormatInt(ts, 10))
	h.Set(signature.HeaderSignature, signature.Compute(b.key, service, operation, ts))
	return h, nil
}
