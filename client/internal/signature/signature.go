// Package signature computes the HMAC request signature the realtime
// endpoint authenticates callers with.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
)

// Header names carried by every signed request.
const (
	HeaderClientID  = "X-GS2-CLIENT-ID"
	HeaderTimestamp = "X-GS2-REQUEST-TIMESTAMP"
	HeaderSignature = "X-GS2-REQUEST-SIGNATURE"
)

// DecodeSecret decodes a base64 client secret into the HMAC key.
func DecodeSecret(secret string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("client secret is not valid base64: %w", err)
	}
	return key, nil
}

// Compute returns base64(HMAC-SHA256(key, "service:operation:timestamp")).
func Compute(key []byte, service, operation string, timestamp int64) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(service + ":" + operation + ":" + strconv.FormatInt(timestamp, 10)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig matches the expected signature.
func Verify(key []byte, service, operation string, timestamp int64, sig string) bool {
	want := Compute(key, service, operation, timestamp)
	return hmac.Equal([]byte(want), []byte(sig))
}
