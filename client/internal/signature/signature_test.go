package signature

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAndVerify(t *testing.T) {
	t.Parallel()
	secret := base64.StdEncoding.EncodeToString([]byte("top-secret"))
	key, err := DecodeSecret(secret)
	require.NoError(t, err)

	sig := Compute(key, "Gs2Realtime", "GetGatheringPool", 1500000000)
	assert.NotEmpty(t, sig)
	assert.Equal(t, sig, Compute(key, "Gs2Realtime", "GetGatheringPool", 1500000000), "deterministic")
	assert.True(t, Verify(key, "Gs2Realtime", "GetGatheringPool", 1500000000, sig))
	assert.False(t, Verify(key, "Gs2Realtime", "DeleteGatheringPool", 1500000000, sig))
	assert.False(t, Verify(key, "Gs2Realtime", "GetGatheringPool", 1500000001, sig))
}

func TestDecodeSecret_Invalid(t *testing.T) {
	t.Parallel()
	_, err := DecodeSecret("not base64 !!")
	assert.Error(t, err)
}
