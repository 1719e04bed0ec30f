package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/wallet/address"
)

func TestCosmosHubPath(t *testing.T) {
	path, err := address.CosmosHubPath(0)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/118'/0'/0/0", path)

	path, err = address.CosmosHubPath(17)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/118'/0'/0/17", path)

	_, err = address.CosmosHubPath(1 << 31)
	require.ErrorIs(t, err, address.ErrIndexOutOfRange)
}

func TestEVMPath(t *testing.T) {
	path, err := address.EVMPath(3)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/60'/0'/0/3", path)
}

func TestParseBIP44Path(t *testing.T) {
	indices, err := address.ParseBIP44Path("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, []uint32{2147483692, 2147483708, 2147483648, 0, 0}, indices)

	indices, err = address.ParseBIP44Path("m")
	require.NoError(t, err)
	assert.Empty(t, indices)

	for _, invalid := range []string{"", "44'/0'", "m/44'/x", "m//0", "m/2147483648", "m/-1"} {
		_, err := address.ParseBIP44Path(invalid)
		require.ErrorIs(t, err, address.ErrInvalidPath, invalid)
	}
}

func TestParseBIP44PathHardenedBounds(t *testing.T) {
	indices, err := address.ParseBIP44Path("m/2147483647'/2147483647")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4294967295, 2147483647}, indices)

	for _, invalid := range []string{"m/2147483648'", "m/4294967295'", "m/4294967296'"} {
		_, err := address.ParseBIP44Path(invalid)
		require.ErrorIs(t, err, address.ErrInvalidPath, invalid)
	}
}
