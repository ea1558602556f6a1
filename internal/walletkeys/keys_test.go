package walletkeys_test

import (
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"land-registry/internal/deedcrypt"
	"land-registry/internal/walletkeys"
)

func TestGenerateKeys(t *testing.T) {

	keys, err := walletkeys.GenerateKeys()
	require.NoError(t, err)
	assert.Len(t, keys.PrivateKeyHex, 64)
	assert.Len(t, keys.PublicKeyHex, 128)

	priv, err := ethcrypto.HexToECDSA(keys.PrivateKeyHex)
	require.NoError(t, err)
	assert.Equal(t, ethcrypto.PubkeyToAddress(priv.PublicKey).Hex(), keys.Address)
}

func TestGeneratedPairEncrypts(t *testing.T) {

	keys, err := walletkeys.GenerateKeys()
	require.NoError(t, err)

	assert.NoError(t, deedcrypt.ValidateKeyPair(keys.PrivateKeyHex, keys.PublicKeyHex))
}
