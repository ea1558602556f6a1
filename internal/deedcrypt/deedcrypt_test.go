package deedcrypt_test

import (
	"encoding/hex"
	"testing"

	"land-registry/internal/deedcrypt"
	"land-registry/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (privateKeyHex, publicKeyHex string) {
	t.Helper()

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	privateKeyHex = hex.EncodeToString(ethcrypto.FromECDSA(key))
	// chain format: uncompressed point without the 04 prefix
	publicKeyHex = hex.EncodeToString(ethcrypto.FromECDSAPub(&key.PublicKey)[1:])
	return
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	privateKey, publicKey := newKeyPair(t)

	message := []byte("arbitrary bytes \x00\x01\xff with binary content")
	encrypted, err := deedcrypt.EncryptMessage(message, publicKey)
	require.NoError(t, err)
	assert.NotContains(t, encrypted, string(message))

	decrypted, err := deedcrypt.DecryptMessage(encrypted, privateKey)
	require.NoError(t, err)
	assert.Equal(t, message, decrypted)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	_, publicKey := newKeyPair(t)
	otherPrivateKey, _ := newKeyPair(t)

	encrypted, err := deedcrypt.EncryptMessage([]byte("secret"), publicKey)
	require.NoError(t, err)

	_, err = deedcrypt.DecryptMessage(encrypted, otherPrivateKey)
	assert.ErrorIs(t, err, deedcrypt.ErrDecryptionFailed)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	privateKey, publicKey := newKeyPair(t)

	raw := []byte("%PDF-1.4 pretend deed content")
	envelope := model.NewDeedEnvelope("deed.pdf", "application/pdf", raw)

	encrypted, err := deedcrypt.EncryptEnvelope(envelope, publicKey)
	require.NoError(t, err)

	decrypted, err := deedcrypt.DecryptEnvelope(encrypted, privateKey)
	require.NoError(t, err)
	assert.Equal(t, envelope, decrypted)

	content, err := decrypted.DecodeContent()
	require.NoError(t, err)
	assert.Equal(t, raw, content)
}

func TestPublicKeyFormats(t *testing.T) {
	privateKey, publicKey := newKeyPair(t)

	for _, variant := range []string{publicKey, "0x" + publicKey, "04" + publicKey} {
		encrypted, err := deedcrypt.EncryptMessage([]byte("probe"), variant)
		require.NoError(t, err, variant)

		decrypted, err := deedcrypt.DecryptMessage(encrypted, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "probe", string(decrypted))
	}

	_, err := deedcrypt.EncryptMessage([]byte("probe"), "not-a-key")
	assert.ErrorIs(t, err, deedcrypt.ErrInvalidPublicKey)
}

func TestValidateKeyPair(t *testing.T) {
	privateKey, publicKey := newKeyPair(t)
	assert.NoError(t, deedcrypt.ValidateKeyPair(privateKey, publicKey))

	otherPrivateKey, _ := newKeyPair(t)
	assert.Error(t, deedcrypt.ValidateKeyPair(otherPrivateKey, publicKey))

	err := deedcrypt.ValidateKeyPair("zz", publicKey)
	assert.ErrorIs(t, err, deedcrypt.ErrInvalidPrivateKey)
}

func TestCorruptedCiphertext(t *testing.T) {
	privateKey, publicKey := newKeyPair(t)

	encrypted, err := deedcrypt.EncryptMessage([]byte("secret"), publicKey)
	require.NoError(t, err)

	flipped := byte('0')
	if encrypted[len(encrypted)-1] == '0' {
		flipped = '1'
	}
	corrupted := encrypted[:len(encrypted)-1] + string(flipped)
	_, err = deedcrypt.DecryptMessage(corrupted, privateKey)
	assert.ErrorIs(t, err, deedcrypt.ErrDecryptionFailed)

	_, err = deedcrypt.DecryptMessage("not hex!", privateKey)
	assert.Error(t, err)
}
