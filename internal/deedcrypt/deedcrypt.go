// Package deedcrypt encrypts title deed envelopes for the government
// admin key and decrypts them again. The scheme is ECIES over secp256k1,
// compatible with keys generated for the chain.
package deedcrypt

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"

	"land-registry/internal/model"
)

var (
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrDecryptionFailed  = errors.New("decryption failed")
)

// EncryptEnvelope serializes the envelope to JSON and encrypts it with the
// admin public key, returning the ciphertext flattened to a hex string
// ready for upload.
func EncryptEnvelope(envelope model.DeedEnvelope, publicKeyHex string) (string, error) {
	serialized, err := json.Marshal(envelope)
	if err != nil {
		return "", errors.New("failed to serialize the envelope: " + err.Error())
	}

	return EncryptMessage(serialized, publicKeyHex)
}

// DecryptEnvelope is the inverse of EncryptEnvelope.
func DecryptEnvelope(ciphertext, privateKeyHex string) (model.DeedEnvelope, error) {
	plaintext, err := DecryptMessage(ciphertext, privateKeyHex)
	if err != nil {
		return model.DeedEnvelope{}, err
	}

	var envelope model.DeedEnvelope
	if err := json.Unmarshal(plaintext, &envelope); err != nil {
		return model.DeedEnvelope{}, errors.New("failed to parse the decrypted envelope: " + err.Error())
	}

	return envelope, nil
}

func EncryptMessage(plaintext []byte, publicKeyHex string) (string, error) {
	publicKey, err := parsePublicKey(publicKeyHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := ecies.Encrypt(rand.Reader, publicKey, plaintext, nil, nil)
	if err != nil {
		return "", errors.New("encryption failed: " + err.Error())
	}

	return hex.EncodeToString(ciphertext), nil
}

func DecryptMessage(ciphertext, privateKeyHex string) ([]byte, error) {
	privateKey, err := parsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(ciphertext, "0x"))
	if err != nil {
		return nil, errors.New("ciphertext is not a valid hex string: " + err.Error())
	}

	plaintext, err := privateKey.Decrypt(raw, nil, nil)
	if err != nil {
		// wrong key and corrupted ciphertext are indistinguishable here
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// ValidateKeyPair checks that the private key matches the public key by
// running a small message through an encrypt/decrypt round trip. Used at
// official login before the key is admitted to the session store.
func ValidateKeyPair(privateKeyHex, publicKeyHex string) error {
	const probe = "hi"

	encrypted, err := EncryptMessage([]byte(probe), publicKeyHex)
	if err != nil {
		return err
	}

	decrypted, err := DecryptMessage(encrypted, privateKeyHex)
	if err != nil {
		return err
	}
	if string(decrypted) != probe {
		return ErrDecryptionFailed
	}

	return nil
}

// parsePublicKey accepts the formats the chain hands out: 128 hex chars
// (uncompressed point without the 04 prefix, as stored by adminPublicKey)
// or 130 hex chars starting with 04, either with or without a leading 0x.
func parsePublicKey(publicKeyHex string) (*ecies.PublicKey, error) {
	trimmed := strings.TrimPrefix(publicKeyHex, "0x")
	if len(trimmed) == 128 {
		trimmed = "04" + trimmed
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	publicKey, err := ethcrypto.UnmarshalPubkey(raw)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	return ecies.ImportECDSAPublic(publicKey), nil
}

func parsePrivateKey(privateKeyHex string) (*ecies.PrivateKey, error) {
	privateKey, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}

	return ecies.ImportECDSA(privateKey), nil
}
