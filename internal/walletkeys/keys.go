// Package walletkeys generates secp256k1 key material in the formats the
// registry works with: a hex private key for signing transactions, a
// 128 character hex public key for deed encryption and the derived
// wallet address.
package walletkeys

import (
	"encoding/hex"
	"errors"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

type WalletKeys struct {
	PrivateKeyHex string
	PublicKeyHex  string
	Address       string
}

func GenerateKeys() (WalletKeys, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return WalletKeys{}, errors.New("failed to generate the keys: " + err.Error())
	}

	// the public key is serialized without the 0x04 uncompressed-point
	// prefix, matching the encryption key format stored on the contract
	return WalletKeys{
		PrivateKeyHex: hex.EncodeToString(ethcrypto.FromECDSA(key)),
		PublicKeyHex:  hex.EncodeToString(ethcrypto.FromECDSAPub(&key.PublicKey)[1:]),
		Address:       ethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}
