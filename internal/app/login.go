package app

import (
	"context"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"land-registry/internal/blockchain"
	"land-registry/internal/deedcrypt"
)

// Login opens an official session. The wallet key proves who is signing
// verify/reject transactions; the decryption key is checked against the
// on-chain admin public key with an encrypt/decrypt probe before it is
// admitted to the session store.
func (a *App) Login(ctx context.Context, walletKeyHex, decryptionKeyHex string) (sessionID string, err error) {
	walletKey, err := ethcrypto.HexToECDSA(strings.TrimPrefix(walletKeyHex, "0x"))
	if err != nil {
		return "", blockchain.ErrInvalidSignerKey
	}
	walletAddress := ethcrypto.PubkeyToAddress(walletKey.PublicKey).Hex()

	isOfficial, err := a.chain.IsGovernmentOfficial(ctx, walletAddress)
	if err != nil {
		return "", err
	}
	if !isOfficial {
		return "", ErrNotOfficial
	}

	adminPublicKey, err := a.chain.AdminPublicKey(ctx)
	if err != nil {
		return "", err
	}
	if err := deedcrypt.ValidateKeyPair(decryptionKeyHex, adminPublicKey); err != nil {
		return "", err
	}

	return a.sessions.Create(walletAddress, walletKeyHex, decryptionKeyHex), nil
}

func (a *App) Logout(sessionID string) {
	a.sessions.Drop(sessionID)
}
