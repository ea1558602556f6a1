// Package session keeps government officials' decryption keys for the
// lifetime of a login session. Keys live only in this in-memory cache;
// they are never persisted and never written to logs.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ErrNoSessionKey means the caller has no live session; the operation must
// be re-authenticated rather than failed inline.
var ErrNoSessionKey = errors.New("no private key in the session")

type Session struct {
	WalletAddress string
	// the official's own wallet key, signs verify/reject transactions
	SignerKeyHex string
	// the shared admin key, decrypts pinned title deeds
	DecryptionKeyHex string
}

type Store struct {
	logger *zap.Logger
	cache  *cache.Cache
}

func NewStore(logger *zap.Logger, ttl time.Duration) *Store {
	return &Store{
		logger: logger,
		cache:  cache.New(ttl, ttl),
	}
}

// Create admits a validated key and returns the opaque session id handed
// back to the client.
func (s *Store) Create(walletAddress, signerKeyHex, decryptionKeyHex string) string {
	id := uuid.NewString()
	s.cache.SetDefault(id, Session{
		WalletAddress:    walletAddress,
		SignerKeyHex:     signerKeyHex,
		DecryptionKeyHex: decryptionKeyHex,
	})

	s.logger.Info("session created", zap.String("wallet", walletAddress))

	return id
}

func (s *Store) Get(sessionID string) (Session, error) {
	entry, ok := s.cache.Get(sessionID)
	if !ok {
		return Session{}, ErrNoSessionKey
	}

	return entry.(Session), nil
}

func (s *Store) Drop(sessionID string) {
	s.cache.Delete(sessionID)
}
