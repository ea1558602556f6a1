// Package app coordinates the land registry flows between the contract,
// the pinning service, the record cache and the session store.
package app

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"land-registry/internal/blockchain"
	"land-registry/internal/model"
	"land-registry/internal/session"
	"land-registry/internal/verification"
)

var (
	ErrNotPending       = errors.New("the record is no longer pending")
	ErrNotApproved      = errors.New("proofs can only be issued for approved records")
	ErrNotOfficial      = errors.New("this wallet has no government official privileges")
	ErrEmptyReason      = errors.New("a rejection requires a non-empty reason")
	ErrProofWaitExpired = errors.New("no matching proof event arrived in time")
)

// ChainClient is the contract collaborator; implemented by
// blockchain.Client.
type ChainClient interface {
	AdminPublicKey(ctx context.Context) (string, error)
	IsGovernmentOfficial(ctx context.Context, walletAddress string) (bool, error)
	GetLandByID(ctx context.Context, id uint64) (model.LandRecord, error)
	GetAllLands(ctx context.Context) ([]model.LandRecord, error)
	GetLandsByOwner(ctx context.Context, ownerAddress string) ([]model.LandRecord, error)
	RegisterLand(ctx context.Context, signerKeyHex, plotNumber string, landSize *big.Int, gpsCoordinates, deedCID, ownerFullName string) (uint64, error)
	VerifyLand(ctx context.Context, signerKeyHex string, id uint64) error
	RejectLand(ctx context.Context, signerKeyHex string, id uint64, reason string) error
	GenerateProof(ctx context.Context, signerKeyHex string, id uint64) (common.Hash, error)
	SubmitProof(ctx context.Context, signerKeyHex string, proofHash common.Hash) error
	WatchProofUsed(ctx context.Context) (<-chan blockchain.ProofUsedEvent, <-chan error, error)
}

// DeedStore is the content-addressed storage collaborator; implemented by
// pinata.Client.
type DeedStore interface {
	UploadFile(ctx context.Context, fileName string, content []byte) (string, error)
	FetchText(ctx context.Context, cid string) (string, error)
}

// RecordCache holds immutable snapshots of settled records; implemented by
// mongodb.Repository. May be nil, the service then always reads the chain.
type RecordCache interface {
	CacheLand(ctx context.Context, record model.LandRecord) error
	GetLand(ctx context.Context, id uint64) (model.LandRecord, error)
}

type App struct {
	logger           *zap.Logger
	chain            ChainClient
	deeds            DeedStore
	cache            RecordCache
	sessions         *session.Store
	submissions      *verification.Tracker
	proofWaitTimeout time.Duration
}

func NewApp(logger *zap.Logger, chain ChainClient, deeds DeedStore, cache RecordCache, sessions *session.Store, proofWaitTimeout time.Duration) *App {
	return &App{
		logger:           logger,
		chain:            chain,
		deeds:            deeds,
		cache:            cache,
		sessions:         sessions,
		submissions:      verification.NewTracker(),
		proofWaitTimeout: proofWaitTimeout,
	}
}
