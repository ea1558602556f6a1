// Package blockchain wraps the deployed LandRegistry contract behind typed
// calls and event watchers. All registry state lives in the contract; this
// client only shapes requests and decodes responses.
package blockchain

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"land-registry/internal/model"
)

var (
	ErrInvalidAddress   = errors.New("invalid contract or wallet address")
	ErrInvalidSignerKey = errors.New("invalid signer private key")
)

type Client struct {
	logger    *zap.Logger
	backend   *ethclient.Client
	wsBackend *ethclient.Client
	contract  *bind.BoundContract
	abi       abi.ABI
	address   common.Address
	chainID   *big.Int
}

// NewClient dials the chain over both transports: HTTP for calls and
// transactions, websocket for log subscriptions.
func NewClient(ctx context.Context, logger *zap.Logger, rpcURL, wsURL, contractAddress string, chainID int64) (*Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, ErrInvalidAddress
	}

	parsed, err := abi.JSON(strings.NewReader(landRegistryABI))
	if err != nil {
		return nil, errors.New("failed to parse the contract ABI: " + err.Error())
	}

	backend, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.New("failed to dial the RPC endpoint: " + err.Error())
	}

	wsBackend, err := ethclient.DialContext(ctx, wsURL)
	if err != nil {
		backend.Close()
		return nil, errors.New("failed to dial the websocket endpoint: " + err.Error())
	}

	address := common.HexToAddress(contractAddress)

	return &Client{
		logger:    logger,
		backend:   backend,
		wsBackend: wsBackend,
		contract:  bind.NewBoundContract(address, parsed, backend, backend, backend),
		abi:       parsed,
		address:   address,
		chainID:   big.NewInt(chainID),
	}, nil
}

func (c *Client) Close() {
	c.backend.Close()
	c.wsBackend.Close()
}

func (c *Client) AdminPublicKey(ctx context.Context) (string, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "adminPublicKey"); err != nil {
		return "", errors.New("adminPublicKey call failed: " + err.Error())
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *Client) IsGovernmentOfficial(ctx context.Context, walletAddress string) (bool, error) {
	if !common.IsHexAddress(walletAddress) {
		return false, ErrInvalidAddress
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "governmentOfficials", common.HexToAddress(walletAddress)); err != nil {
		return false, errors.New("governmentOfficials call failed: " + err.Error())
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Client) GetLandByID(ctx context.Context, id uint64) (model.LandRecord, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getLandById", new(big.Int).SetUint64(id)); err != nil {
		return model.LandRecord{}, errors.New("getLandById call failed: " + err.Error())
	}

	raw := *abi.ConvertType(out[0], new(rawLandRecord)).(*rawLandRecord)
	return raw.toModel(), nil
}

func (c *Client) GetAllLands(ctx context.Context) ([]model.LandRecord, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getAllLands"); err != nil {
		return nil, errors.New("getAllLands call failed: " + err.Error())
	}

	return toModelRecords(*abi.ConvertType(out[0], new([]rawLandRecord)).(*[]rawLandRecord)), nil
}

func (c *Client) GetLandsByOwner(ctx context.Context, ownerAddress string) ([]model.LandRecord, error) {
	if !common.IsHexAddress(ownerAddress) {
		return nil, ErrInvalidAddress
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getLandsByOwner", common.HexToAddress(ownerAddress)); err != nil {
		return nil, errors.New("getLandsByOwner call failed: " + err.Error())
	}

	return toModelRecords(*abi.ConvertType(out[0], new([]rawLandRecord)).(*[]rawLandRecord)), nil
}

// RegisterLand submits the registration transaction and returns the record
// id assigned by the contract, recovered from the LandRegistered event of
// the mined receipt.
func (c *Client) RegisterLand(ctx context.Context, signerKeyHex, plotNumber string, landSize *big.Int, gpsCoordinates, deedCID, ownerFullName string) (uint64, error) {
	receipt, err := c.transact(ctx, signerKeyHex, "registerLand", plotNumber, landSize, gpsCoordinates, deedCID, ownerFullName)
	if err != nil {
		return 0, err
	}

	var event LandRegisteredEvent
	if err := c.unpackReceiptEvent(&event, "LandRegistered", receipt); err != nil {
		return 0, err
	}

	c.logger.Info("land registered", zap.Uint64("id", event.Id.Uint64()), zap.String("plotNumber", plotNumber))

	return event.Id.Uint64(), nil
}

func (c *Client) VerifyLand(ctx context.Context, signerKeyHex string, id uint64) error {
	_, err := c.transact(ctx, signerKeyHex, "verifyLand", new(big.Int).SetUint64(id))
	return err
}

func (c *Client) RejectLand(ctx context.Context, signerKeyHex string, id uint64, reason string) error {
	_, err := c.transact(ctx, signerKeyHex, "rejectLand", new(big.Int).SetUint64(id), reason)
	return err
}

// GenerateProof transacts generateProof and recovers the issued hash from
// the ProofGenerated event. The function's bytes32 return value is not
// consumable from a transaction; the event log is the source of truth.
func (c *Client) GenerateProof(ctx context.Context, signerKeyHex string, id uint64) (common.Hash, error) {
	receipt, err := c.transact(ctx, signerKeyHex, "generateProof", new(big.Int).SetUint64(id))
	if err != nil {
		return common.Hash{}, err
	}

	var event ProofGeneratedEvent
	if err := c.unpackReceiptEvent(&event, "ProofGenerated", receipt); err != nil {
		return common.Hash{}, err
	}

	return common.Hash(event.ProofHash), nil
}

// SubmitProof transacts verifyProof. The resulting land id arrives
// asynchronously through the ProofUsed event stream, not from this call.
func (c *Client) SubmitProof(ctx context.Context, signerKeyHex string, proofHash common.Hash) error {
	_, err := c.transact(ctx, signerKeyHex, "verifyProof", [32]byte(proofHash))
	return err
}

func (c *Client) transact(ctx context.Context, signerKeyHex, method string, params ...interface{}) (*types.Receipt, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(signerKeyHex, "0x"))
	if err != nil {
		return nil, ErrInvalidSignerKey
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return nil, errors.New("failed to build the transactor: " + err.Error())
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		return nil, errors.New(method + " transaction failed: " + err.Error())
	}

	c.logger.Debug("transaction submitted", zap.String("method", method), zap.String("tx", tx.Hash().Hex()))

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, errors.New("waiting for " + method + " to be mined failed: " + err.Error())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, errors.New(method + " transaction reverted, tx: " + tx.Hash().Hex())
	}

	return receipt, nil
}

// unpackReceiptEvent finds the first log of the given event emitted by the
// contract within the receipt and unpacks it into out.
func (c *Client) unpackReceiptEvent(out interface{}, eventName string, receipt *types.Receipt) error {
	eventID := c.abi.Events[eventName].ID

	for _, entry := range receipt.Logs {
		if entry.Address != c.address || len(entry.Topics) == 0 || entry.Topics[0] != eventID {
			continue
		}
		if err := c.contract.UnpackLog(out, eventName, *entry); err != nil {
			return errors.New("failed to unpack the " + eventName + " event: " + err.Error())
		}
		return nil
	}

	return errors.New("transaction receipt carries no " + eventName + " event")
}

func toModelRecords(raw []rawLandRecord) []model.LandRecord {
	records := make([]model.LandRecord, len(raw))
	for i, entry := range raw {
		records[i] = entry.toModel()
	}
	return records
}
