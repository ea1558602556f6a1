package blockchain

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Event structs are unpacked by field position and name from the contract
// logs; the field names must match the ABI argument names.

type LandRegisteredEvent struct {
	Id         *big.Int
	PlotNumber string
	Owner      common.Address
}

type ProofGeneratedEvent struct {
	Id        *big.Int
	ProofHash [32]byte
	Owner     common.Address
}

type ProofUsedEvent struct {
	Id        *big.Int
	ProofHash [32]byte
	Verifier  common.Address
}

// WatchProofUsed subscribes to ProofUsed logs of the contract. The
// subscription lives until ctx is cancelled; cancelling tears it down and
// closes the returned channels, so an abandoned wait leaks nothing.
func (c *Client) WatchProofUsed(ctx context.Context) (<-chan ProofUsedEvent, <-chan error, error) {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{c.abi.Events["ProofUsed"].ID}},
	}

	logs := make(chan types.Log)
	subscription, err := c.wsBackend.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return nil, nil, errors.New("failed to subscribe to ProofUsed events: " + err.Error())
	}

	events := make(chan ProofUsedEvent)
	subErrs := make(chan error, 1)

	go func() {
		defer subscription.Unsubscribe()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return

			case err := <-subscription.Err():
				if err != nil {
					subErrs <- err
				}
				return

			case entry := <-logs:
				var event ProofUsedEvent
				if err := c.contract.UnpackLog(&event, "ProofUsed", entry); err != nil {
					c.logger.Error("failed to unpack a ProofUsed event: "+err.Error(), zap.String("tx", entry.TxHash.Hex()))
					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, subErrs, nil
}

// IsValidProofHash reports whether the input is exactly the expected proof
// representation: 66 characters, a 0x prefix followed by 32 hex-encoded
// bytes. Anything else is rejected before any contract call.
func IsValidProofHash(proof string) bool {
	if len(proof) != 66 || !strings.HasPrefix(proof, "0x") {
		return false
	}

	_, err := hex.DecodeString(proof[2:])
	return err == nil
}

func ParseProofHash(proof string) (common.Hash, error) {
	if !IsValidProofHash(proof) {
		return common.Hash{}, errors.New("proof must be a 66 character 0x-prefixed hash")
	}

	return common.HexToHash(proof), nil
}
