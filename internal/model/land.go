package model

import (
	"math/big"
	"time"
)

// LandSizeDecimals is the fixed-point scale used by the contract for land
// sizes: acres are stored on chain multiplied by 10^5.
const LandSizeDecimals = 5

type VerificationStatus uint8

const (
	StatusPending  VerificationStatus = 0
	StatusApproved VerificationStatus = 1
	StatusRejected VerificationStatus = 2
)

var statusLabels = map[VerificationStatus]string{
	StatusPending:  "pending",
	StatusApproved: "approved",
	StatusRejected: "rejected",
}

func (s VerificationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for the status. The wire values 0/1/2 are
// fixed by the contract and must not be renumbered.
func (s VerificationStatus) Label() string {
	label, ok := statusLabels[s]
	if !ok {
		return "unknown"
	}
	return label
}

// LandRecord is an immutable snapshot of a record held by the contract.
// Once the status is no longer pending the record never changes again,
// except for proof side effects that live outside the record itself.
type LandRecord struct {
	ID                     uint64
	OwnerFullName          string
	PlotNumber             string
	LandSize               *big.Int
	GpsCoordinates         string
	EncryptedTitleDeedHash string
	RejectionReason        string
	OwnerAddress           string
	Status                 VerificationStatus
	Timestamp              time.Time
}

// IsSettled reports whether the record left the pending state. Settled
// records are immutable and safe to cache.
func (r LandRecord) IsSettled() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// SizeInAcres converts the scaled on-chain land size back to acres,
// e.g. 250000 with 5 decimals displays as 2.5.
func (r LandRecord) SizeInAcres() float64 {
	if r.LandSize == nil {
		return 0
	}
	size, _ := new(big.Float).SetInt(r.LandSize).Float64()
	return size / pow10(LandSizeDecimals)
}

// AcresToChainUnits scales an acre amount to the integer representation
// expected by registerLand.
func AcresToChainUnits(acres float64) *big.Int {
	scaled := new(big.Float).Mul(big.NewFloat(acres), big.NewFloat(pow10(LandSizeDecimals)))
	units, _ := scaled.Int(nil)
	return units
}

func pow10(decimals int) float64 {
	result := 1.0
	for i := 0; i < decimals; i++ {
		result *= 10
	}
	return result
}
