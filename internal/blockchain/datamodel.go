package blockchain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"land-registry/internal/model"
)

// rawLandRecord mirrors the LandRecord tuple layout of the contract ABI.
// Field order matters: the ABI decoder assigns by position within the tuple.
type rawLandRecord struct {
	Id                     *big.Int
	OwnerFullName          string
	PlotNumber             string
	LandSize               *big.Int
	GpsCoordinates         string
	EncryptedTitleDeedHash string
	Status                 uint8
	RejectionReason        string
	Owner                  common.Address
	Timestamp              *big.Int
}

func (r rawLandRecord) toModel() model.LandRecord {
	record := model.LandRecord{
		OwnerFullName:          r.OwnerFullName,
		PlotNumber:             r.PlotNumber,
		LandSize:               r.LandSize,
		GpsCoordinates:         r.GpsCoordinates,
		EncryptedTitleDeedHash: r.EncryptedTitleDeedHash,
		RejectionReason:        r.RejectionReason,
		OwnerAddress:           r.Owner.Hex(),
		Status:                 model.VerificationStatus(r.Status),
	}
	if r.Id != nil {
		record.ID = r.Id.Uint64()
	}
	if r.Timestamp != nil {
		record.Timestamp = time.Unix(r.Timestamp.Int64(), 0).UTC()
	}
	return record
}
