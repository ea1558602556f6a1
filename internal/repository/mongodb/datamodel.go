package mongodb

import (
	"math/big"
	"time"

	"land-registry/internal/model"
)

type storedLand struct {
	ID                     int64     `bson:"_id"`
	OwnerFullName          string    `bson:"ownerFullName"`
	PlotNumber             string    `bson:"plotNumber"`
	LandSize               string    `bson:"landSize"`
	GpsCoordinates         string    `bson:"gpsCoordinates"`
	EncryptedTitleDeedHash string    `bson:"encryptedTitleDeedHash"`
	RejectionReason        string    `bson:"rejectionReason"`
	OwnerAddress           string    `bson:"ownerAddress"`
	Status                 uint8     `bson:"status"`
	Timestamp              time.Time `bson:"timestamp"`
	CachedAt               time.Time `bson:"cachedAt"`
}

func newStoredLand(record model.LandRecord) storedLand {
	size := "0"
	if record.LandSize != nil {
		size = record.LandSize.String()
	}

	return storedLand{
		ID:                     int64(record.ID),
		OwnerFullName:          record.OwnerFullName,
		PlotNumber:             record.PlotNumber,
		LandSize:               size,
		GpsCoordinates:         record.GpsCoordinates,
		EncryptedTitleDeedHash: record.EncryptedTitleDeedHash,
		RejectionReason:        record.RejectionReason,
		OwnerAddress:           record.OwnerAddress,
		Status:                 uint8(record.Status),
		Timestamp:              record.Timestamp,
		CachedAt:               time.Now().UTC(),
	}
}

func (s storedLand) toModel() model.LandRecord {
	size, ok := new(big.Int).SetString(s.LandSize, 10)
	if !ok {
		size = big.NewInt(0)
	}

	return model.LandRecord{
		ID:                     uint64(s.ID),
		OwnerFullName:          s.OwnerFullName,
		PlotNumber:             s.PlotNumber,
		LandSize:               size,
		GpsCoordinates:         s.GpsCoordinates,
		EncryptedTitleDeedHash: s.EncryptedTitleDeedHash,
		RejectionReason:        s.RejectionReason,
		OwnerAddress:           s.OwnerAddress,
		Status:                 model.VerificationStatus(s.Status),
		Timestamp:              s.Timestamp,
	}
}
