package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"land-registry/internal/app"
	"land-registry/internal/blockchain"
	"land-registry/internal/config"
	"land-registry/internal/ports/http"
	"land-registry/internal/repository/mongodb"
	"land-registry/internal/session"
	"land-registry/internal/storage/pinata"
)

func main() {
	logger, err := getLogger()
	if err != nil {
		log.Fatalln("setting up the logger failed: ", err)
		return
	}
	defer logger.Sync()

	logger.Info("application started")

	chain, err := blockchain.NewClient(context.Background(), logger,
		config.GetRPCURL(), config.GetWsURL(), config.GetContractAddress(), config.GetChainID())
	if err != nil {
		logger.Fatal("failed to connect to the contract: " + err.Error())
	}
	defer chain.Close()

	deeds := pinata.NewClient(logger,
		config.GetPinataAPIURL(), config.GetPinataGatewayURL(), config.GetPinataJWT())

	// the record cache is an optimization, the service runs without it
	var cache app.RecordCache
	repo, err := mongodb.NewConnection(logger, config.GetDbConnectionURI(), config.GetDatabaseName())
	if err != nil {
		logger.Warn("record cache unavailable, reading the chain directly: " + err.Error())
	} else {
		defer repo.Disconnect()
		cache = repo
	}

	sessions := session.NewStore(logger, config.GetSessionTTL())

	a := app.NewApp(logger, chain, deeds, cache, sessions, config.GetProofWaitTimeout())
	ser := http.NewServer(logger, a, config.GetPort())
	if err := ser.Run(); err != nil {
		logger.Error("failed to run the server: " + err.Error())
	}

	logger.Info("application finished")
}

func getLogger() (*zap.Logger, error) {
	options := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.FatalLevel),
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	config.Development = true
	config.Level.SetLevel(zap.DebugLevel)

	logger, err := config.Build()
	return logger.WithOptions(options...), err
}
