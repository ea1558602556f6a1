package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	viper.Set("REQ_TIMEOUT", "")
	timeout := GetRequestTimeout()
	assert.Equal(t, timeout, defaultRequestTimeout)

	viper.Set("REQ_TIMEOUT", "14s")
	timeout = GetRequestTimeout()
	assert.Equal(t, timeout, 14*time.Second)
}

func TestProofWaitTimeout(t *testing.T) {
	viper.Set("PROOF_WAIT_TIMEOUT", "")
	assert.Equal(t, defaultProofWaitTimeout, GetProofWaitTimeout())

	viper.Set("PROOF_WAIT_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, GetProofWaitTimeout())
}

func TestPort(t *testing.T) {
	viper.Set("PORT", "")
	assert.Equal(t, defaultLocalPort, GetPort())

	viper.Set("PORT", "8077")
	assert.Equal(t, ":8077", GetPort())
}

func TestChainID(t *testing.T) {
	viper.Set("CHAIN_ID", "")
	assert.Equal(t, int64(defaultChainID), GetChainID())

	viper.Set("CHAIN_ID", "11155111")
	assert.Equal(t, int64(11155111), GetChainID())
}
