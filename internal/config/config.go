package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var ErrEnvVarNotFound error = errors.New("environment variable not found")

const (
	contractAddressEnvKey = "CONTRACT_ADDRESS"
	privateKeyEnvKey      = "PRIVATE_KEY"
	rpcURLEnvKey          = "RPC_URL"
	apiPortEnvKey         = "API_PORT"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	pollIntervalEnvKey    = "POLL_INTERVAL"
)

const (
	// DefaultRPCURL is the Sepolia test network endpoint used when RPC_URL is not set.
	DefaultRPCURL       = "https://ethereum-sepolia-rpc.publicnode.com"
	DefaultPollInterval = 4 * time.Second
	minPollInterval     = 100 * time.Millisecond
)

type App struct {
	ContractAddress string
	PrivateKey      string
	RPCURL          string
	APIPort         string
	DBConnectionURL string
	PollInterval    time.Duration
}

// NewApp reads the relay configuration from the environment. The contract
// address and the private key are mandatory.
func NewApp() (App, error) {
	contractAddress, err := requiredEnv(contractAddressEnvKey)
	if err != nil {
		return App{}, err
	}

	privateKey, err := requiredEnv(privateKeyEnvKey)
	if err != nil {
		return App{}, err
	}

	pollInterval := DefaultPollInterval
	if raw := optionalEnv(pollIntervalEnvKey, ""); raw != "" {
		pollInterval, err = time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", pollIntervalEnvKey, err)
		}
	}

	app := App{
		ContractAddress: contractAddress,
		PrivateKey:      privateKey,
		RPCURL:          optionalEnv(rpcURLEnvKey, DefaultRPCURL),
		APIPort:         optionalEnv(apiPortEnvKey, ""),
		DBConnectionURL: optionalEnv(dbConnEnvKey, ""),
		PollInterval:    pollInterval,
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ContractAddress, validation.Required, validation.By(hexAddress)),
		validation.Field(&a.PrivateKey, validation.Required, validation.By(hexPrivateKey)),
		validation.Field(&a.RPCURL, validation.Required, is.URL),
		validation.Field(&a.APIPort, is.Port),
		validation.Field(&a.PollInterval, validation.Min(minPollInterval)),
	)
}

// Contract returns the configured contract address.
func (a App) Contract() common.Address {
	return common.HexToAddress(a.ContractAddress)
}

// SigningKey parses the configured private key. A 0x prefix is accepted.
func (a App) SigningKey() (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(a.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// Streaming reports whether the RPC endpoint supports push subscriptions.
func (a App) Streaming() bool {
	return strings.HasPrefix(a.RPCURL, "ws://") || strings.HasPrefix(a.RPCURL, "wss://")
}

func requiredEnv(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvVarNotFound, key)
	}
	return strings.TrimSpace(value), nil
}

func optionalEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func hexAddress(value any) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errors.New("must be a 20-byte hex address")
	}
	return nil
}

func hexPrivateKey(value any) error {
	s, _ := value.(string)
	// the key itself must never end up in the error text
	if _, err := crypto.HexToECDSA(strings.TrimPrefix(s, "0x")); err != nil {
		return errors.New("must be a 32-byte hex private key")
	}
	return nil
}
