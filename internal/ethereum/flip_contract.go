package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// FlipABI describes the only contract surface the relay touches.
const FlipABI = `[
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "uint256", "name": "requestId", "type": "uint256"},
			{"indexed": true, "internalType": "address", "name": "player", "type": "address"},
			{"indexed": false, "internalType": "bool", "name": "choseHeads", "type": "bool"}
		],
		"name": "FlipRequested",
		"type": "event"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "requestId", "type": "uint256"},
			{"internalType": "uint256", "name": "randomness", "type": "uint256"}
		],
		"name": "fulfillRandomness",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const (
	FlipRequestedEvent = "FlipRequested"
	FulfillMethod      = "fulfillRandomness"

	defaultPollInterval = 4 * time.Second
)

type ContractConfig struct {
	Address      common.Address
	Key          *ecdsa.PrivateKey
	PollInterval time.Duration
	// Streaming selects eth_subscribe instead of log polling.
	Streaming bool
}

// FlipContract binds the signing account to the coin flip contract.
type FlipContract struct {
	logs       *zap.SugaredLogger
	client     EthClient
	abi        abi.ABI
	contract   *bind.BoundContract
	transactor *bind.TransactOpts
	cfg        ContractConfig
}

// NewFlipContract derives the signing account from the key and binds it to
// the contract at cfg.Address. It reads the chain id, so an unreachable
// node fails here.
func NewFlipContract(ctx context.Context, logger *zap.SugaredLogger, client EthClient, cfg ContractConfig) (*FlipContract, error) {
	if cfg.Key == nil {
		return nil, fmt.Errorf("signing key is required")
	}

	parsed, err := abi.JSON(strings.NewReader(FlipABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	transactor, err := bind.NewKeyedTransactorWithChainID(cfg.Key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create keyed transactor: %w", err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	logger.Infow("contract bound",
		"contract", cfg.Address.Hex(),
		"account", transactor.From.Hex(),
		"chain_id", chainID.String())

	return &FlipContract{
		logs:       logger,
		client:     client,
		abi:        parsed,
		contract:   bind.NewBoundContract(cfg.Address, parsed, client, client, client),
		transactor: transactor,
		cfg:        cfg,
	}, nil
}

// Account is the address paying for fulfillments.
func (c *FlipContract) Account() common.Address {
	return c.transactor.From
}

func (c *FlipContract) Address() common.Address {
	return c.cfg.Address
}

// Balance returns the latest balance of the signing account in wei.
func (c *FlipContract) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, c.Account(), nil)
	if err != nil {
		return nil, fmt.Errorf("get balance of %s: %w", c.Account().Hex(), err)
	}
	return balance, nil
}

// SubmitFulfillment signs and sends fulfillRandomness(requestId, randomValue)
// with the gas limit of f. Nonce and fee selection are left to the binding.
func (c *FlipContract) SubmitFulfillment(ctx context.Context, f Fulfillment) (*types.Transaction, error) {
	opts := *c.transactor
	opts.Context = ctx
	opts.GasLimit = f.GasLimit

	tx, err := c.contract.Transact(&opts, FulfillMethod, f.RequestID, f.RandomValue)
	if err != nil {
		return nil, fmt.Errorf("transact %s: %w", FulfillMethod, err)
	}

	return tx, nil
}

// WaitConfirmed blocks until tx is mined. A mined but reverted transaction
// is reported as ErrTransactionReverted.
func (c *FlipContract) WaitConfirmed(ctx context.Context, tx *types.Transaction) (Confirmation, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("wait mined: %w", err)
	}

	confirmation := Confirmation{
		TxHash:  receipt.TxHash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		confirmation.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return confirmation, c.revertError(ctx, tx, receipt)
	}

	return confirmation, nil
}

// revertError replays the reverted call on top of the parent of its block to
// recover the reason. Transactions placed before it in the same block are not
// replayed, so the reason is a best effort.
func (c *FlipContract) revertError(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) error {
	var replayAt *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		replayAt = new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	}

	msg := geth.CallMsg{
		From:  c.Account(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}

	_, err := c.client.CallContract(ctx, msg, replayAt)
	if err != nil {
		return fmt.Errorf("%w in block %v: %w", ErrTransactionReverted, receipt.BlockNumber, err)
	}

	return fmt.Errorf("%w in block %v", ErrTransactionReverted, receipt.BlockNumber)
}

func (c *FlipContract) parseFlipRequested(lg types.Log) (*FlipRequest, error) {
	var event struct {
		RequestId  *big.Int
		Player     common.Address
		ChoseHeads bool
	}

	if err := c.contract.UnpackLog(&event, FlipRequestedEvent, lg); err != nil {
		return nil, fmt.Errorf("unpack %s log: %w", FlipRequestedEvent, err)
	}

	return &FlipRequest{
		RequestID:   event.RequestId,
		Player:      event.Player,
		ChoseHeads:  event.ChoseHeads,
		BlockNumber: lg.BlockNumber,
		TxHash:      lg.TxHash,
		LogIndex:    lg.Index,
	}, nil
}
