package core

import (
	"context"
	"crypto/rand"
	"errors"
	"fliprelay/internal/ethereum"
	"fliprelay/internal/metrics"
	"fliprelay/internal/repository"
	"fmt"
	"io"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/params"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FulfillmentGasLimit is sent with every fulfillRandomness call; gas is never estimated.
const FulfillmentGasLimit uint64 = 300000

const (
	randomValueSize = 32
	sinkBuffer      = 64

	// balanceMaxAge bounds how stale the balance served by Status may be.
	balanceMaxAge = 30 * time.Second
)

// Entropy is the source of random values handed to the contract.
var Entropy io.Reader = rand.Reader

var ErrJournalDisabled error = errors.New("fulfillment journal is disabled")
var ErrFulfillmentNotFound error = errors.New("fulfillment not found")

// Relay answers FlipRequested events with fulfillRandomness transactions.
type Relay struct {
	logs  *zap.SugaredLogger
	chain ChainService
	repo  Repository

	handlers  sync.WaitGroup
	received  atomic.Uint64
	confirmed atomic.Uint64
	failed    atomic.Uint64
	inFlight  atomic.Int64

	balanceMu sync.Mutex
	balance   *big.Int
	balanceAt time.Time
}

// NewRelay creates a relay. A nil repo disables the fulfillment journal.
func NewRelay(logger *zap.SugaredLogger, chain ChainService, repo Repository) *Relay {
	return &Relay{
		logs:  logger,
		chain: chain,
		repo:  repo,
	}
}

// Serve checks the account balance and then runs the relay until ctx is done.
func (r *Relay) Serve(ctx context.Context) error {
	if err := r.CheckBalance(ctx); err != nil {
		return err
	}

	return r.Run(ctx)
}

// CheckBalance logs the signing account balance. An empty account only
// produces a warning.
func (r *Relay) CheckBalance(ctx context.Context) error {
	balance, err := r.refreshBalance(ctx)
	if err != nil {
		return fmt.Errorf("check account balance: %w", err)
	}

	account := r.chain.Account().Hex()
	r.logs.Infow("account balance",
		"account", account,
		"balance_wei", balance.String(),
		"balance_eth", formatEther(balance))

	if balance.Sign() == 0 {
		r.logs.Warnw("account has no funds, fulfillments will fail until it is topped up", "account", account)
	}

	return nil
}

// Run listens for flip requests and handles each one on its own goroutine.
// It returns nil once ctx is done and an error if the listener cannot be
// registered or terminates.
func (r *Relay) Run(ctx context.Context) error {
	sink := make(chan *ethereum.FlipRequest, sinkBuffer)

	sub, err := r.chain.WatchFlipRequests(ctx, sink)
	if err != nil {
		return fmt.Errorf("register flip request listener: %w", err)
	}
	defer sub.Unsubscribe()

	r.logs.Infow("relay started",
		"account", r.chain.Account().Hex(),
		"contract", r.chain.Address().Hex())

	for {
		select {
		case req := <-sink:
			r.dispatch(ctx, req)
		case err := <-sub.Err():
			if err == nil {
				return errors.New("flip request listener closed")
			}
			return fmt.Errorf("flip request listener: %w", err)
		case <-ctx.Done():
			r.logs.Infow("relay stopped", "in_flight", r.inFlight.Load())
			return nil
		}
	}
}

func (r *Relay) dispatch(ctx context.Context, req *ethereum.FlipRequest) {
	r.handlers.Add(1)
	go func() {
		defer r.handlers.Done()
		r.HandleFlipRequest(context.WithoutCancel(ctx), req)
	}()
}

// Wait blocks until every dispatched handler has returned.
func (r *Relay) Wait() {
	r.handlers.Wait()
}

// HandleFlipRequest generates a random value for req, submits it and waits
// for the receipt. Failures are logged with the request id and never
// returned.
func (r *Relay) HandleFlipRequest(ctx context.Context, req *ethereum.FlipRequest) {
	started := time.Now()
	record := repository.Fulfillment{
		ID:            uuid.NewString(),
		RequestID:     req.RequestID.String(),
		Player:        req.Player.Hex(),
		ChoseHeads:    req.ChoseHeads,
		RequestTxHash: req.TxHash.Hex(),
		Status:        StatusFailed,
		StartedAt:     started,
	}
	logs := r.logs.With("fulfillment_id", record.ID, "request_id", record.RequestID)

	r.received.Add(1)
	r.inFlight.Add(1)
	metrics.FlipRequestReceived()

	// finish runs last, after any panic in the handler body was recovered.
	defer r.finish(ctx, logs, &record)
	defer func() {
		if p := recover(); p != nil {
			record.Status = StatusFailed
			record.Reason = fmt.Sprintf("panic: %v", p)
			logs.Errorw("fulfillment handler panicked", "panic", p)
		}
	}()

	logs.Infow("flip request received",
		"player", record.Player,
		"chose_heads", req.ChoseHeads,
		"block_number", req.BlockNumber,
		"tx_hash", record.RequestTxHash,
		"log_index", req.LogIndex)

	confirmation, err := r.fulfill(ctx, logs, req, &record)
	if err != nil {
		record.Reason = ethereum.FailureReason(err)
		logs.Errorw("fulfillment failed",
			"error", err,
			"reason", record.Reason,
			"tx_hash", record.TxHash)
		return
	}

	record.Status = StatusConfirmed
	record.BlockNumber = confirmation.BlockNumber
	logs.Infow("fulfillment confirmed",
		"tx_hash", confirmation.TxHash.Hex(),
		"block_number", confirmation.BlockNumber,
		"gas_used", confirmation.GasUsed)

	if _, err := r.refreshBalance(ctx); err != nil {
		logs.Warnw("failed to refresh account balance", "error", err)
	}
}

func (r *Relay) fulfill(ctx context.Context, logs *zap.SugaredLogger, req *ethereum.FlipRequest, record *repository.Fulfillment) (ethereum.Confirmation, error) {
	random, err := randomValue()
	if err != nil {
		return ethereum.Confirmation{}, fmt.Errorf("generate random value: %w", err)
	}
	record.RandomValue = random.String()
	logs.Infow("random value generated", "random_value", record.RandomValue)

	tx, err := r.chain.SubmitFulfillment(ctx, ethereum.Fulfillment{
		RequestID:   req.RequestID,
		RandomValue: random,
		GasLimit:    FulfillmentGasLimit,
	})
	if err != nil {
		return ethereum.Confirmation{}, fmt.Errorf("submit fulfillment: %w", err)
	}
	record.TxHash = tx.Hash().Hex()
	logs.Infow("fulfillment submitted", "tx_hash", record.TxHash)

	confirmation, err := r.chain.WaitConfirmed(ctx, tx)
	if err != nil {
		return ethereum.Confirmation{}, fmt.Errorf("wait for confirmation: %w", err)
	}

	return confirmation, nil
}

// finish settles the counters and journals record. A panic while
// journaling is logged and never leaves the handler goroutine.
func (r *Relay) finish(ctx context.Context, logs *zap.SugaredLogger, record *repository.Fulfillment) {
	record.CompletedAt = time.Now()

	r.inFlight.Add(-1)
	if record.Status == StatusConfirmed {
		r.confirmed.Add(1)
	} else {
		r.failed.Add(1)
	}

	defer func() {
		if p := recover(); p != nil {
			logs.Errorw("fulfillment bookkeeping panicked", "panic", p, "status", record.Status)
		}
	}()

	metrics.ObserveFulfillment(record.Status, record.CompletedAt.Sub(record.StartedAt))

	if r.repo == nil {
		return
	}

	if err := r.repo.SaveFulfillment(ctx, *record); err != nil {
		logs.Warnw("failed to journal fulfillment", "error", err, "status", record.Status)
	}
}

// Status reports the signing account, its balance and handler counters. The
// balance is the last one observed unless it is older than balanceMaxAge.
func (r *Relay) Status(ctx context.Context) (RelayStatus, error) {
	balance, ok := r.cachedBalance()
	if !ok {
		var err error
		balance, err = r.refreshBalance(ctx)
		if err != nil {
			return RelayStatus{}, fmt.Errorf("get account balance: %w", err)
		}
	}

	return RelayStatus{
		Account:    r.chain.Account().Hex(),
		Contract:   r.chain.Address().Hex(),
		BalanceWei: balance.String(),
		Received:   r.received.Load(),
		Confirmed:  r.confirmed.Load(),
		Failed:     r.failed.Load(),
		InFlight:   r.inFlight.Load(),
	}, nil
}

// Fulfillments returns the journaled attempts for requestID, oldest first.
func (r *Relay) Fulfillments(ctx context.Context, requestID string) ([]FulfillmentRecord, error) {
	if r.repo == nil {
		return nil, ErrJournalDisabled
	}

	rows, err := r.repo.GetFulfillments(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrFulfillmentNotFound) {
			return nil, ErrFulfillmentNotFound
		}
		return nil, fmt.Errorf("get fulfillments: %w", err)
	}

	records := make([]FulfillmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRecord(row))
	}

	return records, nil
}

func (r *Relay) refreshBalance(ctx context.Context) (*big.Int, error) {
	balance, err := r.chain.Balance(ctx)
	if err != nil {
		return nil, err
	}

	metrics.SetAccountBalance(balance)

	r.balanceMu.Lock()
	r.balance = new(big.Int).Set(balance)
	r.balanceAt = time.Now()
	r.balanceMu.Unlock()

	return balance, nil
}

func (r *Relay) cachedBalance() (*big.Int, bool) {
	r.balanceMu.Lock()
	defer r.balanceMu.Unlock()

	if r.balance == nil || time.Since(r.balanceAt) > balanceMaxAge {
		return nil, false
	}
	return new(big.Int).Set(r.balance), true
}

func randomValue() (*big.Int, error) {
	buf := make([]byte, randomValueSize)
	if _, err := io.ReadFull(Entropy, buf); err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(buf), nil
}

func formatEther(wei *big.Int) string {
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return eth.Text('f', -1)
}
