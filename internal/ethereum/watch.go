package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

const (
	maxPollRange          = 2000
	maxResubscribeBackoff = 30 * time.Second
)

// WatchFlipRequests delivers every FlipRequested event emitted after the call
// to sink, in the order the node reports them. An error is returned only if
// the watch cannot be registered; afterwards transient node errors are logged
// and retried.
func (c *FlipContract) WatchFlipRequests(ctx context.Context, sink chan<- *FlipRequest) (event.Subscription, error) {
	if c.cfg.Streaming {
		return c.streamFlipRequests(ctx, sink)
	}
	return c.pollFlipRequests(ctx, sink)
}

func (c *FlipContract) filterQuery() geth.FilterQuery {
	return geth.FilterQuery{
		Addresses: []common.Address{c.cfg.Address},
		Topics:    [][]common.Hash{{c.abi.Events[FlipRequestedEvent].ID}},
	}
}

func (c *FlipContract) pollFlipRequests(ctx context.Context, sink chan<- *FlipRequest) (event.Subscription, error) {
	head, err := c.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get head block: %w", err)
	}

	c.logs.Infow("polling for flip requests",
		"contract", c.cfg.Address.Hex(),
		"from_block", head+1,
		"interval", c.cfg.PollInterval.String())

	next := head + 1
	return event.NewSubscription(func(quit <-chan struct{}) error {
		ticker := time.NewTicker(c.cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return nil
			case <-ticker.C:
				var open bool
				next, open = c.poll(ctx, next, sink, quit)
				if !open {
					return nil
				}
			}
		}
	}), nil
}

// poll fetches logs from block `from` up to the head, capped at maxPollRange
// blocks, and returns the next block to query. The window only advances when
// the logs were fetched.
func (c *FlipContract) poll(ctx context.Context, from uint64, sink chan<- *FlipRequest, quit <-chan struct{}) (uint64, bool) {
	latest, err := c.client.BlockNumber(ctx)
	if err != nil {
		c.logs.Warnw("failed to get head block", "error", err)
		return from, true
	}

	if latest < from {
		return from, true
	}

	to := latest
	if to-from+1 > maxPollRange {
		to = from + maxPollRange - 1
	}

	query := c.filterQuery()
	query.FromBlock = new(big.Int).SetUint64(from)
	query.ToBlock = new(big.Int).SetUint64(to)

	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		c.logs.Warnw("failed to filter flip request logs",
			"error", err,
			"from_block", from,
			"to_block", to)
		return from, true
	}

	for _, lg := range logs {
		if !c.deliver(lg, sink, quit) {
			return to + 1, false
		}
	}

	return to + 1, true
}

func (c *FlipContract) streamFlipRequests(ctx context.Context, sink chan<- *FlipRequest) (event.Subscription, error) {
	first, err := c.subscribe(ctx, sink)
	if err != nil {
		return nil, fmt.Errorf("subscribe to flip requests: %w", err)
	}

	c.logs.Infow("subscribed to flip requests", "contract", c.cfg.Address.Hex())

	return event.ResubscribeErr(maxResubscribeBackoff, func(ctx context.Context, lastErr error) (event.Subscription, error) {
		if first != nil {
			sub := first
			first = nil
			return sub, nil
		}

		c.logs.Warnw("flip request subscription dropped, resubscribing", "error", lastErr)
		return c.subscribe(ctx, sink)
	}), nil
}

func (c *FlipContract) subscribe(ctx context.Context, sink chan<- *FlipRequest) (event.Subscription, error) {
	logs := make(chan types.Log)
	sub, err := c.client.SubscribeFilterLogs(ctx, c.filterQuery(), logs)
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()

		for {
			select {
			case lg := <-logs:
				if !c.deliver(lg, sink, quit) {
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

// deliver decodes lg and hands it to sink. It reports false once the
// subscription has been closed.
func (c *FlipContract) deliver(lg types.Log, sink chan<- *FlipRequest, quit <-chan struct{}) bool {
	if lg.Removed {
		c.logs.Warnw("skipping removed flip request log",
			"tx_hash", lg.TxHash.Hex(),
			"block_number", lg.BlockNumber,
			"log_index", lg.Index)
		return true
	}

	req, err := c.parseFlipRequested(lg)
	if err != nil {
		c.logs.Errorw("failed to decode flip request log",
			"error", err,
			"tx_hash", lg.TxHash.Hex(),
			"log_index", lg.Index)
		return true
	}

	select {
	case sink <- req:
		return true
	case <-quit:
		return false
	}
}
