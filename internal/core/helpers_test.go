package core_test

import (
	"context"
	"crypto/rand"
	"fliprelay/internal/ethereum"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

var (
	cryptoReader = rand.Reader

	account  = common.HexToAddress("0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1")
	contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	player   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func flipRequest(id int64) *ethereum.FlipRequest {
	return &ethereum.FlipRequest{
		RequestID:   big.NewInt(id),
		Player:      player,
		ChoseHeads:  id%2 == 0,
		BlockNumber: 100 + uint64(id),
		TxHash:      common.BigToHash(big.NewInt(1000 + id)),
		LogIndex:    uint(id % 4),
	}
}

func fulfillmentTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &contract,
		Gas:      300000,
		GasPrice: big.NewInt(1),
	})
}

// feed returns a WatchFlipRequests stub that pushes reqs and then idles
// until unsubscribed.
func feed(reqs ...*ethereum.FlipRequest) func(context.Context, chan<- *ethereum.FlipRequest) (event.Subscription, error) {
	return func(_ context.Context, sink chan<- *ethereum.FlipRequest) (event.Subscription, error) {
		return event.NewSubscription(func(quit <-chan struct{}) error {
			for _, req := range reqs {
				select {
				case sink <- req:
				case <-quit:
					return nil
				}
			}
			<-quit
			return nil
		}), nil
	}
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
