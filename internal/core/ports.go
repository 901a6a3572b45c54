package core

import (
	"context"
	"fliprelay/internal/ethereum"
	"fliprelay/internal/repository"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Account() common.Address
	Address() common.Address
	Balance(ctx context.Context) (*big.Int, error)
	WatchFlipRequests(ctx context.Context, sink chan<- *ethereum.FlipRequest) (event.Subscription, error)
	SubmitFulfillment(ctx context.Context, f ethereum.Fulfillment) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (ethereum.Confirmation, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveFulfillment(ctx context.Context, fulfillment repository.Fulfillment) error
	GetFulfillments(ctx context.Context, requestID string) ([]repository.Fulfillment, error)
}
