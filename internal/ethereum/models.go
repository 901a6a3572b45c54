package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FlipRequest is a decoded FlipRequested event.
type FlipRequest struct {
	RequestID   *big.Int
	Player      common.Address
	ChoseHeads  bool
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

type Fulfillment struct {
	RequestID   *big.Int
	RandomValue *big.Int
	GasLimit    uint64
}

type Confirmation struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}
