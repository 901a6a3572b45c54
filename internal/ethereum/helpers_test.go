package ethereum_test

import (
	"fliprelay/internal/ethereum"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/gomega"
)

var contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func flipABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(ethereum.FlipABI))
	Expect(err).NotTo(HaveOccurred())
	return parsed
}

func flipLog(requestID int64, player common.Address, choseHeads bool, blockNumber uint64) types.Log {
	ev := flipABI().Events[ethereum.FlipRequestedEvent]
	data, err := ev.Inputs.NonIndexed().Pack(choseHeads)
	Expect(err).NotTo(HaveOccurred())

	return types.Log{
		Address: contractAddress,
		Topics: []common.Hash{
			ev.ID,
			common.BigToHash(big.NewInt(requestID)),
			common.BytesToHash(player.Bytes()),
		},
		Data:        data,
		BlockNumber: blockNumber,
		TxHash:      common.BigToHash(big.NewInt(requestID + 1000)),
	}
}

// revertError mimics the JSON-RPC error the node returns for a reverted call.
type revertError struct {
	data string
}

func (e revertError) Error() string {
	return "execution reverted"
}

func (e revertError) ErrorData() interface{} {
	return e.data
}

func encodeRevert(reason string) string {
	stringType, err := abi.NewType("string", "", nil)
	Expect(err).NotTo(HaveOccurred())

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	Expect(err).NotTo(HaveOccurred())

	selector := []byte{0x08, 0xc3, 0x79, 0xa0}
	return hexutil.Encode(append(selector, packed...))
}
