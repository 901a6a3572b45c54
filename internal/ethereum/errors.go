package ethereum

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var ErrTransactionReverted error = errors.New("transaction reverted")

// FailureReason returns the revert reason carried by err when the node
// attached Error(string) revert data, and err's text otherwise.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := revertReason(dataErr.ErrorData()); ok {
			return reason
		}
	}

	return err.Error()
}

func revertReason(data any) (string, bool) {
	encoded, ok := data.(string)
	if !ok {
		return "", false
	}

	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return "", false
	}

	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}

	return reason, true
}
