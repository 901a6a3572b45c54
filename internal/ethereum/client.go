package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
)

var _ EthClient = (*ethclient.Client)(nil)

// Dial connects to the RPC endpoint. HTTP endpoints connect lazily, so an
// unreachable node surfaces on the first call.
func Dial(ctx context.Context, rawURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint: %w", err)
	}
	return client, nil
}
