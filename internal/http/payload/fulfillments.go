package payload

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
)

var requestIDFormat = regexp.MustCompile(`^(0x[0-9a-fA-F]{1,64}|[0-9]{1,78})$`)

// FulfillmentsRequest carries a request id as decimal or 0x-prefixed hex.
type FulfillmentsRequest struct {
	RequestID string
}

func (f FulfillmentsRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.RequestID,
			validation.Required,
			validation.Match(requestIDFormat),
			validation.By(fitsUint256),
		),
	)
}

// CanonicalRequestID returns the request id in the decimal form it is
// journaled under. It must only be called after Validate succeeded.
func (f FulfillmentsRequest) CanonicalRequestID() string {
	id, _ := parseRequestID(f.RequestID)
	return id.String()
}

func fitsUint256(value any) error {
	raw, _ := value.(string)
	id, ok := parseRequestID(raw)
	if !ok {
		return nil // reported by Match
	}
	if id.BitLen() > 256 {
		return errors.New("must fit in uint256")
	}
	return nil
}

func parseRequestID(raw string) (*big.Int, bool) {
	if hex, ok := strings.CutPrefix(raw, "0x"); ok {
		return new(big.Int).SetString(hex, 16)
	}
	return new(big.Int).SetString(raw, 10)
}
