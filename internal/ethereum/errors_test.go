package ethereum_test

import (
	"errors"
	"fliprelay/internal/ethereum"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FailureReason", func() {
	It("should be empty without an error", func() {
		Expect(ethereum.FailureReason(nil)).To(BeEmpty())
	})

	It("should decode a wrapped Error(string) revert", func() {
		err := fmt.Errorf("transact fulfillRandomness: %w", revertError{data: encodeRevert("unknown request")})
		Expect(ethereum.FailureReason(err)).To(Equal("unknown request"))
	})

	It("should fall back to the error text when the revert data is not a reason", func() {
		err := revertError{data: "0xdeadbeef"}
		Expect(ethereum.FailureReason(err)).To(Equal("execution reverted"))
	})

	It("should fall back to the error text when the data is not hex", func() {
		err := revertError{data: "not hex"}
		Expect(ethereum.FailureReason(err)).To(Equal("execution reverted"))
	})

	It("should use the error text for plain errors", func() {
		err := errors.New("insufficient funds for gas * price + value")
		Expect(ethereum.FailureReason(err)).To(Equal("insufficient funds for gas * price + value"))
	})
})
