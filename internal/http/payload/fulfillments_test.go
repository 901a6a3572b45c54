package payload_test

import (
	"fliprelay/internal/http/payload"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FulfillmentsRequest", func() {
	DescribeTable("Validate",
		func(requestID string, valid bool) {
			err := payload.FulfillmentsRequest{RequestID: requestID}.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("decimal", "42", true),
		Entry("hex", "0x2a", true),
		Entry("max uint256 in hex", "0x"+strings.Repeat("f", 64), true),
		Entry("empty", "", false),
		Entry("negative", "-1", false),
		Entry("letters", "abc", false),
		Entry("hex without digits", "0x", false),
		Entry("above uint256", "2"+strings.Repeat("0", 77), false),
	)

	DescribeTable("CanonicalRequestID",
		func(requestID, expected string) {
			Expect(payload.FulfillmentsRequest{RequestID: requestID}.CanonicalRequestID()).To(Equal(expected))
		},
		Entry("decimal", "42", "42"),
		Entry("leading zeros", "0042", "42"),
		Entry("hex", "0x2a", "42"),
	)
})
