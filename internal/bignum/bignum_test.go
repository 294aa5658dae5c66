package bignum_test

import (
	"strings"

	"txmerge/internal/bignum"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Codec", func() {
	Describe("NewCodec", func() {
		It("defaults to the big backend", func() {
			codec, err := bignum.NewCodec("")
			Expect(err).NotTo(HaveOccurred())
			Expect(codec).To(Equal(bignum.Big{}))
		})

		It("selects uint256 case-insensitively", func() {
			codec, err := bignum.NewCodec(" UINT256 ")
			Expect(err).NotTo(HaveOccurred())
			Expect(codec).To(Equal(bignum.Uint256{}))
		})

		It("rejects unknown backends", func() {
			_, err := bignum.NewCodec("float")
			Expect(err).To(MatchError(ContainSubstring(`unknown numeric backend "float"`)))
		})
	})

	for _, c := range []bignum.Codec{bignum.Big{}, bignum.Uint256{}} {
		codec := c

		Describe("ParseHex", func() {
			DescribeTable("valid digits",
				func(digits, want string) {
					v, err := codec.ParseHex(digits)
					Expect(err).NotTo(HaveOccurred())
					Expect(v.DecimalString()).To(Equal(want))
				},
				Entry("zero", "0", "0"),
				Entry("many zeros", "0000", "0"),
				Entry("leading zeros", "00ff", "255"),
				Entry("upper case", "5208", "21000"),
				Entry("mixed case", "De0B6b3A7640000", "1000000000000000000"),
				Entry("max uint256", strings.Repeat("f", 64),
					"115792089237316195423570985008687907853269984665640564039457584007913129639935"),
			)

			DescribeTable("invalid digits",
				func(digits string, want error) {
					_, err := codec.ParseHex(digits)
					Expect(err).To(MatchError(want))
				},
				Entry("empty", "", bignum.ErrEmptyDigits),
				Entry("negative", "-1", bignum.ErrSigned),
				Entry("plus sign", "+1", bignum.ErrSigned),
				Entry("non-hex", "xyz", bignum.ErrInvalidDigit),
				Entry("embedded space", "1 2", bignum.ErrInvalidDigit),
			)
		})
	}

	It("keeps precision beyond 256 bits with the big backend", func() {
		v, err := bignum.Big{}.ParseHex("1" + strings.Repeat("0", 64))
		Expect(err).NotTo(HaveOccurred())
		Expect(v.DecimalString()).To(Equal(
			"115792089237316195423570985008687907853269984665640564039457584007913129639936"))
	})

	It("reports overflow beyond 256 bits with the uint256 backend", func() {
		_, err := bignum.Uint256{}.ParseHex("1" + strings.Repeat("0", 64))
		Expect(err).To(MatchError(bignum.ErrOverflow))
	})
})
