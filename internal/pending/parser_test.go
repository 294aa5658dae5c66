package pending_test

import (
	"strings"

	"txmerge/internal/bignum"
	"txmerge/internal/hexnum"
	"txmerge/internal/pending"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parser", func() {
	var (
		raw    map[string]any
		parsed pending.PendingTransaction
	)

	JustBeforeEach(func() {
		parsed = pending.ParseMap(raw)
	})

	When("every key is missing", func() {
		BeforeEach(func() {
			raw = map[string]any{}
		})

		It("falls back to zero quantities, empty strings and an unknown nonce", func() {
			Expect(parsed).To(Equal(pending.PendingTransaction{
				BlockNumber:    "0",
				Gas:            "0",
				GasPrice:       "0",
				Value:          "0",
				ShardingFlag:   "0",
				SystemContract: "0",
				Nonce:          -1,
				Defaulted: []string{
					pending.KeyBlockNumber,
					pending.KeyGas,
					pending.KeyGasPrice,
					pending.KeyValue,
					pending.KeyShardingFlag,
					pending.KeySystemContract,
					pending.KeyNonce,
				},
			}))
			Expect(parsed.NonceKnown()).To(BeFalse())
		})
	})

	When("the mapping is nil", func() {
		BeforeEach(func() {
			raw = nil
		})

		It("behaves like an empty mapping", func() {
			Expect(parsed.Gas).To(Equal("0"))
			Expect(parsed.Nonce).To(Equal(pending.NonceUnknown))
		})
	})

	When("quantities are hex encoded", func() {
		BeforeEach(func() {
			raw = map[string]any{
				"gas":   "0x5208",
				"value": "0xde0b6b3a7640000",
				"nonce": "0x1",
			}
		})

		It("normalizes them to base 10", func() {
			Expect(parsed.Gas).To(Equal("21000"))
			Expect(parsed.Value).To(Equal("1000000000000000000"))
			Expect(parsed.Nonce).To(Equal(int64(1)))
			Expect(parsed.Defaulted).NotTo(ContainElement(pending.KeyNonce))
			Expect(parsed.Defaulted).NotTo(ContainElement(pending.KeyGas))
		})
	})

	When("a full node object is given", func() {
		BeforeEach(func() {
			raw = map[string]any{
				"blockHash":      "0xabc",
				"blockNumber":    "0x10",
				"from":           "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
				"to":             "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
				"gas":            "0x5208",
				"gasPrice":       "0x3b9aca00",
				"hash":           "0xdeadbeef",
				"value":          "0x0",
				"nonce":          "0x0",
				"shardingFlag":   "0x1",
				"systemContract": "0x0",
				"via":            "0x0000000000000000000000000000000000000000",
				"input":          "0x",
			}
		})

		It("copies identifiers verbatim and normalizes quantities", func() {
			Expect(parsed).To(Equal(pending.PendingTransaction{
				BlockHash:      "0xabc",
				BlockNumber:    "16",
				From:           "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
				To:             "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
				Gas:            "21000",
				GasPrice:       "1000000000",
				Hash:           "0xdeadbeef",
				Value:          "0",
				Nonce:          0,
				ShardingFlag:   "1",
				SystemContract: "0",
				Via:            "0x0000000000000000000000000000000000000000",
			}))
			Expect(parsed.NonceKnown()).To(BeTrue())
		})
	})

	When("quantities are malformed", func() {
		BeforeEach(func() {
			raw = map[string]any{
				"blockNumber": "pending",
				"gas":         "0x",
				"gasPrice":    "",
				"value":       "0xzz",
				"nonce":       "0xnope",
			}
		})

		It("substitutes decimal zero and an unknown nonce", func() {
			Expect(parsed.BlockNumber).To(Equal("0"))
			Expect(parsed.Gas).To(Equal("0"))
			Expect(parsed.GasPrice).To(Equal("0"))
			Expect(parsed.Value).To(Equal("0"))
			Expect(parsed.Nonce).To(Equal(pending.NonceUnknown))
			Expect(parsed.Defaulted).To(ConsistOf(
				pending.KeyBlockNumber,
				pending.KeyGas,
				pending.KeyGasPrice,
				pending.KeyValue,
				pending.KeyShardingFlag,
				pending.KeySystemContract,
				pending.KeyNonce,
			))
		})
	})

	When("the nonce does not fit 64 bits", func() {
		BeforeEach(func() {
			raw = map[string]any{"nonce": "0x8000000000000000"}
		})

		It("marks the nonce unknown", func() {
			Expect(parsed.Nonce).To(Equal(pending.NonceUnknown))
		})
	})

	When("the nonce is the largest signed 64-bit value", func() {
		BeforeEach(func() {
			raw = map[string]any{"nonce": "0x7fffffffffffffff"}
		})

		It("keeps it", func() {
			Expect(parsed.Nonce).To(Equal(int64(9223372036854775807)))
		})
	})

	When("values are not strings", func() {
		BeforeEach(func() {
			raw = map[string]any{
				"gas":  21000,
				"from": nil,
				"hash": []byte("0x1"),
			}
		})

		It("treats them as absent", func() {
			Expect(parsed.Gas).To(Equal("0"))
			Expect(parsed.From).To(BeEmpty())
			Expect(parsed.Hash).To(BeEmpty())
			Expect(parsed.Defaulted).To(ContainElement(pending.KeyGas))
		})
	})

	Describe("numeric backend", func() {
		It("degrades wide values when bounded to 256 bits", func() {
			p := pending.NewParser(hexnum.NewNormalizer(bignum.Uint256{}))
			tx := p.ParseMap(map[string]any{"value": "0x1" + strings.Repeat("0", 64)})
			Expect(tx.Value).To(Equal("0"))
			Expect(tx.Defaulted).To(ContainElement(pending.KeyValue))
		})
	})
})

var _ = Describe("DecodeFields", func() {
	It("reads string values and treats other JSON types as absent", func() {
		fields := pending.DecodeFields(map[string]any{
			"gas":   "0x5208",
			"nonce": float64(7),
			"to":    nil,
			"extra": "x",
		})
		Expect(fields.Gas).To(HaveValue(Equal("0x5208")))
		Expect(fields.Nonce).To(BeNil())
		Expect(fields.To).To(BeNil())
	})
})
