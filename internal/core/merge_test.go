package core_test

import (
	"strings"
	"time"

	"txmerge/internal/address"
	"txmerge/internal/core"
	"txmerge/internal/pending"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	sender    = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	recipient = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

var _ = Describe("Merge", func() {
	var (
		prior   core.Transaction
		tx      pending.PendingTransaction
		coin    core.Coin
		now     time.Time
		merged  core.Transaction
		err     error
		restore func() time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		restore = core.TimeNow
		core.TimeNow = func() time.Time { return now }

		prior = core.Transaction{
			ID:      "0xhash",
			GasUsed: "21000",
			State:   core.StateFailed,
			Operations: []core.Operation{
				{From: sender, To: recipient, Type: "token_transfer", Value: "5", Symbol: "TKN", Decimals: 18},
				{From: recipient, To: sender, Type: "token_transfer", Value: "1", Symbol: "TKN", Decimals: 18},
			},
		}
		tx = pending.PendingTransaction{
			BlockHash:      "0xblock",
			BlockNumber:    "1234",
			From:           strings.ToLower(sender),
			To:             strings.ToLower(recipient),
			Gas:            "21000",
			GasPrice:       "1000000000",
			Hash:           "0xhash",
			Value:          "1000000000000000000",
			Nonce:          7,
			ShardingFlag:   "1",
			SystemContract: "0",
			Via:            "0xvia",
		}
		coin = core.Coin{Index: 314, Symbol: "MOAC", Name: "MOAC"}
	})

	AfterEach(func() {
		core.TimeNow = restore
	})

	JustBeforeEach(func() {
		merged, err = core.Merge(prior, tx, coin)
	})

	It("builds a pending record from the parsed transaction", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(merged).To(Equal(core.Transaction{
			ID:             "0xhash",
			BlockNumber:    1234,
			From:           sender,
			To:             recipient,
			Value:          "1000000000000000000",
			Gas:            "21000",
			GasPrice:       "1000000000",
			GasUsed:        "",
			Nonce:          7,
			ShardingFlag:   "1",
			SystemContract: "0",
			Via:            "0xvia",
			Date:           now,
			Coin:           coin,
			Operations:     prior.Operations,
			State:          core.StatePending,
		}))
	})

	It("copies the operations instead of sharing them", func() {
		Expect(merged.Operations).To(Equal(prior.Operations))
		merged.Operations[0].Value = "999"
		Expect(prior.Operations[0].Value).To(Equal("5"))
	})

	When("the prior record has no operations", func() {
		BeforeEach(func() {
			prior = core.Transaction{}
		})

		It("leaves operations empty", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(merged.Operations).To(BeEmpty())
			Expect(merged.State).To(Equal(core.StatePending))
		})
	})

	When("the sender is not an address", func() {
		BeforeEach(func() {
			tx.From = "not-an-address"
		})

		It("fails regardless of the other fields", func() {
			Expect(err).To(MatchError(core.ErrInvalidSender))
			Expect(err).To(MatchError(address.ErrInvalidAddress))
			Expect(merged).To(Equal(core.Transaction{}))
		})
	})

	When("the sender is empty", func() {
		BeforeEach(func() {
			tx.From = ""
		})

		It("fails", func() {
			Expect(err).To(MatchError(core.ErrInvalidSender))
		})
	})

	When("the recipient is not an address", func() {
		BeforeEach(func() {
			tx.To = "contract-creation"
		})

		It("keeps the raw recipient", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(merged.To).To(Equal("contract-creation"))
		})
	})

	When("the recipient is empty", func() {
		BeforeEach(func() {
			tx.To = ""
		})

		It("keeps it empty", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(merged.To).To(BeEmpty())
		})
	})

	When("the block number is not an integer", func() {
		BeforeEach(func() {
			tx.BlockNumber = "99999999999999999999999"
		})

		It("uses zero", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(merged.BlockNumber).To(BeZero())
		})
	})

	When("the nonce is unknown", func() {
		BeforeEach(func() {
			tx.Nonce = pending.NonceUnknown
		})

		It("carries the sentinel through", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(merged.Nonce).To(Equal(int64(-1)))
		})
	})

	It("merges what the parser produces from a node object", func() {
		parsed := pending.ParseMap(map[string]any{
			"from":  sender,
			"to":    "0x",
			"hash":  "0xfeed",
			"gas":   "0x5208",
			"value": "0xde0b6b3a7640000",
			"nonce": "0x1",
		})

		out, err := core.Merge(prior, parsed, coin)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.ID).To(Equal("0xfeed"))
		Expect(out.To).To(Equal("0x"))
		Expect(out.Gas).To(Equal("21000"))
		Expect(out.Value).To(Equal("1000000000000000000"))
		Expect(out.Nonce).To(Equal(int64(1)))
		Expect(out.BlockNumber).To(BeZero())
	})
})

var _ = Describe("State", func() {
	It("parses known states", func() {
		st, err := core.ParseState("pending")
		Expect(err).NotTo(HaveOccurred())
		Expect(st).To(Equal(core.StatePending))
	})

	It("rejects unknown states", func() {
		_, err := core.ParseState("mined")
		Expect(err).To(MatchError(ContainSubstring(`unknown transaction state "mined"`)))
	})

	It("unmarshals from text", func() {
		var st core.State
		Expect(st.UnmarshalText([]byte("deleted"))).To(Succeed())
		Expect(st.String()).To(Equal("deleted"))
		Expect(st.UnmarshalText([]byte("nope"))).NotTo(Succeed())
	})
})
