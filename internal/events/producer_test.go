package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"txmerge/internal/core"
	"txmerge/internal/events"
	"txmerge/internal/events/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Producer", func() {
	var (
		producer   *events.Producer
		fakeWriter *fake.MessageWriter
		tx         core.Transaction
		err        error
	)

	BeforeEach(func() {
		fakeWriter = new(fake.MessageWriter)
		producer = events.NewProducerWithWriter(fakeWriter, "")
		tx = core.Transaction{
			ID:          "0xabc",
			From:        "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			Value:       "1000",
			Nonce:       7,
			BlockNumber: 12,
			Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Coin:        core.Coin{Index: 60, Symbol: "ETH", Name: "Ethereum"},
			Operations:  []core.Operation{{Type: "token_transfer"}},
			State:       core.StatePending,
		}
	})

	JustBeforeEach(func() {
		err = producer.PublishTransaction(context.Background(), tx)
	})

	When("the broker accepts the message", func() {
		It("writes one message keyed by hash on the coin topic", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeWriter.WriteMessagesCallCount()).To(Equal(1))

			_, msgs := fakeWriter.WriteMessagesArgsForCall(0)
			Expect(msgs).To(HaveLen(1))
			Expect(msgs[0].Topic).To(Equal("txmerge-transactions-eth"))
			Expect(string(msgs[0].Key)).To(Equal("0xabc"))

			var event events.TransactionEvent
			Expect(json.Unmarshal(msgs[0].Value, &event)).To(Succeed())
			Expect(event).To(Equal(events.TransactionEvent{
				Type:        events.TypePendingTransaction,
				ID:          "0xabc",
				CoinIndex:   60,
				CoinSymbol:  "ETH",
				State:       "pending",
				From:        tx.From,
				Value:       "1000",
				Nonce:       7,
				BlockNumber: 12,
				Operations:  1,
				Date:        tx.Date,
			}))
		})
	})

	When("the broker rejects the message", func() {
		BeforeEach(func() {
			fakeWriter.WriteMessagesReturns(errors.New("leader not available"))
		})

		It("returns a wrapped error", func() {
			Expect(err).To(MatchError(ContainSubstring("write transaction event: leader not available")))
		})
	})

	Describe("Topic", func() {
		It("uses the configured prefix", func() {
			p := events.NewProducerWithWriter(fakeWriter, "wallet")
			Expect(p.Topic(core.Coin{Symbol: " MOAC "})).To(Equal("wallet-moac"))
			Expect(p.Topic(core.Coin{})).To(Equal("wallet-unknown"))
		})
	})

	It("requires brokers", func() {
		_, err := events.NewProducer(events.ProducerConfig{})
		Expect(err).To(MatchError(events.ErrNoBrokers))
	})

	It("closes the writer", func() {
		Expect(producer.Close()).To(Succeed())
		Expect(fakeWriter.CloseCallCount()).To(Equal(1))
	})
})
