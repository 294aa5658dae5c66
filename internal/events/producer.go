package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"txmerge/internal/core"
	"txmerge/internal/metrics"
	"txmerge/internal/telemetry"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTopicPrefix = "txmerge-transactions"

var ErrNoBrokers error = errors.New("kafka brokers are required")

type ProducerConfig struct {
	Brokers     []string
	TopicPrefix string
}

// Producer publishes merged transactions, one topic per coin symbol, keyed by
// transaction hash so updates of one transaction stay ordered.
type Producer struct {
	writer MessageWriter
	prefix string
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return NewProducerWithWriter(writer, cfg.TopicPrefix), nil
}

func NewProducerWithWriter(writer MessageWriter, topicPrefix string) *Producer {
	if strings.TrimSpace(topicPrefix) == "" {
		topicPrefix = defaultTopicPrefix
	}
	return &Producer{
		writer: writer,
		prefix: topicPrefix,
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) PublishTransaction(ctx context.Context, tx core.Transaction) error {
	ctx, span := otel.Tracer("txmerge/events").Start(ctx, "events.publish_transaction",
		trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.String("tx.hash", tx.ID),
		attribute.String("coin.symbol", tx.Coin.Symbol),
	)

	payload, err := json.Marshal(toEvent(tx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.EventsPublished.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("encode transaction event: %w", err)
	}

	headers := make([]kafka.Header, 0, 2)
	telemetry.InjectKafkaHeaders(ctx, &headers)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   p.Topic(tx.Coin),
		Key:     []byte(tx.ID),
		Value:   payload,
		Headers: headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.EventsPublished.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("write transaction event: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}

// Topic returns the topic events for coin are written to.
func (p *Producer) Topic(coin core.Coin) string {
	symbol := strings.ToLower(strings.TrimSpace(coin.Symbol))
	if symbol == "" {
		symbol = "unknown"
	}
	return fmt.Sprintf("%s-%s", p.prefix, symbol)
}

func toEvent(tx core.Transaction) TransactionEvent {
	return TransactionEvent{
		Type:        TypePendingTransaction,
		ID:          tx.ID,
		CoinIndex:   tx.Coin.Index,
		CoinSymbol:  tx.Coin.Symbol,
		State:       tx.State.String(),
		From:        tx.From,
		To:          tx.To,
		Value:       tx.Value,
		Nonce:       tx.Nonce,
		BlockNumber: tx.BlockNumber,
		Operations:  len(tx.Operations),
		Date:        tx.Date,
	}
}
