package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"txmerge/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const getTransactionByHash = "eth_getTransactionByHash"

// maxConcurrentCalls bounds in-flight node requests per batch.
const maxConcurrentCalls = 8

var ErrTransactionNotFound error = errors.New("transaction not found on node")

// NodeService reads transaction objects from a node without decoding them, so
// chain-specific fields survive for the parser.
type NodeService struct {
	client RPCClient
}

func NewNodeService(client RPCClient) *NodeService {
	return &NodeService{
		client: client,
	}
}

func (s *NodeService) PendingTransaction(ctx context.Context, hash string) (map[string]any, error) {
	res := s.getTransactionByHash(ctx, hash)
	return res.Transaction, res.Error
}

// PendingTransactions fetches hashes concurrently. Results keep the order of
// hashes with failed lookups left out; their errors are joined.
func (s *NodeService) PendingTransactions(ctx context.Context, hashes []string) ([]map[string]any, error) {
	results := make([]*txResult, len(hashes))

	var g errgroup.Group
	g.SetLimit(maxConcurrentCalls)
	for i, hash := range hashes {
		g.Go(func() error {
			results[i] = s.getTransactionByHash(ctx, hash)
			return nil
		})
	}
	// lookups report failures through their results
	_ = g.Wait()

	var transactions []map[string]any
	var aggrErr error
	for _, result := range results {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		transactions = append(transactions, result.Transaction)
	}

	return transactions, aggrErr
}

func (s *NodeService) getTransactionByHash(ctx context.Context, hash string) *txResult {
	ctx, span := otel.Tracer("txmerge/ethereum").Start(ctx, "node."+getTransactionByHash,
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("tx.hash", hash))

	start := time.Now()
	var raw map[string]any
	err := s.client.CallContext(ctx, &raw, getTransactionByHash, hash)
	metrics.NodeLatency.WithLabelValues(getTransactionByHash).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NodeRequests.WithLabelValues(getTransactionByHash, metrics.ResultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &txResult{Error: fmt.Errorf("fetching transaction %q: %w", hash, err)}
	}

	// the node answers null for hashes it has never seen
	if raw == nil {
		metrics.NodeRequests.WithLabelValues(getTransactionByHash, metrics.ResultNotFound).Inc()
		return &txResult{Error: fmt.Errorf("fetching transaction %q: %w", hash, ErrTransactionNotFound)}
	}

	metrics.NodeRequests.WithLabelValues(getTransactionByHash, metrics.ResultOK).Inc()
	return &txResult{Transaction: raw}
}
