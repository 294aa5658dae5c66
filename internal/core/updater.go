package core

import (
	"context"
	"errors"
	"fmt"

	"txmerge/internal/ethereum"
	"txmerge/internal/metrics"
	"txmerge/internal/pending"
	"txmerge/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrMissingHash error = errors.New("transaction hash is missing")

const tracerName = "txmerge/core"

// NopPublisher drops every transaction. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishTransaction(context.Context, Transaction) error { return nil }

// Updater merges pending node data into stored transactions.
type Updater struct {
	logs      *zap.SugaredLogger
	repo      Repository
	node      NodeService
	parser    pending.Parser
	publisher Publisher
}

// NewUpdater is a constructor function for the Updater type.
func NewUpdater(logger *zap.SugaredLogger, repo Repository, node NodeService, parser pending.Parser, publisher Publisher) *Updater {
	return &Updater{
		logs:      logger,
		repo:      repo,
		node:      node,
		parser:    parser,
		publisher: publisher,
	}
}

// UpdatePending parses a raw node transaction object, merges it over the stored
// record with the same hash (or an empty one) and persists the result.
// Publishing failures are logged; the stored record is still returned.
func (u *Updater) UpdatePending(ctx context.Context, raw map[string]any, coin Coin) (tx Transaction, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "updater.update_pending")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	parsed := u.parser.ParseMap(raw)
	span.SetAttributes(
		attribute.String("tx.hash", parsed.Hash),
		attribute.String("coin.symbol", coin.Symbol),
		attribute.Int("tx.defaulted_fields", len(parsed.Defaulted)),
	)
	if len(parsed.Defaulted) > 0 {
		for _, field := range parsed.Defaulted {
			metrics.FieldsDefaulted.WithLabelValues(field).Inc()
		}
		u.logs.Debugw("pending transaction fields defaulted",
			"hash", parsed.Hash,
			"fields", parsed.Defaulted)
	}

	// the hash is the record's primary key
	if parsed.Hash == "" {
		metrics.PendingRejected.WithLabelValues(coin.Symbol, "missing_hash").Inc()
		return Transaction{}, ErrMissingHash
	}

	prior, err := u.GetTransaction(ctx, parsed.Hash)
	if err != nil && !errors.Is(err, ErrTransactionNotFound) {
		return Transaction{}, fmt.Errorf("get prior transaction: %w", err)
	}

	merged, err := Merge(prior, parsed, coin)
	if err != nil {
		metrics.PendingRejected.WithLabelValues(coin.Symbol, "invalid_sender").Inc()
		u.logs.Warnw("rejecting pending transaction",
			"hash", parsed.Hash,
			"from", parsed.From,
			"error", err)
		return Transaction{}, fmt.Errorf("merge pending transaction: %w", err)
	}

	if err := u.repo.SaveTransaction(ctx, recordToRepoTransaction(merged)); err != nil {
		return Transaction{}, fmt.Errorf("save transaction: %w", err)
	}
	metrics.PendingMerged.WithLabelValues(coin.Symbol).Inc()

	if err := u.publisher.PublishTransaction(ctx, merged); err != nil {
		u.logs.Errorw("failed to publish transaction",
			"hash", merged.ID,
			"error", err)
	}

	u.logs.Infow("pending transaction merged",
		"hash", merged.ID,
		"nonce", merged.Nonce,
		"operations", len(merged.Operations))

	return merged, nil
}

// Refresh pulls the transaction from the node and merges it.
func (u *Updater) Refresh(ctx context.Context, hash string, coin Coin) (Transaction, error) {
	raw, err := u.node.PendingTransaction(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.ErrTransactionNotFound) {
			return Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hash)
		}
		return Transaction{}, fmt.Errorf("fetch transaction from node: %w", err)
	}

	return u.UpdatePending(ctx, raw, coin)
}

// RefreshAll refreshes every hash it can. Transactions that could not be
// fetched or merged are left out of the result and reported in the error.
func (u *Updater) RefreshAll(ctx context.Context, hashes []string, coin Coin) ([]Transaction, error) {
	raws, aggrErr := u.node.PendingTransactions(ctx, hashes)
	if aggrErr != nil {
		u.logs.Errorw("fetching transactions from node", "error", aggrErr)
	}

	transactions := make([]Transaction, 0, len(raws))
	for _, raw := range raws {
		tx, err := u.UpdatePending(ctx, raw, coin)
		if err != nil {
			aggrErr = errors.Join(aggrErr, err)
			continue
		}
		transactions = append(transactions, tx)
	}

	u.logs.Infow("transactions refreshed", "requested", len(hashes), "merged", len(transactions))

	return transactions, aggrErr
}

// GetTransaction returns the stored transaction with the given id.
func (u *Updater) GetTransaction(ctx context.Context, id string) (Transaction, error) {
	tx, err := u.repo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	return repoTransactionToRecord(tx), nil
}

func recordToRepoTransaction(tx Transaction) repository.Transaction {
	operations := make([]repository.Operation, len(tx.Operations))
	for i, op := range tx.Operations {
		operations[i] = repository.Operation{
			Position:        i,
			From:            op.From,
			To:              op.To,
			ContractAddress: op.ContractAddress,
			Type:            op.Type,
			Value:           op.Value,
			Symbol:          op.Symbol,
			Name:            op.Name,
			Decimals:        op.Decimals,
		}
	}

	return repository.Transaction{
		ID:             tx.ID,
		BlockNumber:    tx.BlockNumber,
		From:           tx.From,
		To:             tx.To,
		Value:          tx.Value,
		Gas:            tx.Gas,
		GasPrice:       tx.GasPrice,
		GasUsed:        tx.GasUsed,
		Nonce:          tx.Nonce,
		ShardingFlag:   tx.ShardingFlag,
		SystemContract: tx.SystemContract,
		Via:            tx.Via,
		Date:           tx.Date,
		CoinIndex:      tx.Coin.Index,
		CoinSymbol:     tx.Coin.Symbol,
		CoinName:       tx.Coin.Name,
		State:          tx.State.String(),
		Operations:     operations,
	}
}

func repoTransactionToRecord(tx repository.Transaction) Transaction {
	var operations []Operation
	if len(tx.Operations) > 0 {
		operations = make([]Operation, len(tx.Operations))
		for i, op := range tx.Operations {
			operations[i] = Operation{
				From:            op.From,
				To:              op.To,
				ContractAddress: op.ContractAddress,
				Type:            op.Type,
				Value:           op.Value,
				Symbol:          op.Symbol,
				Name:            op.Name,
				Decimals:        op.Decimals,
			}
		}
	}

	state, err := ParseState(tx.State)
	if err != nil {
		state = StateUnknown
	}

	return Transaction{
		ID:             tx.ID,
		BlockNumber:    tx.BlockNumber,
		From:           tx.From,
		To:             tx.To,
		Value:          tx.Value,
		Gas:            tx.Gas,
		GasPrice:       tx.GasPrice,
		GasUsed:        tx.GasUsed,
		Nonce:          tx.Nonce,
		ShardingFlag:   tx.ShardingFlag,
		SystemContract: tx.SystemContract,
		Via:            tx.Via,
		Date:           tx.Date,
		Coin: Coin{
			Index:  tx.CoinIndex,
			Symbol: tx.CoinSymbol,
			Name:   tx.CoinName,
		},
		Operations: operations,
		State:      state,
	}
}
