package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"txmerge/internal/db"
	"txmerge/internal/metrics"

	"go.uber.org/zap"
)

const (
	cacheKeyPrefix  = "txmerge:tx:"
	defaultCacheTTL = 5 * time.Minute
)

// CachedRepository serves transaction reads from a cache and falls back to
// the wrapped store. Saves write the new record to the cache and only
// invalidate the entry when that write fails. A read miss that loaded the
// row before a concurrent save can still refill the old record after it;
// that entry lives until the TTL expires or the next save. Cache failures
// are logged and never fail the call.
type CachedRepository struct {
	logs  *zap.SugaredLogger
	base  TransactionStore
	cache Cache
	ttl   time.Duration
}

func NewCachedRepository(logger *zap.SugaredLogger, base TransactionStore, cache Cache, ttl time.Duration) *CachedRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedRepository{
		logs:  logger,
		base:  base,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedRepository) SaveTransaction(ctx context.Context, transaction Transaction) error {
	if err := r.base.SaveTransaction(ctx, transaction); err != nil {
		return err
	}

	key := cacheKey(transaction.ID)
	if err := r.store(ctx, key, savedCopy(transaction)); err == nil {
		return nil
	}

	if err := r.cache.Delete(ctx, key); err != nil {
		r.logs.Warnw("failed to invalidate cached transaction",
			"hash", transaction.ID,
			"error", err)
	}
	return nil
}

func (r *CachedRepository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	key := cacheKey(id)

	cached, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var transaction Transaction
		if err := json.Unmarshal(cached, &transaction); err == nil {
			metrics.CacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return transaction, nil
		}
		r.logs.Warnw("dropping undecodable cached transaction", "hash", id)
	case errors.Is(err, db.ErrNotFound):
		metrics.CacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	default:
		metrics.CacheLookups.WithLabelValues(metrics.ResultError).Inc()
		r.logs.Warnw("transaction cache lookup failed", "hash", id, "error", err)
	}

	transaction, err := r.base.GetTransactionByID(ctx, id)
	if err != nil {
		return Transaction{}, err
	}

	_ = r.store(ctx, key, transaction)

	return transaction, nil
}

func (r *CachedRepository) store(ctx context.Context, key string, transaction Transaction) error {
	payload, err := json.Marshal(transaction)
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
		r.logs.Warnw("failed to cache transaction", "hash", transaction.ID, "error", err)
		return err
	}
	return nil
}

// savedCopy mirrors the operation bookkeeping SaveTransaction applies in the
// store. Operation IDs are left to the store.
func savedCopy(transaction Transaction) Transaction {
	operations := make([]Operation, len(transaction.Operations))
	for i, op := range transaction.Operations {
		op.TransactionID = transaction.ID
		op.Position = i
		operations[i] = op
	}
	transaction.Operations = operations
	return transaction
}

func cacheKey(id string) string {
	return cacheKeyPrefix + id
}
