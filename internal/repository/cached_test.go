package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"txmerge/internal/db"
	"txmerge/internal/repository"
	"txmerge/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("CachedRepository", func() {
	var (
		cached    *repository.CachedRepository
		fakeStore *fake.TransactionStore
		fakeCache *fake.Cache
		ctx       context.Context
		stored    repository.Transaction
		fakeErr   error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake-error")
		fakeStore = new(fake.TransactionStore)
		fakeCache = new(fake.Cache)
		cached = repository.NewCachedRepository(zap.NewNop().Sugar(), fakeStore, fakeCache, time.Minute)

		stored = repository.Transaction{
			ID:    "0xabc",
			Nonce: 3,
			State: "pending",
			Operations: []repository.Operation{
				{TransactionID: "0xabc", Position: 0, Type: "token_transfer"},
			},
		}
	})

	Describe("GetTransactionByID", func() {
		When("the transaction is cached", func() {
			BeforeEach(func() {
				payload, err := json.Marshal(stored)
				Expect(err).NotTo(HaveOccurred())
				fakeCache.GetReturns(payload, nil)
			})

			It("does not hit the store", func() {
				tx, err := cached.GetTransactionByID(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(tx).To(Equal(stored))
				Expect(fakeStore.GetTransactionByIDCallCount()).To(Equal(0))

				_, key := fakeCache.GetArgsForCall(0)
				Expect(key).To(Equal("txmerge:tx:0xabc"))
			})
		})

		When("the cache misses", func() {
			BeforeEach(func() {
				fakeCache.GetReturns(nil, db.ErrNotFound)
				fakeStore.GetTransactionByIDReturns(stored, nil)
			})

			It("reads the store and fills the cache", func() {
				tx, err := cached.GetTransactionByID(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(tx).To(Equal(stored))

				Expect(fakeCache.SetCallCount()).To(Equal(1))
				_, key, payload, ttl := fakeCache.SetArgsForCall(0)
				Expect(key).To(Equal("txmerge:tx:0xabc"))
				Expect(ttl).To(Equal(time.Minute))

				var decoded repository.Transaction
				Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
				Expect(decoded).To(Equal(stored))
			})
		})

		When("the cache is down", func() {
			BeforeEach(func() {
				fakeCache.GetReturns(nil, fakeErr)
				fakeCache.SetReturns(fakeErr)
				fakeStore.GetTransactionByIDReturns(stored, nil)
			})

			It("still serves from the store", func() {
				tx, err := cached.GetTransactionByID(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.ID).To(Equal("0xabc"))
			})
		})

		When("the store does not know the transaction", func() {
			BeforeEach(func() {
				fakeCache.GetReturns(nil, db.ErrNotFound)
				fakeStore.GetTransactionByIDReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns the store error and caches nothing", func() {
				_, err := cached.GetTransactionByID(ctx, "0xabc")
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
				Expect(fakeCache.SetCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SaveTransaction", func() {
		It("writes the saved record to the cache", func() {
			Expect(cached.SaveTransaction(ctx, stored)).To(Succeed())
			Expect(fakeStore.SaveTransactionCallCount()).To(Equal(1))
			Expect(fakeCache.DeleteCallCount()).To(Equal(0))

			Expect(fakeCache.SetCallCount()).To(Equal(1))
			_, key, payload, ttl := fakeCache.SetArgsForCall(0)
			Expect(key).To(Equal("txmerge:tx:0xabc"))
			Expect(ttl).To(Equal(time.Minute))

			var decoded repository.Transaction
			Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
			Expect(decoded).To(Equal(stored))
		})

		It("replaces a stale entry so later reads see the new record", func() {
			entries := map[string][]byte{}
			fakeCache.SetStub = func(_ context.Context, key string, value []byte, _ time.Duration) error {
				entries[key] = value
				return nil
			}
			fakeCache.GetStub = func(_ context.Context, key string) ([]byte, error) {
				if v, ok := entries[key]; ok {
					return v, nil
				}
				return nil, db.ErrNotFound
			}

			old := stored
			old.State = "pending"
			fakeStore.GetTransactionByIDReturns(old, nil)
			_, err := cached.GetTransactionByID(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			updated := stored
			updated.State = "completed"
			Expect(cached.SaveTransaction(ctx, updated)).To(Succeed())

			tx, err := cached.GetTransactionByID(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.State).To(Equal("completed"))
			Expect(fakeStore.GetTransactionByIDCallCount()).To(Equal(1))
		})

		It("numbers cached operations the way the store does", func() {
			withOps := stored
			withOps.Operations = []repository.Operation{{Type: "a"}, {Type: "b"}}

			Expect(cached.SaveTransaction(ctx, withOps)).To(Succeed())
			_, _, payload, _ := fakeCache.SetArgsForCall(0)

			var decoded repository.Transaction
			Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
			Expect(decoded.Operations).To(HaveLen(2))
			Expect(decoded.Operations[1].Position).To(Equal(1))
			Expect(decoded.Operations[1].TransactionID).To(Equal("0xabc"))
			Expect(withOps.Operations[1].Position).To(Equal(0))
		})

		It("invalidates the entry when the cache write fails", func() {
			fakeCache.SetReturns(fakeErr)

			Expect(cached.SaveTransaction(ctx, stored)).To(Succeed())
			Expect(fakeCache.DeleteCallCount()).To(Equal(1))
			_, key := fakeCache.DeleteArgsForCall(0)
			Expect(key).To(Equal("txmerge:tx:0xabc"))
		})

		It("keeps the cache when the save fails", func() {
			fakeStore.SaveTransactionReturns(fakeErr)

			Expect(cached.SaveTransaction(ctx, stored)).To(MatchError(fakeErr))
			Expect(fakeCache.SetCallCount()).To(Equal(0))
			Expect(fakeCache.DeleteCallCount()).To(Equal(0))
		})

		It("ignores invalidation failures", func() {
			fakeCache.SetReturns(fakeErr)
			fakeCache.DeleteReturns(fakeErr)

			Expect(cached.SaveTransaction(ctx, stored)).To(Succeed())
		})
	})
})
