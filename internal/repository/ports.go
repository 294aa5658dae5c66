package repository

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Upsert(ctx context.Context, record any) error
	DeleteBy(ctx context.Context, column string, value any, model any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
}

//counterfeiter:generate -o fake -fake-name TransactionStore . TransactionStore
type TransactionStore interface {
	GetTransactionByID(ctx context.Context, id string) (Transaction, error)
	SaveTransaction(ctx context.Context, transaction Transaction) error
}

//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
