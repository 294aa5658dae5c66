package core

import (
	"context"

	"txmerge/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetTransactionByID(ctx context.Context, id string) (repository.Transaction, error)
	SaveTransaction(ctx context.Context, transaction repository.Transaction) error
}

//counterfeiter:generate -o fake -fake-name NodeService . NodeService
type NodeService interface {
	PendingTransaction(ctx context.Context, hash string) (map[string]any, error)
	PendingTransactions(ctx context.Context, hashes []string) ([]map[string]any, error)
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	PublishTransaction(ctx context.Context, tx Transaction) error
}
