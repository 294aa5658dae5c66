package handler

import (
	"context"
	"net/http"

	"txmerge/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	UpdatePending(ctx context.Context, raw map[string]any, coin core.Coin) (core.Transaction, error)
	Refresh(ctx context.Context, hash string, coin core.Coin) (core.Transaction, error)
	RefreshAll(ctx context.Context, hashes []string, coin core.Coin) ([]core.Transaction, error)
	GetTransaction(ctx context.Context, id string) (core.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
