package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"txmerge/internal/db"

	"github.com/google/uuid"
)

var ErrTransactionNotFound error = errors.New("transaction not found")

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) MigrateTables() error {
	err := r.db.MigrateTable(&Transaction{}, &Operation{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SaveTransaction upserts the transaction row and replaces its operations.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, transaction Transaction) error {
	operations := make([]Operation, len(transaction.Operations))
	for i, op := range transaction.Operations {
		op.ID = uuid.NewString()
		op.TransactionID = transaction.ID
		op.Position = i
		operations[i] = op
	}
	transaction.Operations = nil

	err := r.db.WithTransaction(ctx, func(ctx context.Context) error {
		if err := r.db.Upsert(ctx, &transaction); err != nil {
			return fmt.Errorf("upsert transaction: %w", err)
		}

		if err := r.db.DeleteBy(ctx, "transaction_id", transaction.ID, &Operation{}); err != nil {
			return fmt.Errorf("delete operations: %w", err)
		}

		if len(operations) == 0 {
			return nil
		}

		if err := r.db.SaveToTable(ctx, &operations); err != nil {
			return fmt.Errorf("save operations: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save transaction %q: %w", transaction.ID, err)
	}

	return nil
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	var transaction Transaction

	err := r.db.GetOneBy(ctx, "id", id, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	var operations []Operation
	err = r.db.GetAllBy(ctx, "transaction_id", id, &operations)
	if err != nil {
		return Transaction{}, fmt.Errorf("get operations by transaction id: %w", err)
	}

	slices.SortFunc(operations, func(a, b Operation) int {
		return cmp.Compare(a.Position, b.Position)
	})
	transaction.Operations = operations

	return transaction, nil
}
