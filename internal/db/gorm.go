package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type txKey struct{}

type GormDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

// conn returns the transaction bound to ctx by WithTransaction, if any.
func (f *GormDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return f.DB.WithContext(ctx)
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// WithTransaction runs fn in a database transaction. Calls made with the ctx
// passed to fn join that transaction.
func (f *GormDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Upsert inserts record or overwrites every column of the existing row with
// the same primary key. Associations are not touched.
func (f *GormDB) Upsert(ctx context.Context, record any) error {
	err := f.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (f *GormDB) DeleteBy(ctx context.Context, column string, value any, model any) error {
	err := f.conn(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model).Error
	if err != nil {
		return fmt.Errorf("deleting records by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) SaveToTable(ctx context.Context, records any) error {
	if err := f.conn(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.conn(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.conn(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}
