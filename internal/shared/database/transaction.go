package database

import (
	"context"
	"errors"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction bound to ctx.
// fn returning an error rolls back; nil commits.
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return teamRepo.Create(ctx, tx, team)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.FromContext(ctx).Debug("Transaction rolled back", "error", err)
	}
	return err
}

// InTransaction is WithTransaction for work that yields a value, such as the
// affected row count of a bulk update. The zero value is returned on rollback.
//
//	affected, err := InTransaction(ctx, db, func(tx *gorm.DB) (int64, error) {
//	    return memberRepo.BulkAddAge(ctx, tx, where, 1)
//	})
func InTransaction[T any](ctx context.Context, db *gorm.DB, fn func(*gorm.DB) (T, error)) (T, error) {
	var result T
	if fn == nil {
		return result, errors.New("database: transaction function is nil")
	}

	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		value, err := fn(tx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
