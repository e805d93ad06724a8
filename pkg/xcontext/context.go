package xcontext

import (
	"context"

	"github.com/questx-lab/clubbot/config"
	"github.com/questx-lab/clubbot/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey struct{}
	loggerKey  struct{}
	dbKey      struct{}
	txKey      struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg := ctx.Value(configsKey{})
	if cfg == nil {
		return config.Default()
	}

	return cfg.(config.Configs)
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l := ctx.Value(loggerKey{})
	if l == nil {
		return logger.NewLogger(logger.SILENCE)
	}

	return l.(logger.Logger)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if there is one, otherwise the database
// installed by WithDB.
func DB(ctx context.Context) *gorm.DB {
	if tx := ctx.Value(txKey{}); tx != nil {
		return tx.(*gorm.DB).WithContext(ctx)
	}

	db := ctx.Value(dbKey{})
	if db == nil {
		return nil
	}

	return db.(*gorm.DB).WithContext(ctx)
}

// WithDBTransaction begins a transaction and returns a context whose DB
// method returns it. The caller must end the transaction with
// WithCommitDBTransaction or WithRollbackDBTransaction. It is common to defer
// the rollback right after beginning, a rollback after commit is a no-op.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, DB(ctx).Begin())
}

func WithCommitDBTransaction(ctx context.Context) error {
	tx := ctx.Value(txKey{})
	if tx == nil {
		return nil
	}

	return tx.(*gorm.DB).Commit().Error
}

func WithRollbackDBTransaction(ctx context.Context) {
	tx := ctx.Value(txKey{})
	if tx == nil {
		return
	}

	tx.(*gorm.DB).Rollback()
}
