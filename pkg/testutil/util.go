package testutil

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/questx-lab/clubbot/config"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/logger"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MockContext returns a context carrying default configs, a silent logger and
// an empty in-memory database with all tables migrated. Every call gets its
// own database.
func MockContext() context.Context {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}

	// sqlite does not handle concurrent writers well, and a single connection
	// also keeps the in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Default()
	cfg.Economy.PageSize = 3

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// MockContextWithFixtures is MockContext with the catalog fixtures inserted.
func MockContextWithFixtures() context.Context {
	ctx := MockContext()
	CreateFixtureDb(ctx)
	return ctx
}
