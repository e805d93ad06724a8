package migration

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
)

// Migrators are picked by version in the migrate command.
var Migrators = map[string]func(ctx context.Context) error{
	"auto": AutoMigrate,
}

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
