package main

import (
	"fmt"

	"github.com/questx-lab/clubbot/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	version := cctx.String("version")
	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	if err := migrator(s.ctx); err != nil {
		return err
	}

	if path := cctx.String("catalog"); path != "" {
		catalog, err := migration.LoadCatalog(path)
		if err != nil {
			return err
		}

		if err := migration.SeedCatalog(s.ctx, catalog); err != nil {
			return err
		}
	}

	return nil
}
