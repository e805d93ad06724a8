package entity

import (
	"context"

	"github.com/questx-lab/clubbot/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Club{},
		&ClubMembership{},
		&ClubLog{},
		&Relation{},
		&Sticky{},
		&Quest{},
		&Item{},
		&Shop{},
	)
}
