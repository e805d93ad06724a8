package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
[[items]]
id = "rose"
name = "Rose"
emoji = "🌹"
type = "gift"
gift_point = 10

[[items]]
id = "coin_box"
name = "Coin box"
type = "balance_box"
[items.effect]
min = 10
max = 30

[[quests]]
id = "daily_message"
category = "daily"
type = "message"
label = "Send %d messages"
min_target = 10
max_target = 20
[quests.reward]
balance = 50

[[shops]]
id = "main"
name = "Main shop"

[[shops.pages]]
title = "Gifts"

[[shops.pages.entries]]
item_id = "rose"
currency = "balance"
price = 20
`

func writeCatalog(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedCatalog(t *testing.T) {
	ctx := testutil.MockContext()

	catalog, err := LoadCatalog(writeCatalog(t, testCatalog))
	require.NoError(t, err)
	require.NoError(t, SeedCatalog(ctx, catalog))

	item, err := repository.NewItemRepository().GetByID(ctx, "coin_box")
	require.NoError(t, err)
	require.Equal(t, entity.ItemBalanceBox, item.Type)
	require.EqualValues(t, 30, item.Effect["max"])

	quest, err := repository.NewQuestRepository().GetByID(ctx, "daily_message")
	require.NoError(t, err)
	require.Equal(t, entity.QuestDaily, quest.Category)
	require.EqualValues(t, 50, quest.Reward["balance"])
	require.Equal(t, 1, quest.Weight)

	shop, err := repository.NewShopRepository().GetByID(ctx, "main")
	require.NoError(t, err)
	require.Len(t, shop.Pages, 1)
	require.Equal(t, int64(20), shop.Pages[0].Entries[0].Price)

	// Applying an edited catalog again overwrites the rows.
	catalog.Items[0].GiftPoint = 15
	require.NoError(t, SeedCatalog(ctx, catalog))

	item, err = repository.NewItemRepository().GetByID(ctx, "rose")
	require.NoError(t, err)
	require.Equal(t, int64(15), item.GiftPoint)
}

func TestSeedCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown item type",
			content: "[[items]]\nid = \"x\"\ntype = \"sword\"\n",
		},
		{
			name:    "item without id",
			content: "[[items]]\nname = \"x\"\ntype = \"gift\"\n",
		},
		{
			name:    "invalid target range",
			content: "[[quests]]\nid = \"q\"\ncategory = \"daily\"\ntype = \"message\"\nmin_target = 5\nmax_target = 1\n",
		},
		{
			name: "unknown shop item",
			content: "[[shops]]\nid = \"s\"\n[[shops.pages]]\ntitle = \"p\"\n" +
				"[[shops.pages.entries]]\nitem_id = \"ghost\"\ncurrency = \"balance\"\nprice = 1\n",
		},
		{
			name: "unknown currency",
			content: "[[items]]\nid = \"x\"\ntype = \"gift\"\n[[shops]]\nid = \"s\"\n[[shops.pages]]\n" +
				"title = \"p\"\n[[shops.pages.entries]]\nitem_id = \"x\"\ncurrency = \"gold\"\nprice = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			catalog, err := LoadCatalog(writeCatalog(t, tt.content))
			require.NoError(t, err)
			require.Error(t, SeedCatalog(ctx, catalog))

			_, err = repository.NewItemRepository().GetByID(ctx, "x")
			require.Error(t, err)
		})
	}
}

func TestMigrators(t *testing.T) {
	ctx := testutil.MockContext()
	migrator, ok := Migrators["auto"]
	require.True(t, ok)
	require.NoError(t, migrator(ctx))
}
