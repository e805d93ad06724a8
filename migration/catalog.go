package migration

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/structs"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/enum"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"gorm.io/gorm/clause"
)

// Catalog is the content of a catalog file: the items, the quest pool and the
// shops the economy sells from.
type Catalog struct {
	Items  []CatalogItem  `toml:"items"`
	Quests []CatalogQuest `toml:"quests"`
	Shops  []CatalogShop  `toml:"shops"`
}

type CatalogItem struct {
	ID          string         `toml:"id"`
	Name        string         `toml:"name"`
	Emoji       string         `toml:"emoji"`
	Description string         `toml:"description"`
	Type        string         `toml:"type"`
	Effect      map[string]any `toml:"effect"`
	GiftPoint   int64          `toml:"gift_point"`
}

type CatalogQuest struct {
	ID        string             `toml:"id"`
	Category  string             `toml:"category"`
	Type      string             `toml:"type"`
	Label     string             `toml:"label"`
	MinTarget int64              `toml:"min_target"`
	MaxTarget int64              `toml:"max_target"`
	Reward    entity.QuestReward `toml:"reward"`
	Weight    int                `toml:"weight"`
}

type CatalogShop struct {
	ID          string            `toml:"id"`
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Pages       []CatalogShopPage `toml:"pages"`
}

type CatalogShopPage struct {
	Title   string             `toml:"title"`
	Entries []CatalogShopEntry `toml:"entries"`
}

type CatalogShopEntry struct {
	ItemID   string `toml:"item_id"`
	Currency string `toml:"currency"`
	Price    int64  `toml:"price"`
}

func LoadCatalog(path string) (*Catalog, error) {
	var catalog Catalog
	if _, err := toml.DecodeFile(path, &catalog); err != nil {
		return nil, fmt.Errorf("cannot decode catalog file %s: %w", path, err)
	}

	return &catalog, nil
}

// SeedCatalog writes the whole catalog in one transaction. Rows with an
// existing id are overwritten, so the same file can be applied again after
// editing it.
func SeedCatalog(ctx context.Context, catalog *Catalog) error {
	items, err := catalog.items()
	if err != nil {
		return err
	}

	quests, err := catalog.quests()
	if err != nil {
		return err
	}

	shops, err := catalog.shops()
	if err != nil {
		return err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	upsert := xcontext.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true})
	for i := range items {
		if err := upsert.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("cannot save item %s: %w", items[i].ID, err)
		}
	}

	for i := range quests {
		if err := upsert.Create(&quests[i]).Error; err != nil {
			return fmt.Errorf("cannot save quest %s: %w", quests[i].ID, err)
		}
	}

	for i := range shops {
		if err := upsert.Create(&shops[i]).Error; err != nil {
			return fmt.Errorf("cannot save shop %s: %w", shops[i].ID, err)
		}
	}

	if err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Seeded %d items, %d quests and %d shops", len(items), len(quests), len(shops))
	return nil
}

func (c *Catalog) items() ([]entity.Item, error) {
	result := make([]entity.Item, 0, len(c.Items))
	known := map[string]bool{}
	for _, item := range c.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %q has no id", item.Name)
		}

		itemType, err := enum.ToEnum[entity.ItemType](item.Type)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ID, err)
		}

		known[item.ID] = true
		result = append(result, entity.Item{
			Base:        entity.Base{ID: item.ID},
			Name:        item.Name,
			Emoji:       item.Emoji,
			Description: item.Description,
			Type:        itemType,
			Effect:      item.Effect,
			GiftPoint:   item.GiftPoint,
		})
	}

	for _, shop := range c.Shops {
		for _, page := range shop.Pages {
			for _, entry := range page.Entries {
				if !known[entry.ItemID] {
					return nil, fmt.Errorf("shop %s sells unknown item %s", shop.ID, entry.ItemID)
				}
			}
		}
	}

	return result, nil
}

func (c *Catalog) quests() ([]entity.Quest, error) {
	result := make([]entity.Quest, 0, len(c.Quests))
	for _, quest := range c.Quests {
		if quest.ID == "" {
			return nil, fmt.Errorf("quest %q has no id", quest.Label)
		}

		category, err := enum.ToEnum[entity.QuestCategory](quest.Category)
		if err != nil {
			return nil, fmt.Errorf("quest %s: %w", quest.ID, err)
		}

		questType, err := enum.ToEnum[entity.QuestType](quest.Type)
		if err != nil {
			return nil, fmt.Errorf("quest %s: %w", quest.ID, err)
		}

		if quest.MinTarget <= 0 || quest.MaxTarget < quest.MinTarget {
			return nil, fmt.Errorf("quest %s: invalid target range [%d, %d]",
				quest.ID, quest.MinTarget, quest.MaxTarget)
		}

		weight := quest.Weight
		if weight <= 0 {
			weight = 1
		}

		result = append(result, entity.Quest{
			Base:      entity.Base{ID: quest.ID},
			Category:  category,
			Type:      questType,
			Label:     quest.Label,
			MinTarget: quest.MinTarget,
			MaxTarget: quest.MaxTarget,
			Reward:    structs.Map(quest.Reward),
			Weight:    weight,
		})
	}

	return result, nil
}

func (c *Catalog) shops() ([]entity.Shop, error) {
	result := make([]entity.Shop, 0, len(c.Shops))
	for _, shop := range c.Shops {
		if shop.ID == "" {
			return nil, fmt.Errorf("shop %q has no id", shop.Name)
		}

		pages := make(entity.Array[entity.ShopPage], 0, len(shop.Pages))
		for _, page := range shop.Pages {
			entries := make([]entity.ShopEntry, 0, len(page.Entries))
			for _, entry := range page.Entries {
				currency, err := enum.ToEnum[entity.Currency](entry.Currency)
				if err != nil {
					return nil, fmt.Errorf("shop %s: %w", shop.ID, err)
				}

				if entry.Price < 0 {
					return nil, fmt.Errorf("shop %s: negative price of %s", shop.ID, entry.ItemID)
				}

				entries = append(entries, entity.ShopEntry{
					ItemID:   entry.ItemID,
					Currency: currency,
					Price:    entry.Price,
				})
			}

			pages = append(pages, entity.ShopPage{Title: page.Title, Entries: entries})
		}

		result = append(result, entity.Shop{
			Base:        entity.Base{ID: shop.ID},
			Name:        shop.Name,
			Description: shop.Description,
			Pages:       pages,
		})
	}

	return result, nil
}
