package domain

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

// ItemEffect is the decoded Effect of a catalog item. Boxes give a random
// amount in [Min, Max], appellations carry a Title.
type ItemEffect struct {
	Min   int64  `mapstructure:"min"`
	Max   int64  `mapstructure:"max"`
	Title string `mapstructure:"title"`
}

// UseResult tells whether an item was consumed. A rejection is an expected
// outcome, not an error.
type UseResult struct {
	Consumed bool

	// Detail describes what the user got when consumed, or why the item was
	// rejected.
	Detail string
}

func consumed(format string, a ...any) UseResult {
	return UseResult{Consumed: true, Detail: fmt.Sprintf(format, a...)}
}

func rejected(reason string) UseResult {
	return UseResult{Detail: reason}
}

// Reason is the rejection reason, empty if the item was consumed.
func (r UseResult) Reason() string {
	if r.Consumed {
		return ""
	}

	return r.Detail
}

// Item is a catalog item seen from the inventory of a user.
type Item struct {
	f       *Factory
	ownerID string
	data    entity.Item
}

func (f *Factory) NewItem(ctx context.Context, userID, itemID string) (*Item, error) {
	data, err := f.repos.Item.GetByID(ctx, itemID)
	if err != nil {
		return nil, storeError(ctx, err, "Not found item %s", itemID)
	}

	return &Item{f: f, ownerID: userID, data: *data}, nil
}

func (i *Item) ID() string {
	return i.data.ID
}

func (i *Item) Name() string {
	return i.data.Name
}

func (i *Item) Type() entity.ItemType {
	return i.data.Type
}

func (i *Item) Data() entity.Item {
	return i.data
}

func (i *Item) Usable() bool {
	switch i.data.Type {
	case entity.ItemBalanceBox, entity.ItemGemBox, entity.ItemRerollTicket:
		return true
	}

	return false
}

func (i *Item) Effect() (ItemEffect, error) {
	var effect ItemEffect
	if err := mapstructure.Decode(i.data.Effect, &effect); err != nil {
		return ItemEffect{}, err
	}

	return effect, nil
}

// Use consumes one item from the inventory of user and applies its effect.
// It only changes the loaded user, the caller saves it, usually through
// MutateUser.
func (i *Item) Use(ctx context.Context, user *UserData) (UseResult, error) {
	if err := user.mutable(repository.UserInventory, repository.UserBalance, repository.UserGems); err != nil {
		return UseResult{}, err
	}

	if user.ItemAmount(i.data.ID) <= 0 {
		return rejected("You do not own this item"), nil
	}

	switch i.data.Type {
	case entity.ItemGift:
		return rejected("Gifts are offered to someone, they cannot be used"), nil
	case entity.ItemRing:
		return rejected("Rings are used to propose"), nil
	case entity.ItemAppellation:
		return rejected("Appellations are shown on the profile, they cannot be used"), nil
	}

	effect, err := i.Effect()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode effect of item %s: %v", i.data.ID, err)
		return UseResult{}, errorx.Unknown
	}

	var result UseResult
	switch i.data.Type {
	case entity.ItemBalanceBox:
		amount := i.f.randRange(effect.Min, effect.Max)
		if err := user.AddBal(amount); err != nil {
			return UseResult{}, err
		}
		result = consumed("You got %s coins", common.FormatNumber(amount))

	case entity.ItemGemBox:
		amount := i.f.randRange(effect.Min, effect.Max)
		if err := user.AddGem(amount); err != nil {
			return UseResult{}, err
		}
		result = consumed("You got %s gems", common.FormatNumber(amount))

	case entity.ItemRerollTicket:
		if err := user.RerollQuests(ctx, 0); err != nil {
			return UseResult{}, err
		}
		result = consumed("Your daily quests have been rerolled")

	default:
		return rejected("This item cannot be used"), nil
	}

	if err := user.TakeItem(i.data.ID, 1); err != nil {
		return UseResult{}, err
	}

	return result, nil
}

// GetCost returns the price of the item on the given page of a shop.
func (i *Item) GetCost(ctx context.Context, shopID string, page int) (entity.ShopEntry, error) {
	shop, err := i.f.repos.Shop.GetByID(ctx, shopID)
	if err != nil {
		return entity.ShopEntry{}, storeError(ctx, err, "Not found shop %s", shopID)
	}

	if page < 0 || page >= len(shop.Pages) {
		return entity.ShopEntry{}, errorx.New(errorx.NotFound, "Not found page %d of shop %s", page, shopID)
	}

	for _, e := range shop.Pages[page].Entries {
		if e.ItemID == i.data.ID {
			return e, nil
		}
	}

	return entity.ShopEntry{}, errorx.New(errorx.NotFound, "The item is not sold here")
}

func (i *Item) GetCostString(ctx context.Context, shopID string, page int) (string, error) {
	entry, err := i.GetCost(ctx, shopID, page)
	if err != nil {
		return "", err
	}

	return priceString(entry), nil
}

func (i *Item) view() model.Item {
	return model.Item{
		ID:          i.data.ID,
		Name:        i.data.Name,
		Emoji:       i.data.Emoji,
		Description: i.data.Description,
		Type:        string(i.data.Type),
		Usable:      i.Usable(),
	}
}

func (i *Item) GetShopEmbed(ctx context.Context, shopID string, page int) (*discordgo.MessageSend, error) {
	cost, err := i.GetCostString(ctx, shopID, page)
	if err != nil {
		return nil, err
	}

	view := i.view()
	view.Cost = cost
	view.ShopID = shopID
	view.Usable = false
	return i.f.renderer.Item(view), nil
}

func (i *Item) GetInventoryEmbed(ctx context.Context) (*discordgo.MessageSend, error) {
	owner, err := i.f.CreateUser(ctx, i.ownerID, repository.UserInventory)
	if err != nil {
		return nil, err
	}

	amount := owner.ItemAmount(i.data.ID)
	view := i.view()
	view.Amount = common.FormatNumber(amount)
	view.Usable = view.Usable && amount > 0
	return i.f.renderer.Item(view), nil
}

func priceString(e entity.ShopEntry) string {
	switch e.Currency {
	case entity.CurrencyGem:
		return common.FormatNumber(e.Price) + " gems"
	default:
		return common.FormatNumber(e.Price) + " coins"
	}
}

// catalog returns the items of the given ids, keyed by id.
func (f *Factory) catalog(ctx context.Context, ids []string) (map[string]entity.Item, error) {
	items, err := f.repos.Item.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get items")
	}

	result := make(map[string]entity.Item, len(items))
	for _, item := range items {
		result[item.ID] = item
	}

	return result, nil
}
