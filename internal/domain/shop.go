package domain

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/errorx"
)

const MainShopID = "main"

// Shop is a shop as seen by a user, one embed per shop page.
type Shop struct {
	f    *Factory
	user *UserData
	data entity.Shop
}

func (f *Factory) NewShop(ctx context.Context, shopID string, user *UserData) (*Shop, error) {
	data, err := f.repos.Shop.GetByID(ctx, shopID)
	if err != nil {
		return nil, storeError(ctx, err, "Not found shop %s", shopID)
	}

	return &Shop{f: f, user: user, data: *data}, nil
}

func (f *Factory) GetMainShop(ctx context.Context, user *UserData) (*Shop, error) {
	return f.NewShop(ctx, MainShopID, user)
}

func (s *Shop) ID() string {
	return s.data.ID
}

func (s *Shop) ToEmbed(ctx context.Context, page int) (*discordgo.MessageSend, error) {
	p := common.Paginate(s.data.Pages, page, 1)
	view := model.Shop{
		ShopID:      s.data.ID,
		Name:        s.data.Name,
		Description: s.data.Description,
		Balance:     s.user.BalanceString(),
		Gems:        s.user.GemString(),
		Pager:       model.Pager{Scope: "shop", Args: []string{s.data.ID}, Index: p.Index, Total: p.Total},
	}

	if len(p.Items) == 0 {
		return s.f.renderer.Shop(view), nil
	}

	shopPage := p.Items[0]
	view.PageTitle = shopPage.Title

	ids := make([]string, 0, len(shopPage.Entries))
	for _, e := range shopPage.Entries {
		ids = append(ids, e.ItemID)
	}

	items, err := s.f.catalog(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, e := range shopPage.Entries {
		view.Entries = append(view.Entries, model.ShopEntry{
			ItemID: e.ItemID,
			Name:   items[e.ItemID].Name,
			Emoji:  items[e.ItemID].Emoji,
			Price:  priceString(e),
		})
	}

	return s.f.renderer.Shop(view), nil
}

func (s *Shop) entry(itemID string) (entity.ShopEntry, bool) {
	for _, page := range s.data.Pages {
		for _, e := range page.Entries {
			if e.ItemID == itemID {
				return e, true
			}
		}
	}

	return entity.ShopEntry{}, false
}

// Buy pays amount times the price of the item and puts the items into the
// inventory of the user. The user is only changed in memory.
func (s *Shop) Buy(ctx context.Context, itemID string, amount int64) (entity.ShopEntry, error) {
	if err := s.user.mutable(repository.UserInventory, repository.UserBalance, repository.UserGems); err != nil {
		return entity.ShopEntry{}, err
	}

	if amount <= 0 {
		return entity.ShopEntry{}, errorx.New(errorx.Validation, "Amount must be positive")
	}

	e, ok := s.entry(itemID)
	if !ok {
		return entity.ShopEntry{}, errorx.New(errorx.NotFound, "The item is not sold here")
	}

	item, err := s.f.repos.Item.GetByID(ctx, itemID)
	if err != nil {
		return entity.ShopEntry{}, storeError(ctx, err, "Not found item %s", itemID)
	}

	cost, ok := common.MulInt64(e.Price, amount)
	if !ok {
		return entity.ShopEntry{}, errorx.New(errorx.Validation, "Cannot buy that many items at once")
	}

	// Nothing is paid for items the inventory could not hold.
	if _, ok := common.AddInt64(s.user.ItemAmount(itemID), amount); !ok {
		return entity.ShopEntry{}, errorx.New(errorx.Validation, "The inventory cannot hold that many items")
	}

	switch e.Currency {
	case entity.CurrencyGem:
		err = s.user.TakeGem(cost)
	default:
		err = s.user.TakeBal(cost)
	}
	if err != nil {
		return entity.ShopEntry{}, err
	}

	if err := s.user.AddItem(item, amount); err != nil {
		return entity.ShopEntry{}, err
	}

	return e, nil
}
