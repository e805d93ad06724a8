package testutil

import (
	"context"
	"time"

	"github.com/fatih/structs"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/repository"
)

var (
	// Items
	ItemBalanceBox = entity.Item{
		Base:   entity.Base{ID: "balance_box"},
		Name:   "Coin box",
		Emoji:  "📦",
		Type:   entity.ItemBalanceBox,
		Effect: entity.Map{"min": 10, "max": 10},
	}

	ItemGemBox = entity.Item{
		Base:   entity.Base{ID: "gem_box"},
		Name:   "Gem box",
		Emoji:  "💎",
		Type:   entity.ItemGemBox,
		Effect: entity.Map{"min": 5, "max": 5},
	}

	ItemRerollTicket = entity.Item{
		Base:  entity.Base{ID: "reroll_ticket"},
		Name:  "Reroll ticket",
		Emoji: "🎫",
		Type:  entity.ItemRerollTicket,
	}

	ItemRose = entity.Item{
		Base:      entity.Base{ID: "rose"},
		Name:      "Rose",
		Emoji:     "🌹",
		Type:      entity.ItemGift,
		GiftPoint: 10,
	}

	ItemRing = entity.Item{
		Base:        entity.Base{ID: "silver_ring"},
		Name:        "Silver ring",
		Emoji:       "💍",
		Description: "A simple silver ring",
		Type:        entity.ItemRing,
	}

	ItemAppellation = entity.Item{
		Base:   entity.Base{ID: "title_rich"},
		Name:   "The rich",
		Type:   entity.ItemAppellation,
		Effect: entity.Map{"title": "The rich"},
	}

	Items = []entity.Item{
		ItemBalanceBox, ItemGemBox, ItemRerollTicket, ItemRose, ItemRing, ItemAppellation,
	}

	// Quests
	QuestDailyMessage = entity.Quest{
		Base:      entity.Base{ID: "daily_message"},
		Category:  entity.QuestDaily,
		Type:      entity.QuestMessage,
		Label:     "Send %d messages",
		MinTarget: 10,
		MaxTarget: 20,
		Reward:    structs.Map(entity.QuestReward{Balance: 50}),
		Weight:    1,
	}

	QuestDailyVoice = entity.Quest{
		Base:      entity.Base{ID: "daily_voice"},
		Category:  entity.QuestDaily,
		Type:      entity.QuestVoice,
		Label:     "Stay %d minutes in voice",
		MinTarget: 30,
		MaxTarget: 30,
		Reward:    structs.Map(entity.QuestReward{Balance: 80}),
		Weight:    1,
	}

	QuestDailyGift = entity.Quest{
		Base:      entity.Base{ID: "daily_gift"},
		Category:  entity.QuestDaily,
		Type:      entity.QuestGift,
		Label:     "Offer %d gifts",
		MinTarget: 1,
		MaxTarget: 3,
		Reward:    structs.Map(entity.QuestReward{Gems: 5}),
		Weight:    1,
	}

	QuestWeeklyBuy = entity.Quest{
		Base:      entity.Base{ID: "weekly_buy"},
		Category:  entity.QuestWeekly,
		Type:      entity.QuestBuy,
		Label:     "Buy %d items",
		MinTarget: 5,
		MaxTarget: 5,
		Reward:    structs.Map(entity.QuestReward{Gems: 20}),
		Weight:    1,
	}

	QuestWeeklyMessage = entity.Quest{
		Base:      entity.Base{ID: "weekly_message"},
		Category:  entity.QuestWeekly,
		Type:      entity.QuestMessage,
		Label:     "Send %d messages",
		MinTarget: 100,
		MaxTarget: 100,
		Reward:    structs.Map(entity.QuestReward{Balance: 300}),
		Weight:    1,
	}

	QuestClubMessage = entity.Quest{
		Base:      entity.Base{ID: "club_message"},
		Category:  entity.QuestClub,
		Type:      entity.QuestMessage,
		Label:     "Members send %d messages",
		MinTarget: 100,
		MaxTarget: 100,
		Reward:    structs.Map(entity.QuestReward{Point: 40, Fund: 100}),
		Weight:    1,
	}

	QuestClubDonate = entity.Quest{
		Base:      entity.Base{ID: "club_donate"},
		Category:  entity.QuestClub,
		Type:      entity.QuestDonate,
		Label:     "Donate %d coins",
		MinTarget: 500,
		MaxTarget: 500,
		Reward:    structs.Map(entity.QuestReward{Point: 60}),
		Weight:    1,
	}

	QuestClubVoice = entity.Quest{
		Base:      entity.Base{ID: "club_voice"},
		Category:  entity.QuestClub,
		Type:      entity.QuestVoice,
		Label:     "Members stay %d minutes in voice",
		MinTarget: 200,
		MaxTarget: 200,
		Reward:    structs.Map(entity.QuestReward{Point: 50}),
		Weight:    1,
	}

	Quests = []entity.Quest{
		QuestDailyMessage, QuestDailyVoice, QuestDailyGift,
		QuestWeeklyBuy, QuestWeeklyMessage,
		QuestClubMessage, QuestClubDonate, QuestClubVoice,
	}

	// Shops
	ShopMain = entity.Shop{
		Base:        entity.Base{ID: "main"},
		Name:        "Main shop",
		Description: "Everything you need",
		Pages: entity.Array[entity.ShopPage]{
			{
				Title: "Boxes",
				Entries: []entity.ShopEntry{
					{ItemID: ItemBalanceBox.ID, Currency: entity.CurrencyGem, Price: 5},
					{ItemID: ItemGemBox.ID, Currency: entity.CurrencyBalance, Price: 100},
					{ItemID: ItemRerollTicket.ID, Currency: entity.CurrencyGem, Price: 15},
				},
			},
			{
				Title: "Love",
				Entries: []entity.ShopEntry{
					{ItemID: ItemRose.ID, Currency: entity.CurrencyBalance, Price: 20},
					{ItemID: ItemRing.ID, Currency: entity.CurrencyBalance, Price: 500},
					{ItemID: ItemAppellation.ID, Currency: entity.CurrencyGem, Price: 100},
				},
			},
		},
	}

	Shops = []entity.Shop{ShopMain}
)

// CreateFixtureDb inserts the item, quest and shop catalogs.
func CreateFixtureDb(ctx context.Context) {
	InsertItems(ctx)
	InsertQuests(ctx)
	InsertShops(ctx)
}

func InsertItems(ctx context.Context) {
	itemRepo := repository.NewItemRepository()
	for _, item := range Items {
		item := item
		if err := itemRepo.Create(ctx, &item); err != nil {
			panic(err)
		}
	}
}

func InsertQuests(ctx context.Context) {
	questRepo := repository.NewQuestRepository()
	for _, quest := range Quests {
		quest := quest
		if err := questRepo.Create(ctx, &quest); err != nil {
			panic(err)
		}
	}
}

func InsertShops(ctx context.Context) {
	shopRepo := repository.NewShopRepository()
	for _, shop := range Shops {
		shop := shop
		if err := shopRepo.Create(ctx, &shop); err != nil {
			panic(err)
		}
	}
}

// InsertUser stores a user with the given balance and gems.
func InsertUser(ctx context.Context, id string, balance, gems int64) entity.User {
	user := entity.User{
		Base:    entity.Base{ID: id},
		Balance: balance,
		Gems:    gems,
	}

	if err := repository.NewUserRepository().Save(ctx, &user); err != nil {
		panic(err)
	}

	return user
}

// InsertClub stores a club owned by its first member, created at createdAt so
// that tests control the insertion order.
func InsertClub(
	ctx context.Context, id, name string, point int64, createdAt time.Time, members ...string,
) entity.Club {
	club := entity.Club{
		Base:  entity.Base{ID: id, CreatedAt: createdAt},
		Name:  name,
		Level: 1,
		Point: point,
	}

	for i, m := range members {
		role := entity.ClubMember
		if i == 0 {
			role = entity.ClubOwner
			club.OwnerID = m
		}

		club.Members = append(club.Members, entity.ClubMemberData{UserID: m, Role: role, JoinedAt: createdAt})
	}

	if err := repository.NewClubRepository().Save(ctx, &club); err != nil {
		panic(err)
	}

	return club
}
