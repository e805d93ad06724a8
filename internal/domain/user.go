package domain

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/dateutil"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// UserData is the economy record of a chat user. A user who has never been
// saved gets a default record, it is stored by the first Update.
type UserData struct {
	f  *Factory
	id string

	// fields is the projection used by Initialize, empty means all fields.
	fields []string
	data   *entity.User
	isNew  bool
}

func (f *Factory) CreateUser(ctx context.Context, id string, fields ...string) (*UserData, error) {
	u := &UserData{f: f, id: id}
	if err := u.Initialize(ctx, fields...); err != nil {
		return nil, err
	}

	return u, nil
}

// Initialize reads the user from the store, overwriting any change which has
// not been saved.
func (u *UserData) Initialize(ctx context.Context, fields ...string) error {
	if u.id == "" {
		return errorx.New(errorx.Validation, "User id must not be empty")
	}

	data, err := u.f.repos.User.Get(ctx, u.id, fields...)
	if err != nil {
		err = storeError(ctx, err, "Not found user %s", u.id)
		if !errorx.Is(err, errorx.NotFound) {
			return err
		}

		data = &entity.User{
			Base:    entity.Base{ID: u.id},
			Balance: xcontext.Configs(ctx).Economy.StartingBalance,
		}
		u.isNew = true
	} else {
		u.isNew = false
	}

	u.data = data
	u.fields = fields
	return nil
}

// Update saves the loaded fields of the user.
func (u *UserData) Update(ctx context.Context) error {
	if u.data == nil {
		return notLoaded("user", u.id)
	}

	fields := u.fields
	if u.isNew {
		fields = nil
	}

	if err := u.f.repos.User.Save(ctx, u.data, fields...); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save user %s: %v", u.id, err)
		return fmt.Errorf("cannot save user %s: %w", u.id, err)
	}

	u.isNew = false
	return nil
}

func (u *UserData) ID() string {
	return u.id
}

func (u *UserData) Loaded() bool {
	return u.data != nil
}

// IsNew reports whether the user has not been stored yet.
func (u *UserData) IsNew() bool {
	return u.isNew
}

func (u *UserData) mustLoaded() *entity.User {
	if u.data == nil {
		panic(fmt.Sprintf("user %s is accessed before being loaded", u.id))
	}

	return u.data
}

// mutable checks that the user and the fields about to change are loaded.
func (u *UserData) mutable(fields ...string) error {
	if u.data == nil {
		return notLoaded("user", u.id)
	}

	if len(u.fields) == 0 || u.isNew {
		return nil
	}

	for _, f := range fields {
		if !slices.Contains(u.fields, f) {
			return errorx.New(errorx.InvalidState, "The field %s of user %s is not loaded", f, u.id)
		}
	}

	return nil
}

func (u *UserData) Balance() int64 {
	return u.mustLoaded().Balance
}

func (u *UserData) Gems() int64 {
	return u.mustLoaded().Gems
}

func (u *UserData) BalanceString() string {
	return common.FormatNumber(u.Balance())
}

func (u *UserData) GemString() string {
	return common.FormatNumber(u.Gems())
}

func (u *UserData) AddBal(amount int64) error {
	if err := u.mutable(repository.UserBalance); err != nil {
		return err
	}

	if amount < 0 {
		return errorx.New(errorx.Validation, "Amount must not be negative")
	}

	balance, ok := common.AddInt64(u.data.Balance, amount)
	if !ok {
		return errorx.New(errorx.Validation, "The balance cannot hold that many coins")
	}

	u.data.Balance = balance
	return nil
}

func (u *UserData) TakeBal(amount int64) error {
	if err := u.mutable(repository.UserBalance); err != nil {
		return err
	}

	if amount < 0 {
		return errorx.New(errorx.Validation, "Amount must not be negative")
	}

	if amount > u.data.Balance {
		return errorx.New(errorx.InsufficientFunds, "Not enough coins, you need %s but have %s",
			common.FormatNumber(amount), common.FormatNumber(u.data.Balance))
	}

	u.data.Balance -= amount
	return nil
}

func (u *UserData) AddGem(amount int64) error {
	if err := u.mutable(repository.UserGems); err != nil {
		return err
	}

	if amount < 0 {
		return errorx.New(errorx.Validation, "Amount must not be negative")
	}

	gems, ok := common.AddInt64(u.data.Gems, amount)
	if !ok {
		return errorx.New(errorx.Validation, "The balance cannot hold that many gems")
	}

	u.data.Gems = gems
	return nil
}

func (u *UserData) TakeGem(amount int64) error {
	if err := u.mutable(repository.UserGems); err != nil {
		return err
	}

	if amount < 0 {
		return errorx.New(errorx.Validation, "Amount must not be negative")
	}

	if amount > u.data.Gems {
		return errorx.New(errorx.InsufficientFunds, "Not enough gems, you need %s but have %s",
			common.FormatNumber(amount), common.FormatNumber(u.data.Gems))
	}

	u.data.Gems -= amount
	return nil
}

func (u *UserData) Inventory() []entity.InventoryItem {
	return slices.Clone(u.mustLoaded().Inventory)
}

func (u *UserData) ItemAmount(itemID string) int64 {
	for _, item := range u.mustLoaded().Inventory {
		if item.ItemID == itemID {
			return item.Amount
		}
	}

	return 0
}

func (u *UserData) AddItem(item *entity.Item, amount int64) error {
	if err := u.mutable(repository.UserInventory); err != nil {
		return err
	}

	if amount <= 0 {
		return errorx.New(errorx.Validation, "Amount must be positive")
	}

	i := slices.IndexFunc(u.data.Inventory, func(e entity.InventoryItem) bool { return e.ItemID == item.ID })
	if i >= 0 {
		total, ok := common.AddInt64(u.data.Inventory[i].Amount, amount)
		if !ok {
			return errorx.New(errorx.Validation, "The inventory cannot hold that many items")
		}

		u.data.Inventory[i].Amount = total
		return nil
	}

	u.data.Inventory = append(u.data.Inventory, entity.InventoryItem{
		ItemID: item.ID,
		Type:   item.Type,
		Amount: amount,
	})

	return nil
}

func (u *UserData) TakeItem(itemID string, amount int64) error {
	if err := u.mutable(repository.UserInventory); err != nil {
		return err
	}

	if amount <= 0 {
		return errorx.New(errorx.Validation, "Amount must be positive")
	}

	i := slices.IndexFunc(u.data.Inventory, func(e entity.InventoryItem) bool { return e.ItemID == itemID })
	if i < 0 || u.data.Inventory[i].Amount < amount {
		return errorx.New(errorx.InsufficientFunds, "Not enough items")
	}

	u.data.Inventory[i].Amount -= amount
	if u.data.Inventory[i].Amount == 0 {
		u.data.Inventory = slices.Delete(u.data.Inventory, i, i+1)
	}

	return nil
}

// OwnedAppellations returns the item ids of the appellations in the
// inventory.
func (u *UserData) OwnedAppellations() []string {
	var result []string
	for _, item := range u.mustLoaded().Inventory {
		if item.Type == entity.ItemAppellation {
			result = append(result, item.ItemID)
		}
	}

	return result
}

func (u *UserData) Quests(category entity.QuestCategory) []entity.UserQuest {
	var result []entity.UserQuest
	for _, q := range u.mustLoaded().Quests {
		if q.Category == category {
			result = append(result, q)
		}
	}

	return result
}

func (u *UserData) AddQuest(quest entity.UserQuest) error {
	if err := u.mutable(repository.UserQuests); err != nil {
		return err
	}

	if quest.ID == "" {
		return errorx.New(errorx.Validation, "Quest id must not be empty")
	}

	if u.questIndex(quest.ID) >= 0 {
		return errorx.New(errorx.AlreadyExists, "Quest %s already exists", quest.ID)
	}

	u.data.Quests = append(u.data.Quests, quest)
	return nil
}

func (u *UserData) questIndex(id string) int {
	return slices.IndexFunc(u.data.Quests, func(q entity.UserQuest) bool { return q.ID == id })
}

// Quest returns the active quest with the given id as a sub-entity.
func (u *UserData) Quest(id string) (*UserQuest, error) {
	data := u.mustLoaded()
	i := u.questIndex(id)
	if i < 0 {
		return nil, errorx.New(errorx.NotFound, "Not found quest %s", id)
	}

	return &UserQuest{f: u.f, userID: u.id, data: data.Quests[i]}, nil
}

func (u *UserData) RefreshDailyQuest(ctx context.Context) error {
	if err := u.mutable(repository.UserQuests, repository.UserDailyAt); err != nil {
		return err
	}

	quests, err := u.f.generateUserQuests(ctx, entity.QuestDaily, xcontext.Configs(ctx).Economy.DailyQuests)
	if err != nil {
		return err
	}

	u.replaceQuests(entity.QuestDaily, quests)
	u.data.DailyRefreshedAt = sql.NullTime{Time: u.f.now(), Valid: true}
	return nil
}

func (u *UserData) RefreshWeeklyQuest(ctx context.Context) error {
	if err := u.mutable(repository.UserQuests, repository.UserWeeklyAt); err != nil {
		return err
	}

	quests, err := u.f.generateUserQuests(ctx, entity.QuestWeekly, xcontext.Configs(ctx).Economy.WeeklyQuests)
	if err != nil {
		return err
	}

	u.replaceQuests(entity.QuestWeekly, quests)
	u.data.WeeklyRefreshedAt = sql.NullTime{Time: u.f.now(), Valid: true}
	return nil
}

// RefreshStaleQuests refreshes the daily quests once a day and the weekly
// quests once a week. It returns true if anything changed.
func (u *UserData) RefreshStaleQuests(ctx context.Context) (bool, error) {
	if err := u.mutable(repository.UserQuests, repository.UserDailyAt, repository.UserWeeklyAt); err != nil {
		return false, err
	}

	now := u.f.now()
	changed := false
	if !u.data.DailyRefreshedAt.Valid || !dateutil.SameDay(u.data.DailyRefreshedAt.Time, now) {
		if err := u.RefreshDailyQuest(ctx); err != nil {
			return false, err
		}
		changed = true
	}

	if !u.data.WeeklyRefreshedAt.Valid || !dateutil.SameWeek(u.data.WeeklyRefreshedAt.Time, now) {
		if err := u.RefreshWeeklyQuest(ctx); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}

// RerollQuests pays fee gems to replace the daily quests. Nothing changes if
// the user cannot pay.
func (u *UserData) RerollQuests(ctx context.Context, fee int64) error {
	if err := u.mutable(repository.UserGems, repository.UserQuests); err != nil {
		return err
	}

	if fee < 0 {
		return errorx.New(errorx.Validation, "Fee must not be negative")
	}

	if fee > u.data.Gems {
		return errorx.New(errorx.InsufficientFunds, "Not enough gems to reroll, you need %s but have %s",
			common.FormatNumber(fee), common.FormatNumber(u.data.Gems))
	}

	quests, err := u.f.generateUserQuests(ctx, entity.QuestDaily, xcontext.Configs(ctx).Economy.DailyQuests)
	if err != nil {
		return err
	}

	u.data.Gems -= fee
	u.replaceQuests(entity.QuestDaily, quests)
	return nil
}

func (u *UserData) replaceQuests(category entity.QuestCategory, quests []entity.UserQuest) {
	kept := u.data.Quests[:0:0]
	for _, q := range u.data.Quests {
		if q.Category != category {
			kept = append(kept, q)
		}
	}

	u.data.Quests = append(kept, quests...)
}

func (u *UserData) grant(reward entity.QuestReward) error {
	if err := u.AddBal(reward.Balance); err != nil {
		return err
	}

	return u.AddGem(reward.Gems)
}

func (u *UserData) Friends() []string {
	return slices.Clone(u.mustLoaded().Friends)
}

func (u *UserData) AddFriend(friendID string) error {
	if err := u.mutable(repository.UserFriends); err != nil {
		return err
	}

	if friendID == "" || friendID == u.id {
		return errorx.New(errorx.Validation, "Invalid friend")
	}

	if slices.Contains(u.data.Friends, friendID) {
		return errorx.New(errorx.AlreadyExists, "Already friend with %s", friendID)
	}

	u.data.Friends = append(u.data.Friends, friendID)
	return nil
}

func (u *UserData) RemoveFriend(friendID string) error {
	if err := u.mutable(repository.UserFriends); err != nil {
		return err
	}

	i := slices.Index(u.data.Friends, friendID)
	if i < 0 {
		return errorx.New(errorx.NotFound, "Not friend with %s", friendID)
	}

	u.data.Friends = slices.Delete(u.data.Friends, i, i+1)
	return nil
}

// GetClubID returns the club of the user, or an empty string.
func (u *UserData) GetClubID(ctx context.Context) (string, error) {
	clubID, err := u.f.repos.Club.GetClubIDByMember(ctx, u.id)
	if err != nil {
		return "", storeError(ctx, err, "Cannot get club of user %s", u.id)
	}

	return clubID, nil
}

func (u *UserData) GetInventoryEmbed(ctx context.Context, page int) (*discordgo.MessageSend, error) {
	inventory := u.Inventory()
	items, err := u.f.catalog(ctx, inventoryItemIDs(inventory))
	if err != nil {
		return nil, err
	}

	p := common.Paginate(inventory, page, xcontext.Configs(ctx).Economy.PageSize)
	entries := make([]model.InventoryEntry, 0, len(p.Items))
	for _, i := range p.Items {
		item := items[i.ItemID]
		entries = append(entries, model.InventoryEntry{
			ItemID: i.ItemID,
			Name:   item.Name,
			Emoji:  item.Emoji,
			Type:   string(i.Type),
			Amount: common.FormatNumber(i.Amount),
		})
	}

	return u.f.renderer.Inventory(model.Inventory{
		UserID:  u.id,
		Entries: entries,
		Pager:   model.Pager{Scope: "inventory", Index: p.Index, Total: p.Total},
	}), nil
}

func (u *UserData) GetProfileEmbed(ctx context.Context) (*discordgo.MessageSend, error) {
	data := u.mustLoaded()
	view := model.Profile{
		UserID:  u.id,
		Balance: u.BalanceString(),
		Gems:    u.GemString(),
		Friends: len(data.Friends),
	}

	clubID, err := u.GetClubID(ctx)
	if err != nil {
		return nil, err
	}

	if clubID != "" {
		club, err := u.f.repos.Club.Get(ctx, clubID, repository.ClubName)
		if err != nil {
			return nil, storeError(ctx, err, "Not found club %s", clubID)
		}

		view.ClubName = club.Name
	}

	appellations, err := u.f.catalog(ctx, u.OwnedAppellations())
	if err != nil {
		return nil, err
	}

	for _, id := range u.OwnedAppellations() {
		view.Appellations = append(view.Appellations, appellations[id].Name)
	}

	relations, err := u.f.repos.Relation.GetByMember(ctx, u.id)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get relations of user %s", u.id)
	}

	view.Relations = len(relations)
	return u.f.renderer.Profile(view), nil
}

func (u *UserData) GetRelationListEmbed(ctx context.Context) (*discordgo.MessageSend, error) {
	relations, err := u.f.repos.Relation.GetByMember(ctx, u.id)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get relations of user %s", u.id)
	}

	view := model.RelationList{UserID: u.id}
	for _, r := range relations {
		partner := r.M2
		if partner == u.id {
			partner = r.M1
		}

		points := r.M1Points + r.M2Points
		level, _ := relationLevel(points)
		view.Relations = append(view.Relations, model.RelationSummary{
			ID:      r.ID,
			Kind:    string(r.Kind),
			Partner: partner,
			Level:   level.Name,
			Points:  common.FormatNumber(points),
		})
	}

	return u.f.renderer.RelationList(view), nil
}

// GetGiftsEmbed shows the gifts the user received in all relations.
func (u *UserData) GetGiftsEmbed(ctx context.Context) (*discordgo.MessageSend, error) {
	relations, err := u.f.repos.Relation.GetByMember(ctx, u.id)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get relations of user %s", u.id)
	}

	var received []entity.GiftCount
	for _, r := range relations {
		gifts := r.M1Gifts
		if r.M1 == u.id {
			gifts = r.M2Gifts
		}

		received = mergeGifts(received, gifts)
	}

	views, err := u.f.giftViews(ctx, received)
	if err != nil {
		return nil, err
	}

	return u.f.renderer.GiftList(model.GiftList{UserID: u.id, Gifts: views}), nil
}

func (u *UserData) GetQuestEmbed(ctx context.Context, category entity.QuestCategory) *discordgo.MessageSend {
	view := model.QuestList{OwnerID: u.id, Scope: "quest", Category: string(category)}
	for _, q := range u.Quests(category) {
		view.Quests = append(view.Quests, questView(q.QuestProgress))
	}

	if category == entity.QuestDaily {
		view.RerollFee = common.FormatNumber(xcontext.Configs(ctx).Economy.RerollFee)
	}

	return u.f.renderer.QuestList(view)
}

// ProgressUserQuests adds value to every active quest of the given type of
// the user. It returns the quests which have just been finished, their
// rewards are already granted.
func (f *Factory) ProgressUserQuests(
	ctx context.Context, userID string, questType entity.QuestType, value int64,
) ([]entity.UserQuest, error) {
	if value <= 0 {
		return nil, errorx.New(errorx.Validation, "Progress must be positive")
	}

	hasQuest := func(u *UserData) bool {
		for _, q := range u.data.Quests {
			if q.Type == questType && !q.Finished {
				return true
			}
		}
		return false
	}

	// Most activities do not match any quest, check before taking the lock.
	peek, err := f.CreateUser(ctx, userID, repository.UserQuests)
	if err != nil {
		return nil, err
	}

	if !hasQuest(peek) {
		return nil, nil
	}

	var finished []entity.UserQuest
	_, err = f.MutateUser(ctx, userID, func(u *UserData) error {
		for i := range u.data.Quests {
			q := &u.data.Quests[i]
			if q.Type != questType {
				continue
			}

			if advance(&q.QuestProgress, value) {
				if err := u.grant(q.Reward); err != nil {
					return err
				}

				finished = append(finished, *q)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, q := range finished {
		f.publishQuestFinished(ctx, userID, string(q.Category), q.QuestProgress)
	}

	return finished, nil
}

func inventoryItemIDs(inventory []entity.InventoryItem) []string {
	ids := make([]string, 0, len(inventory))
	for _, i := range inventory {
		ids = append(ids, i.ItemID)
	}

	return ids
}
