package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

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

// clubLevels[i] is the point needed to reach level i+1.
var clubLevels = []int64{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500}

const (
	maxClubNameLength  = 32
	baseClubCapacity   = 10
	clubCapacityPerLvl = 5
)

func clubLevel(point int64) int {
	level := 0
	for _, threshold := range clubLevels {
		if point < threshold {
			break
		}
		level++
	}

	return level
}

type Club struct {
	f      *Factory
	id     string
	fields []string
	data   *entity.Club
	isNew  bool

	// pendingLogs are written together with the club by Update.
	pendingLogs []entity.ClubLog
}

func (f *Factory) CreateClub(ctx context.Context, id string, fields ...string) (*Club, error) {
	c := &Club{f: f, id: id}
	if err := c.Initialize(ctx, fields...); err != nil {
		return nil, err
	}

	return c, nil
}

// FoundClub creates a club owned by ownerID and stores it.
func (f *Factory) FoundClub(ctx context.Context, id, name, ownerID string) (*Club, error) {
	name = strings.TrimSpace(name)
	if id == "" || ownerID == "" {
		return nil, errorx.New(errorx.Validation, "Club id and owner must not be empty")
	}

	if name == "" || len(name) > maxClubNameLength {
		return nil, errorx.New(errorx.Validation, "Club name must have 1 to %d characters", maxClubNameLength)
	}

	unlock, err := f.lock(ctx, common.LockKeyClub(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := f.repos.Club.Get(ctx, id, repository.ClubName); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Club %s already exists", id)
	} else if err = storeError(ctx, err, "Not found club %s", id); !errorx.Is(err, errorx.NotFound) {
		return nil, err
	}

	ownerClubID, err := f.repos.Club.GetClubIDByMember(ctx, ownerID)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get club of user %s", ownerID)
	}

	if ownerClubID != "" {
		return nil, errorx.New(errorx.AlreadyExists, "You are already in a club")
	}

	now := f.now()
	c := &Club{
		f:  f,
		id: id,
		data: &entity.Club{
			Base:    entity.Base{ID: id},
			Name:    name,
			OwnerID: ownerID,
			Level:   clubLevel(0),
			Members: entity.Array[entity.ClubMemberData]{
				{UserID: ownerID, Role: entity.ClubOwner, JoinedAt: now},
			},
		},
		isNew: true,
	}

	c.log(ownerID, entity.ClubActionMemberAdd, ownerID, 0, "")
	if err := c.Update(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Club) Initialize(ctx context.Context, fields ...string) error {
	data, err := c.f.repos.Club.Get(ctx, c.id, fields...)
	if err != nil {
		return storeError(ctx, err, "Not found club %s", c.id)
	}

	c.data = data
	c.fields = fields
	c.isNew = false
	c.pendingLogs = nil
	return nil
}

// Update saves the loaded fields of the club and the logs written since the
// last update, in one transaction.
func (c *Club) Update(ctx context.Context) error {
	if c.data == nil {
		return notLoaded("club", c.id)
	}

	fields := c.fields
	if c.isNew {
		fields = nil
	}

	txCtx := xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(txCtx)

	if err := c.f.repos.Club.Save(txCtx, c.data, fields...); err != nil {
		if errors.Is(err, repository.ErrMemberOfAnotherClub) {
			return errorx.New(errorx.AlreadyExists, "A member of the club has already joined another club")
		}

		xcontext.Logger(ctx).Errorf("Cannot save club %s: %v", c.id, err)
		return fmt.Errorf("cannot save club %s: %w", c.id, err)
	}

	if err := c.f.repos.ClubLog.Create(txCtx, c.pendingLogs...); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save logs of club %s: %v", c.id, err)
		return fmt.Errorf("cannot save logs of club %s: %w", c.id, err)
	}

	if err := xcontext.WithCommitDBTransaction(txCtx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit club %s: %v", c.id, err)
		return fmt.Errorf("cannot commit club %s: %w", c.id, err)
	}

	c.f.publishClubLogs(ctx, c.pendingLogs)
	c.pendingLogs = nil
	c.isNew = false
	return nil
}

func (c *Club) ID() string {
	return c.id
}

func (c *Club) Loaded() bool {
	return c.data != nil
}

func (c *Club) mustLoaded() *entity.Club {
	if c.data == nil {
		panic(fmt.Sprintf("club %s is accessed before being loaded", c.id))
	}

	return c.data
}

func (c *Club) mutable(fields ...string) error {
	if c.data == nil {
		return notLoaded("club", c.id)
	}

	if len(c.fields) == 0 || c.isNew {
		return nil
	}

	for _, f := range fields {
		if !slices.Contains(c.fields, f) {
			return errorx.New(errorx.InvalidState, "The field %s of club %s is not loaded", f, c.id)
		}
	}

	return nil
}

func (c *Club) log(userID string, action entity.ClubActionType, target string, amount int64, reason string) {
	c.pendingLogs = append(c.pendingLogs, c.newLog(userID, action, target, amount, reason))
}

func (c *Club) newLog(
	userID string, action entity.ClubActionType, target string, amount int64, reason string,
) entity.ClubLog {
	return entity.ClubLog{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        c.f.node.Generate().Int64(),
			CreatedAt: c.f.now(),
		},
		ClubID: c.id,
		UserID: userID,
		Type:   action,
		Target: target,
		Amount: amount,
		Reason: reason,
	}
}

// PendingLogs returns the logs which will be written by the next Update.
func (c *Club) PendingLogs() []ClubLog {
	result := make([]ClubLog, 0, len(c.pendingLogs))
	for _, l := range c.pendingLogs {
		result = append(result, NewClubLog(l))
	}

	return result
}

func (c *Club) ClubName() string {
	return c.mustLoaded().Name
}

func (c *Club) Icon() string {
	return c.mustLoaded().Icon
}

func (c *Club) Thumbnail() string {
	return c.mustLoaded().Thumbnail
}

func (c *Club) OwnerID() string {
	return c.mustLoaded().OwnerID
}

func (c *Club) Level() int {
	return c.mustLoaded().Level
}

func (c *Club) Point() int64 {
	return c.mustLoaded().Point
}

func (c *Club) Fund() int64 {
	return c.mustLoaded().Fund
}

func (c *Club) Premium() bool {
	return c.mustLoaded().Premium
}

func (c *Club) Members() []entity.ClubMemberData {
	return slices.Clone(c.mustLoaded().Members)
}

func (c *Club) Quests() []entity.ClubQuestData {
	return slices.Clone(c.mustLoaded().Quests)
}

func (c *Club) memberIndex(userID string) int {
	return slices.IndexFunc(c.data.Members, func(m entity.ClubMemberData) bool { return m.UserID == userID })
}

func (c *Club) IsMember(userID string) bool {
	c.mustLoaded()
	return c.memberIndex(userID) >= 0
}

// Capacity is the maximum number of members at the current level.
func (c *Club) Capacity() int {
	return baseClubCapacity + clubCapacityPerLvl*(c.Level()-1)
}

// NextLevel returns the point needed for the next level, false at the
// maximum level.
func (c *Club) NextLevel() (int64, bool) {
	level := c.Level()
	if level >= len(clubLevels) {
		return 0, false
	}

	return clubLevels[level], true
}

func (c *Club) LevelString() string {
	return fmt.Sprintf("Lv. %d", c.Level())
}

// DonatorBonus is the bonus percentage added to member donations.
func (c *Club) DonatorBonus() int {
	bonus := c.Level() * 2
	if c.Premium() {
		bonus += 10
	}

	return bonus
}

func (c *Club) AddMember(ctx context.Context, userID string) error {
	if err := c.mutable(repository.ClubMembers); err != nil {
		return err
	}

	if c.memberIndex(userID) >= 0 {
		return errorx.New(errorx.AlreadyExists, "User is already a member of %s", c.data.Name)
	}

	clubID, err := c.f.repos.Club.GetClubIDByMember(ctx, userID)
	if err != nil {
		return storeError(ctx, err, "Cannot get club of user %s", userID)
	}

	if clubID != "" {
		return errorx.New(errorx.AlreadyExists, "User is already in another club")
	}

	if len(c.data.Members) >= c.Capacity() {
		return errorx.New(errorx.InvalidState, "The club is full")
	}

	c.data.Members = append(c.data.Members, entity.ClubMemberData{
		UserID:   userID,
		Role:     entity.ClubMember,
		JoinedAt: c.f.now(),
	})

	c.log(userID, entity.ClubActionMemberAdd, userID, 0, "")
	return nil
}

func (c *Club) RemoveMember(actorID, userID string) error {
	if err := c.mutable(repository.ClubMembers); err != nil {
		return err
	}

	i := c.memberIndex(userID)
	if i < 0 {
		return errorx.New(errorx.NotFound, "User is not a member of %s", c.data.Name)
	}

	if c.data.Members[i].Role == entity.ClubOwner {
		return errorx.New(errorx.InvalidState, "The owner cannot leave the club")
	}

	c.data.Members = slices.Delete(c.data.Members, i, i+1)
	c.log(actorID, entity.ClubActionMemberRemove, userID, 0, "")
	return nil
}

// SetRole promotes or demotes a member. Ownership cannot be given this way.
func (c *Club) SetRole(userID string, role entity.ClubRole) error {
	if err := c.mutable(repository.ClubMembers); err != nil {
		return err
	}

	if role == entity.ClubOwner {
		return errorx.New(errorx.Validation, "Ownership cannot be given")
	}

	i := c.memberIndex(userID)
	if i < 0 {
		return errorx.New(errorx.NotFound, "User is not a member of %s", c.data.Name)
	}

	if c.data.Members[i].Role == entity.ClubOwner {
		return errorx.New(errorx.InvalidState, "The role of the owner cannot be changed")
	}

	c.data.Members[i].Role = role
	return nil
}

func (c *Club) AddPoint(userID string, point int64) error {
	if err := c.mutable(repository.ClubPoint, repository.ClubLevel); err != nil {
		return err
	}

	if point < 0 {
		return errorx.New(errorx.Validation, "Point must not be negative")
	}

	total, ok := common.AddInt64(c.data.Point, point)
	if !ok {
		return errorx.New(errorx.Validation, "The club cannot hold that many points")
	}

	c.data.Point = total
	c.log(userID, entity.ClubActionPointAdd, "", point, "")

	if level := clubLevel(c.data.Point); level > c.data.Level {
		c.data.Level = level
		c.log(userID, entity.ClubActionLevelUp, "", int64(level), "")
	}

	return nil
}

func (c *Club) AddQuest(quest entity.ClubQuestData) error {
	if err := c.mutable(repository.ClubQuests); err != nil {
		return err
	}

	if quest.ID == "" {
		return errorx.New(errorx.Validation, "Quest id must not be empty")
	}

	if c.questIndex(quest.ID) >= 0 {
		return errorx.New(errorx.AlreadyExists, "Quest %s already exists", quest.ID)
	}

	c.data.Quests = append(c.data.Quests, quest)
	c.log("", entity.ClubActionQuestAdd, quest.Label, quest.Target, "")
	return nil
}

func (c *Club) questIndex(id string) int {
	return slices.IndexFunc(c.data.Quests, func(q entity.ClubQuestData) bool { return q.ID == id })
}

// Quest returns the active quest with the given id as a sub-entity.
func (c *Club) Quest(id string) (*ClubQuest, error) {
	data := c.mustLoaded()
	i := c.questIndex(id)
	if i < 0 {
		return nil, errorx.New(errorx.NotFound, "Not found quest %s", id)
	}

	return &ClubQuest{f: c.f, clubID: c.id, data: data.Quests[i]}, nil
}

// RefreshDailyQuest replaces all quests of the club with new ones.
func (c *Club) RefreshDailyQuest(ctx context.Context) error {
	if err := c.mutable(repository.ClubQuests, repository.ClubDailyAt, repository.ClubLevel); err != nil {
		return err
	}

	quests, err := c.f.NewQuestGenerator(c).GenerateN(ctx, xcontext.Configs(ctx).Economy.ClubDailyQuests)
	if err != nil {
		return err
	}

	c.data.Quests = nil
	for _, q := range quests {
		if err := c.AddQuest(q); err != nil {
			return err
		}
	}

	c.data.DailyRefreshedAt = sql.NullTime{Time: c.f.now(), Valid: true}
	return nil
}

// RefreshedToday reports whether the daily quests were refreshed today.
func (c *Club) RefreshedToday() bool {
	data := c.mustLoaded()
	return data.DailyRefreshedAt.Valid && dateutil.SameDay(data.DailyRefreshedAt.Time, c.f.now())
}

func (c *Club) AddFund(userID string, amount int64) error {
	if err := c.mutable(repository.ClubFund, repository.ClubDonations); err != nil {
		return err
	}

	if amount <= 0 {
		return errorx.New(errorx.Validation, "Amount must be positive")
	}

	fund, ok := common.AddInt64(c.data.Fund, amount)
	if !ok {
		return errorx.New(errorx.Validation, "The fund cannot hold that much")
	}

	if userID != "" {
		i := slices.IndexFunc(c.data.Donations, func(d entity.Donation) bool { return d.UserID == userID })
		if i >= 0 {
			donated, ok := common.AddInt64(c.data.Donations[i].Amount, amount)
			if !ok {
				return errorx.New(errorx.Validation, "The fund cannot hold that much")
			}

			c.data.Donations[i].Amount = donated
		} else {
			c.data.Donations = append(c.data.Donations, entity.Donation{UserID: userID, Amount: amount})
		}
	}

	c.data.Fund = fund

	c.log(userID, entity.ClubActionFundAdd, "", amount, "")
	return nil
}

func (c *Club) TakeFund(userID string, amount int64, reason string) error {
	if err := c.mutable(repository.ClubFund); err != nil {
		return err
	}

	if amount <= 0 {
		return errorx.New(errorx.Validation, "Amount must be positive")
	}

	if amount > c.data.Fund {
		return errorx.New(errorx.InsufficientFunds, "Not enough fund, need %s but have %s",
			common.FormatNumber(amount), common.FormatNumber(c.data.Fund))
	}

	c.data.Fund -= amount
	c.log(userID, entity.ClubActionFundTake, "", amount, reason)
	return nil
}

// ActivatePremium starts or extends the premium of the club by d.
func (c *Club) ActivatePremium(userID string, d time.Duration) error {
	if err := c.mutable(repository.ClubPremium, repository.ClubPremiumAt); err != nil {
		return err
	}

	if d <= 0 {
		return errorx.New(errorx.Validation, "Duration must be positive")
	}

	start := c.f.now()
	if c.data.Premium && c.data.PremiumExpiresAt.Valid && c.data.PremiumExpiresAt.Time.After(start) {
		start = c.data.PremiumExpiresAt.Time
	}

	c.data.Premium = true
	c.data.PremiumExpiresAt = sql.NullTime{Time: start.Add(d), Valid: true}
	c.log(userID, entity.ClubActionPremiumOn, "", int64(d/time.Hour), "")
	return nil
}

// DeactivatePremium ends the premium, the room protection goes with it.
func (c *Club) DeactivatePremium() error {
	if err := c.mutable(repository.ClubPremium, repository.ClubPremiumAt, repository.ClubRoomGuard); err != nil {
		return err
	}

	if !c.data.Premium {
		return errorx.New(errorx.InvalidState, "The club has no premium")
	}

	c.data.Premium = false
	c.data.PremiumExpiresAt = sql.NullTime{}
	c.data.Room.Protect = false
	c.log("", entity.ClubActionPremiumOff, "", 0, "")
	return nil
}

func (c *Club) PremiumExpired() bool {
	data := c.mustLoaded()
	return data.Premium && data.PremiumExpiresAt.Valid && !data.PremiumExpiresAt.Time.After(c.f.now())
}

func (c *Club) SetRoom(channelID string) error {
	if err := c.mutable(repository.ClubRoomID); err != nil {
		return err
	}

	if channelID == "" {
		return errorx.New(errorx.Validation, "Room channel must not be empty")
	}

	c.data.Room.ChannelID = channelID
	return nil
}

func (c *Club) SetRoomProtect(userID string) error {
	if err := c.mutable(repository.ClubRoomGuard); err != nil {
		return err
	}

	if !c.data.Premium {
		return errorx.New(errorx.InvalidState, "Room protection needs premium")
	}

	if c.data.Room.ChannelID == "" {
		return errorx.New(errorx.InvalidState, "The club has no room")
	}

	if c.data.Room.Protect {
		return errorx.New(errorx.InvalidState, "The room is already protected")
	}

	c.data.Room.Protect = true
	c.log(userID, entity.ClubActionRoomProtect, c.data.Room.ChannelID, 1, "")
	return nil
}

func (c *Club) RemoveRoomProtect(userID string) error {
	if err := c.mutable(repository.ClubRoomGuard); err != nil {
		return err
	}

	if !c.data.Room.Protect {
		return errorx.New(errorx.InvalidState, "The room is not protected")
	}

	c.data.Room.Protect = false
	c.log(userID, entity.ClubActionRoomProtect, c.data.Room.ChannelID, 0, "")
	return nil
}

// WriteLog stores a log right away, outside of the update cycle.
func (c *Club) WriteLog(
	ctx context.Context, userID string, action entity.ClubActionType, target string, amount int64, reason string,
) error {
	l := c.newLog(userID, action, target, amount, reason)
	if err := c.f.repos.ClubLog.Create(ctx, l); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write log of club %s: %v", c.id, err)
		return fmt.Errorf("cannot write log of club %s: %w", c.id, err)
	}

	c.f.publishClubLogs(ctx, []entity.ClubLog{l})
	return nil
}

func (c *Club) view() model.Club {
	data := c.mustLoaded()
	next := "max"
	if point, ok := c.NextLevel(); ok {
		next = common.FormatNumber(point)
	}

	return model.Club{
		ID:        c.id,
		Name:      data.Name,
		Icon:      data.Icon,
		Thumbnail: data.Thumbnail,
		OwnerID:   data.OwnerID,
		Level:     c.LevelString(),
		Point:     common.FormatNumber(data.Point),
		NextLevel: next,
		Fund:      common.FormatNumber(data.Fund),
		Members:   len(data.Members),
		Premium:   data.Premium,
	}
}

func (c *Club) GetEmbed() *discordgo.MessageSend {
	return c.f.renderer.Club(c.view())
}

func (c *Club) GetPremiumInfoEmbed() *discordgo.MessageSend {
	data := c.mustLoaded()
	view := model.ClubPremium{
		ClubID:       c.id,
		Name:         data.Name,
		Premium:      data.Premium,
		DonatorBonus: c.DonatorBonus(),
	}

	if data.Premium && data.PremiumExpiresAt.Valid {
		view.ExpiresAt = data.PremiumExpiresAt.Time.UTC().Format("2006-01-02 15:04")
	}

	return c.f.renderer.ClubPremium(view)
}

func (c *Club) GetMemberListEmbed(ctx context.Context, page int) *discordgo.MessageSend {
	data := c.mustLoaded()
	p := common.Paginate(data.Members, page, xcontext.Configs(ctx).Economy.PageSize)

	view := model.ClubMemberList{
		ClubID: c.id,
		Name:   data.Name,
		Offset: p.Offset,
		Pager:  model.Pager{Scope: "club:members", Args: []string{c.id}, Index: p.Index, Total: p.Total},
	}

	for _, m := range p.Items {
		view.Members = append(view.Members, model.ClubMember{UserID: m.UserID, Role: string(m.Role)})
	}

	return c.f.renderer.ClubMemberList(view)
}

func (c *Club) roomView() model.ClubRoom {
	data := c.mustLoaded()
	return model.ClubRoom{
		ClubID:    c.id,
		Name:      data.Name,
		ChannelID: data.Room.ChannelID,
		Protect:   data.Room.Protect,
		Premium:   data.Premium,
	}
}

func (c *Club) GetRoomClub() *discordgo.MessageSend {
	return c.f.renderer.ClubRoom(c.roomView())
}

func (c *Club) GetRoomProtectSetting() *discordgo.MessageSend {
	return c.f.renderer.ClubRoomProtect(c.roomView())
}

func (c *Club) GetQuestEmbed() *discordgo.MessageSend {
	view := model.QuestList{OwnerID: c.id, Scope: "club:quest", Category: string(entity.QuestClub)}
	for _, q := range c.mustLoaded().Quests {
		view.Quests = append(view.Quests, questView(q.QuestProgress))
	}

	return c.f.renderer.QuestList(view)
}

// GetFundEmbed lists the donators, biggest first.
func (c *Club) GetFundEmbed() *discordgo.MessageSend {
	data := c.mustLoaded()
	donations := slices.Clone(data.Donations)
	slices.SortStableFunc(donations, func(a, b entity.Donation) bool { return a.Amount > b.Amount })

	view := model.ClubFund{ClubID: c.id, Name: data.Name, Fund: common.FormatNumber(data.Fund)}
	for _, d := range donations {
		view.Donators = append(view.Donators, model.Donator{UserID: d.UserID, Amount: common.FormatNumber(d.Amount)})
	}

	return c.f.renderer.ClubFund(view)
}

// GetLogEmbed shows the stored logs, newest first.
func (c *Club) GetLogEmbed(ctx context.Context, page int) (*discordgo.MessageSend, error) {
	data := c.mustLoaded()
	count, err := c.f.repos.ClubLog.Count(ctx, c.id)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot count logs of club %s", c.id)
	}

	size := xcontext.Configs(ctx).Economy.PageSize
	index, total, offset := common.PageWindow(count, page, size)
	logs, err := c.f.repos.ClubLog.GetList(ctx, c.id, offset, size)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get logs of club %s", c.id)
	}

	view := model.ClubLogList{
		ClubID: c.id,
		Name:   data.Name,
		Pager:  model.Pager{Scope: "club:logs", Args: []string{c.id}, Index: index, Total: total},
	}

	for _, l := range logs {
		view.Lines = append(view.Lines, NewClubLog(l).String())
	}

	return c.f.renderer.ClubLogList(view), nil
}

// ProgressClubQuests adds value to every active quest of the given type of
// the club and grants the rewards of the finished ones.
func (f *Factory) ProgressClubQuests(
	ctx context.Context, clubID string, questType entity.QuestType, value int64,
) ([]entity.ClubQuestData, error) {
	if value <= 0 {
		return nil, errorx.New(errorx.Validation, "Progress must be positive")
	}

	peek, err := f.CreateClub(ctx, clubID, repository.ClubQuests)
	if err != nil {
		return nil, err
	}

	if slices.IndexFunc(peek.data.Quests, func(q entity.ClubQuestData) bool {
		return q.Type == questType && !q.Finished
	}) < 0 {
		return nil, nil
	}

	var finished []entity.ClubQuestData
	_, err = f.MutateClub(ctx, clubID, func(c *Club) error {
		for i := range c.data.Quests {
			q := &c.data.Quests[i]
			if q.Type != questType {
				continue
			}

			if advance(&q.QuestProgress, value) {
				finished = append(finished, *q)
			}
		}

		for _, q := range finished {
			if err := c.grant(q); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, q := range finished {
		f.publishQuestFinished(ctx, clubID, string(entity.QuestClub), q.QuestProgress)
	}

	return finished, nil
}

func (c *Club) grant(quest entity.ClubQuestData) error {
	c.log("", entity.ClubActionQuestFinish, quest.Label, 0, "")

	if quest.Reward.Point > 0 {
		if err := c.AddPoint("", quest.Reward.Point); err != nil {
			return err
		}
	}

	if quest.Reward.Fund > 0 {
		if err := c.AddFund("", quest.Reward.Fund); err != nil {
			return err
		}
	}

	return nil
}
