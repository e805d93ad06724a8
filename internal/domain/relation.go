package domain

import (
	"context"
	"fmt"
	"math"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type LevelProperty struct {
	Level     int
	Name      string
	MinPoints int64
}

var relationLevels = []LevelProperty{
	{Level: 1, Name: "Acquaintance", MinPoints: 0},
	{Level: 2, Name: "Friend", MinPoints: 100},
	{Level: 3, Name: "Close friend", MinPoints: 300},
	{Level: 4, Name: "Best friend", MinPoints: 700},
	{Level: 5, Name: "Soulmate", MinPoints: 1500},
}

// relationLevel returns the level reached with points and the next one, false
// at the last level.
func relationLevel(points int64) (LevelProperty, *LevelProperty) {
	current := relationLevels[0]
	for i, l := range relationLevels {
		if points < l.MinPoints {
			return current, &relationLevels[i]
		}
		current = l
	}

	return current, nil
}

// Relation links two users. Points and gifts are kept per giver.
type Relation struct {
	f      *Factory
	id     string
	fields []string
	data   *entity.Relation
}

func (f *Factory) CreateRelation(ctx context.Context, id string, fields ...string) (*Relation, error) {
	r := &Relation{f: f, id: id}
	if err := r.Initialize(ctx, fields...); err != nil {
		return nil, err
	}

	return r, nil
}

// NewRelation creates and stores a relation between m1 and m2. A user has at
// most one marriage.
func (f *Factory) NewRelation(
	ctx context.Context, kind entity.RelationKind, m1, m2 string,
) (*Relation, error) {
	if m1 == "" || m2 == "" || m1 == m2 {
		return nil, errorx.New(errorx.Validation, "A relation needs two different users")
	}

	// Both users are locked in the same order whatever the order of m1 and m2.
	members := []string{m1, m2}
	slices.Sort(members)
	for _, member := range members {
		unlock, err := f.lock(ctx, common.LockKeyUserRelation(member))
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	if _, err := f.repos.Relation.GetByPair(ctx, kind, m1, m2); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This relation already exists")
	} else if err = storeError(ctx, err, "Not found relation"); !errorx.Is(err, errorx.NotFound) {
		return nil, err
	}

	if kind == entity.RelationMarriage {
		for _, member := range []string{m1, m2} {
			married, err := f.isMarried(ctx, member)
			if err != nil {
				return nil, err
			}

			if married {
				return nil, errorx.New(errorx.InvalidState, "<@%s> is already married", member)
			}
		}
	}

	r := &Relation{
		f:  f,
		id: uuid.NewString(),
	}
	r.data = &entity.Relation{Base: entity.Base{ID: r.id}, Kind: kind, M1: m1, M2: m2}
	if err := r.Update(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (f *Factory) isMarried(ctx context.Context, userID string) (bool, error) {
	relations, err := f.repos.Relation.GetByMember(ctx, userID)
	if err != nil {
		return false, storeError(ctx, err, "Cannot get relations of user %s", userID)
	}

	for _, r := range relations {
		if r.Kind == entity.RelationMarriage {
			return true, nil
		}
	}

	return false, nil
}

func (r *Relation) Initialize(ctx context.Context, fields ...string) error {
	data, err := r.f.repos.Relation.Get(ctx, r.id, fields...)
	if err != nil {
		return storeError(ctx, err, "Not found relation %s", r.id)
	}

	r.data = data
	r.fields = fields
	return nil
}

func (r *Relation) Update(ctx context.Context) error {
	if r.data == nil {
		return notLoaded("relation", r.id)
	}

	if err := r.f.repos.Relation.Save(ctx, r.data, r.fields...); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save relation %s: %v", r.id, err)
		return fmt.Errorf("cannot save relation %s: %w", r.id, err)
	}

	return nil
}

func (r *Relation) ID() string {
	return r.id
}

func (r *Relation) mustLoaded() *entity.Relation {
	if r.data == nil {
		panic(fmt.Sprintf("relation %s is accessed before being loaded", r.id))
	}

	return r.data
}

// mutable only accepts fully loaded relations, points and gifts of both
// members change together.
func (r *Relation) mutable() error {
	if r.data == nil {
		return notLoaded("relation", r.id)
	}

	if len(r.fields) > 0 {
		return errorx.New(errorx.InvalidState, "The relation %s is partially loaded", r.id)
	}

	return nil
}

func (r *Relation) Kind() entity.RelationKind {
	return r.mustLoaded().Kind
}

func (r *Relation) Members() (string, string) {
	data := r.mustLoaded()
	return data.M1, data.M2
}

func (r *Relation) Partner(userID string) (string, error) {
	data := r.mustLoaded()
	switch userID {
	case data.M1:
		return data.M2, nil
	case data.M2:
		return data.M1, nil
	}

	return "", errorx.New(errorx.PermissionDenied, "You are not in this relation")
}

func (r *Relation) Points() int64 {
	data := r.mustLoaded()
	points, ok := common.AddInt64(data.M1Points, data.M2Points)
	if !ok {
		return math.MaxInt64
	}

	return points
}

// Properties returns the current level of the relation.
func (r *Relation) Properties() LevelProperty {
	level, _ := relationLevel(r.Points())
	return level
}

// NextLevel returns the next level, false at the last level.
func (r *Relation) NextLevel() (LevelProperty, bool) {
	_, next := relationLevel(r.Points())
	if next == nil {
		return LevelProperty{}, false
	}

	return *next, true
}

// AddGifts records amount gifts offered by userID and returns the points they
// gave. Taking the gifts from the inventory is up to the caller.
func (r *Relation) AddGifts(userID string, item *entity.Item, amount int64) (int64, error) {
	if err := r.mutable(); err != nil {
		return 0, err
	}

	if item.Type != entity.ItemGift {
		return 0, errorx.New(errorx.Validation, "%s is not a gift", item.Name)
	}

	if amount <= 0 {
		return 0, errorx.New(errorx.Validation, "Amount must be positive")
	}

	points, ok := common.MulInt64(item.GiftPoint, amount)
	if !ok {
		return 0, errorx.New(errorx.Validation, "Cannot offer that many gifts at once")
	}

	gifts, total, err := r.memberState(userID)
	if err != nil {
		return 0, err
	}

	newTotal, ok := common.AddInt64(*total, points)
	if !ok {
		return 0, errorx.New(errorx.Validation, "The relation cannot hold that many points")
	}

	for _, g := range *gifts {
		if g.ItemID != item.ID {
			continue
		}

		if _, ok := common.AddInt64(g.Amount, amount); !ok {
			return 0, errorx.New(errorx.Validation, "Cannot offer that many gifts at once")
		}
	}

	*gifts = mergeGifts(*gifts, []entity.GiftCount{{ItemID: item.ID, Amount: amount}})
	*total = newTotal
	return points, nil
}

// memberState returns the gifts and the points given by userID.
func (r *Relation) memberState(userID string) (*entity.Array[entity.GiftCount], *int64, error) {
	switch userID {
	case r.data.M1:
		return &r.data.M1Gifts, &r.data.M1Points, nil
	case r.data.M2:
		return &r.data.M2Gifts, &r.data.M2Points, nil
	}

	return nil, nil, errorx.New(errorx.PermissionDenied, "You are not in this relation")
}

func (r *Relation) AddPoints(userID string, point int64) error {
	if err := r.mutable(); err != nil {
		return err
	}

	if point < 0 {
		return errorx.New(errorx.Validation, "Point must not be negative")
	}

	_, total, err := r.memberState(userID)
	if err != nil {
		return err
	}

	newTotal, ok := common.AddInt64(*total, point)
	if !ok {
		return errorx.New(errorx.Validation, "The relation cannot hold that many points")
	}

	*total = newTotal
	return nil
}

func (r *Relation) SetRing(item *entity.Item) error {
	if err := r.mutable(); err != nil {
		return err
	}

	if r.data.Kind != entity.RelationMarriage {
		return errorx.New(errorx.InvalidState, "Only a marriage has a ring")
	}

	if item.Type != entity.ItemRing {
		return errorx.New(errorx.Validation, "%s is not a ring", item.Name)
	}

	r.data.RingItemID = item.ID
	return nil
}

func (r *Relation) ToEmbed(ctx context.Context) (*discordgo.MessageSend, error) {
	data := r.mustLoaded()
	level := r.Properties()
	view := model.Relation{
		ID:        r.id,
		Kind:      string(data.Kind),
		M1:        data.M1,
		M2:        data.M2,
		Level:     level.Level,
		LevelName: level.Name,
		Points:    common.FormatNumber(r.Points()),
	}

	if next, ok := r.NextLevel(); ok {
		view.NextPoints = common.FormatNumber(next.MinPoints)
	}

	var err error
	if view.M1Gifts, err = r.f.giftViews(ctx, data.M1Gifts); err != nil {
		return nil, err
	}

	if view.M2Gifts, err = r.f.giftViews(ctx, data.M2Gifts); err != nil {
		return nil, err
	}

	if data.RingItemID != "" {
		ring, err := r.f.repos.Item.GetByID(ctx, data.RingItemID)
		if err != nil {
			return nil, storeError(ctx, err, "Not found item %s", data.RingItemID)
		}

		view.Ring = ring.Name
	}

	return r.f.renderer.Relation(view), nil
}

func (r *Relation) GetRingInfo(ctx context.Context) (*discordgo.MessageSend, error) {
	data := r.mustLoaded()
	view := model.Ring{RelationID: r.id}
	if data.RingItemID != "" {
		ring, err := r.f.repos.Item.GetByID(ctx, data.RingItemID)
		if err != nil {
			return nil, storeError(ctx, err, "Not found item %s", data.RingItemID)
		}

		view.Name = ring.Name
		view.Emoji = ring.Emoji
		view.Description = ring.Description
	}

	return r.f.renderer.Ring(view), nil
}

// mergeGifts adds the counts of more into gifts, keeping the order of first
// appearance.
func mergeGifts(gifts []entity.GiftCount, more []entity.GiftCount) []entity.GiftCount {
	for _, g := range more {
		i := slices.IndexFunc(gifts, func(e entity.GiftCount) bool { return e.ItemID == g.ItemID })
		if i >= 0 {
			gifts[i].Amount += g.Amount
		} else {
			gifts = append(gifts, g)
		}
	}

	return gifts
}

func (f *Factory) giftViews(ctx context.Context, gifts []entity.GiftCount) ([]model.Gift, error) {
	ids := make([]string, 0, len(gifts))
	for _, g := range gifts {
		ids = append(ids, g.ItemID)
	}

	items, err := f.catalog(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]model.Gift, 0, len(gifts))
	for _, g := range gifts {
		result = append(result, model.Gift{
			Name:   items[g.ItemID].Name,
			Emoji:  items[g.ItemID].Emoji,
			Amount: common.FormatNumber(g.Amount),
		})
	}

	return result, nil
}
