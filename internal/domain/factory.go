package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/presenter"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/locker"
	"github.com/questx-lab/clubbot/pkg/pubsub"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"github.com/questx-lab/clubbot/pkg/xredis"
	"gorm.io/gorm"
)

type Repositories struct {
	User     repository.UserRepository
	Club     repository.ClubRepository
	ClubLog  repository.ClubLogRepository
	Relation repository.RelationRepository
	Sticky   repository.StickyRepository
	Quest    repository.QuestRepository
	Item     repository.ItemRepository
	Shop     repository.ShopRepository
}

func NewRepositories() Repositories {
	return Repositories{
		User:     repository.NewUserRepository(),
		Club:     repository.NewClubRepository(),
		ClubLog:  repository.NewClubLogRepository(),
		Relation: repository.NewRelationRepository(),
		Sticky:   repository.NewStickyRepository(),
		Quest:    repository.NewQuestRepository(),
		Item:     repository.NewItemRepository(),
		Shop:     repository.NewShopRepository(),
	}
}

// Factory creates the entities of the economy and holds what they share: the
// repositories, the renderer, the per-entity locks and the event publisher.
type Factory struct {
	repos     Repositories
	renderer  presenter.Renderer
	locker    locker.Locker
	publisher pubsub.Publisher

	// redisClient caches sticky messages, nil disables the cache.
	redisClient xredis.Client

	randMutex sync.Mutex
	rand      *rand.Rand

	now    func() time.Time
	nodeID int64
	node   *snowflake.Node
}

type Option func(*Factory)

func WithLocker(l locker.Locker) Option {
	return func(f *Factory) { f.locker = l }
}

func WithPublisher(p pubsub.Publisher) Option {
	return func(f *Factory) { f.publisher = p }
}

func WithRedisClient(c xredis.Client) Option {
	return func(f *Factory) { f.redisClient = c }
}

func WithRandSource(src rand.Source) Option {
	return func(f *Factory) { f.rand = rand.New(src) }
}

func WithClock(now func() time.Time) Option {
	return func(f *Factory) { f.now = now }
}

// WithNodeID sets the snowflake node of generated club log ids. Processes
// writing to the same database must use different nodes.
func WithNodeID(id int64) Option {
	return func(f *Factory) { f.nodeID = id }
}

func NewFactory(repos Repositories, renderer presenter.Renderer, opts ...Option) (*Factory, error) {
	f := &Factory{
		repos:     repos,
		renderer:  renderer,
		locker:    locker.NewLocal(),
		publisher: pubsub.NewNoopPublisher(),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
		nodeID:    1,
	}

	for _, opt := range opts {
		opt(f)
	}

	node, err := snowflake.NewNode(f.nodeID)
	if err != nil {
		return nil, err
	}

	f.node = node
	return f, nil
}

// Now is the clock of the factory, replaceable in tests with WithClock.
func (f *Factory) Now() time.Time {
	return f.now()
}

// randRange returns a random number in [min, max].
func (f *Factory) randRange(min, max int64) int64 {
	if max <= min {
		return min
	}

	f.randMutex.Lock()
	defer f.randMutex.Unlock()
	return min + f.rand.Int63n(max-min+1)
}

func (f *Factory) randIntn(n int) int {
	f.randMutex.Lock()
	defer f.randMutex.Unlock()
	return f.rand.Intn(n)
}

func (f *Factory) lock(ctx context.Context, key string) (locker.Unlock, error) {
	unlock, err := f.locker.Lock(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot acquire lock %s: %v", key, err)
		return nil, errorx.New(errorx.Unavailable, "Someone else is changing this, try again later")
	}

	return unlock, nil
}

// MutateUser loads the whole user under its lock, applies fn and saves the
// result if fn succeeds. fn must not call other Mutate or sub-entity methods
// of the same user.
func (f *Factory) MutateUser(ctx context.Context, id string, fn func(*UserData) error) (*UserData, error) {
	unlock, err := f.lock(ctx, common.LockKeyUser(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	user, err := f.CreateUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(user); err != nil {
		return nil, err
	}

	if err := user.Update(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

// MutateClub is MutateUser for clubs.
func (f *Factory) MutateClub(ctx context.Context, id string, fn func(*Club) error) (*Club, error) {
	unlock, err := f.lock(ctx, common.LockKeyClub(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	club, err := f.CreateClub(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(club); err != nil {
		return nil, err
	}

	if err := club.Update(ctx); err != nil {
		return nil, err
	}

	return club, nil
}

// MutateRelation is MutateUser for relations.
func (f *Factory) MutateRelation(
	ctx context.Context, id string, fn func(*Relation) error,
) (*Relation, error) {
	unlock, err := f.lock(ctx, common.LockKeyRelation(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	relation, err := f.CreateRelation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(relation); err != nil {
		return nil, err
	}

	if err := relation.Update(ctx); err != nil {
		return nil, err
	}

	return relation, nil
}

// storeError turns a repository error into the error returned to callers.
func storeError(ctx context.Context, err error, format string, a ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.New(errorx.NotFound, format, a...)
	}

	xcontext.Logger(ctx).Errorf("%s: %v", fmt.Sprintf(format, a...), err)
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), err)
}

func notLoaded(kind, id string) error {
	return errorx.New(errorx.InvalidState, "The %s %s is not loaded", kind, id)
}
