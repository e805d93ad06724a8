package domain

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Factory_NewRelation(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	tests := []struct {
		name    string
		kind    entity.RelationKind
		m1      string
		m2      string
		wantErr errorx.Code
	}{
		{name: "friendship", kind: entity.RelationFriendship, m1: "user1", m2: "user2"},
		{name: "same pair reversed", kind: entity.RelationFriendship, m1: "user2", m2: "user1", wantErr: errorx.AlreadyExists},
		{name: "marriage of friends", kind: entity.RelationMarriage, m1: "user1", m2: "user2"},
		{name: "already married", kind: entity.RelationMarriage, m1: "user3", m2: "user1", wantErr: errorx.InvalidState},
		{name: "with oneself", kind: entity.RelationFriendship, m1: "user3", m2: "user3", wantErr: errorx.Validation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := f.NewRelation(ctx, tt.kind, tt.m1, tt.m2)
			if tt.wantErr != 0 {
				require.True(t, errorx.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.kind, r.Kind())
			require.Zero(t, r.Points())
			require.Equal(t, "Acquaintance", r.Properties().Name)
		})
	}

	_, err := f.CreateRelation(ctx, "unknown")
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_Relation_Gifts(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	created, err := f.NewRelation(ctx, entity.RelationMarriage, "user1", "user2")
	require.NoError(t, err)

	var points int64
	r, err := f.MutateRelation(ctx, created.ID(), func(r *Relation) error {
		p, err := r.AddGifts("user1", &testutil.ItemRose, 3)
		points = p
		return err
	})
	require.NoError(t, err)
	require.Equal(t, int64(30), points)
	require.Equal(t, 1, r.Properties().Level)

	r, err = f.MutateRelation(ctx, created.ID(), func(r *Relation) error {
		_, err := r.AddGifts("user2", &testutil.ItemRose, 8)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, int64(110), r.Points())
	require.Equal(t, "Friend", r.Properties().Name)

	next, ok := r.NextLevel()
	require.True(t, ok)
	require.Equal(t, int64(300), next.MinPoints)

	_, err = r.AddGifts("user9", &testutil.ItemRose, 1)
	require.True(t, errorx.Is(err, errorx.PermissionDenied))
	_, err = r.AddGifts("user1", &testutil.ItemRing, 1)
	require.True(t, errorx.Is(err, errorx.Validation))
	_, err = r.AddGifts("user1", &testutil.ItemRose, 0)
	require.True(t, errorx.Is(err, errorx.Validation))

	partner, err := r.Partner("user2")
	require.NoError(t, err)
	require.Equal(t, "user1", partner)

	msg, err := r.ToEmbed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, msg.Embeds)

	u, err := f.CreateUser(ctx, "user2")
	require.NoError(t, err)
	gifts, err := u.GetGiftsEmbed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, gifts.Embeds)

	relations, err := u.GetRelationListEmbed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, relations.Embeds)
}

func Test_Factory_NewRelation_ConcurrentMarriage(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	const partners = 5
	errs := make([]error, partners)
	var wg sync.WaitGroup
	for i := 0; i < partners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.NewRelation(ctx, entity.RelationMarriage, "user1", fmt.Sprintf("partner%d", i))
		}(i)
	}
	wg.Wait()

	married := 0
	for _, err := range errs {
		if err == nil {
			married++
			continue
		}
		require.True(t, errorx.Is(err, errorx.InvalidState), "got %v", err)
	}
	require.Equal(t, 1, married)

	relations, err := repository.NewRelationRepository().GetByMember(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, relations, 1)
}

func Test_Relation_GiftOverflow(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	created, err := f.NewRelation(ctx, entity.RelationFriendship, "user1", "user2")
	require.NoError(t, err)

	_, err = f.MutateRelation(ctx, created.ID(), func(r *Relation) error {
		_, err := r.AddGifts("user1", &testutil.ItemRose, 4611686018427387905)
		return err
	})
	require.True(t, errorx.Is(err, errorx.Validation), "got %v", err)

	_, err = f.MutateRelation(ctx, created.ID(), func(r *Relation) error {
		return r.AddPoints("user1", math.MaxInt64)
	})
	require.NoError(t, err)

	r, err := f.MutateRelation(ctx, created.ID(), func(r *Relation) error {
		_, err := r.AddGifts("user1", &testutil.ItemRose, 1)
		return err
	})
	require.True(t, errorx.Is(err, errorx.Validation), "got %v", err)
	require.Nil(t, r)

	stored, err := f.CreateRelation(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), stored.Points())
}

func Test_Relation_Ring(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	friends, err := f.NewRelation(ctx, entity.RelationFriendship, "user1", "user2")
	require.NoError(t, err)
	require.True(t, errorx.Is(friends.SetRing(&testutil.ItemRing), errorx.InvalidState))

	married, err := f.NewRelation(ctx, entity.RelationMarriage, "user1", "user2")
	require.NoError(t, err)
	require.True(t, errorx.Is(married.SetRing(&testutil.ItemRose), errorx.Validation))
	require.NoError(t, married.SetRing(&testutil.ItemRing))
	require.NoError(t, married.Update(ctx))

	stored, err := f.CreateRelation(ctx, married.ID())
	require.NoError(t, err)
	msg, err := stored.GetRingInfo(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, msg.Embeds)
}

func Test_Relation_Projection(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	created, err := f.NewRelation(ctx, entity.RelationFriendship, "user1", "user2")
	require.NoError(t, err)

	r, err := f.CreateRelation(ctx, created.ID(), repository.RelationM1Points)
	require.NoError(t, err)
	require.True(t, errorx.Is(r.AddPoints("user1", 1), errorx.InvalidState))

	unloaded := &Relation{f: f, id: created.ID()}
	require.True(t, errorx.Is(unloaded.Update(ctx), errorx.InvalidState))
	require.Panics(t, func() { unloaded.Points() })
}

func Test_relationLevel(t *testing.T) {
	level, next := relationLevel(0)
	require.Equal(t, 1, level.Level)
	require.Equal(t, 2, next.Level)

	level, next = relationLevel(299)
	require.Equal(t, "Friend", level.Name)
	require.Equal(t, "Close friend", next.Name)

	level, next = relationLevel(100000)
	require.Equal(t, "Soulmate", level.Name)
	require.Nil(t, next)
}

func Test_mergeGifts(t *testing.T) {
	merged := mergeGifts(
		[]entity.GiftCount{{ItemID: "rose", Amount: 1}},
		[]entity.GiftCount{{ItemID: "choco", Amount: 2}, {ItemID: "rose", Amount: 3}},
	)

	require.Equal(t, []entity.GiftCount{
		{ItemID: "rose", Amount: 4},
		{ItemID: "choco", Amount: 2},
	}, merged)
}
