package domain

import (
	"testing"
	"time"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func entryIDs(entries []LeaderboardEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	return ids
}

func Test_ClubLeaderboard_Sort(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "A", "Club A", 50, testNow, "ownerA")
	testutil.InsertClub(ctx, "B", "Club B", 80, testNow.Add(time.Minute), "ownerB")
	testutil.InsertClub(ctx, "C", "Club C", 80, testNow.Add(2*time.Minute), "ownerC")
	f := newTestFactory(t)

	lb, err := f.CreateClubLeaderboard(ctx, ClubLeaderboardPoint, "C")
	require.NoError(t, err)
	require.Nil(t, lb.Sorted())

	_, err = lb.GetPosition("B")
	require.True(t, errorx.Is(err, errorx.InvalidState))

	_, err = lb.GetEmbed(ctx, 0)
	require.True(t, errorx.Is(err, errorx.InvalidState))

	lb.Sort()
	require.Equal(t, []string{"B", "C", "A"}, entryIDs(lb.Sorted()))

	pos, err := lb.GetPosition("B")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	pos, err = lb.GetPosition("A")
	require.NoError(t, err)
	require.Equal(t, 3, pos)

	_, err = lb.GetPosition("Z")
	require.True(t, errorx.Is(err, errorx.NotFound))

	first := lb.Sorted()
	lb.Sort()
	require.Equal(t, first, lb.Sorted())

	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i-1].Value, first[i].Value)
	}
}

func Test_ClubLeaderboard_Categories(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "A", "Club A", 350, testNow, "ownerA")
	testutil.InsertClub(ctx, "B", "Club B", 120, testNow.Add(time.Minute), "ownerB")
	f := newTestFactory(t)

	_, err := f.MutateClub(ctx, "B", func(c *Club) error {
		return c.AddFund("ownerB", 500)
	})
	require.NoError(t, err)

	lb, err := f.CreateClubLeaderboard(ctx, ClubLeaderboardFund, "")
	require.NoError(t, err)
	lb.Sort()
	require.Equal(t, []string{"B", "A"}, entryIDs(lb.Sorted()))

	lb2, err := f.CreateClubLeaderboard(ctx, ClubLeaderboardLevel, "")
	require.NoError(t, err)
	lb2.Sort()
	require.Equal(t, []string{"A", "B"}, entryIDs(lb2.Sorted()))
	require.Equal(t, int64(3), lb2.Sorted()[0].Value)
	require.Equal(t, ClubLeaderboardLevel, lb2.Category())

	_, err = f.CreateClubLeaderboard(ctx, ClubLeaderboardCategory("unknown"), "")
	require.True(t, errorx.Is(err, errorx.BadRequest))
}

func Test_Leaderboard_Users(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertUser(ctx, "user1", 100, 9)
	testutil.InsertUser(ctx, "user2", 300, 1)
	testutil.InsertUser(ctx, "user3", 300, 5)
	testutil.InsertUser(ctx, "user4", 10, 0)
	f := newTestFactory(t)

	viewer, err := f.CreateUser(ctx, "user3")
	require.NoError(t, err)

	lb, err := f.CreateLeaderboard(ctx, LeaderboardBalance, viewer)
	require.NoError(t, err)
	lb.Sort()
	require.Equal(t, []string{"user2", "user3", "user1", "user4"}, entryIDs(lb.Sorted()))

	pos, err := lb.GetPosition(viewer.ID())
	require.NoError(t, err)
	require.Equal(t, 2, pos)

	// Pages are stable as long as the data does not change.
	page1, err := lb.GetEmbed(ctx, 1)
	require.NoError(t, err)
	again, err := lb.GetEmbed(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, page1, again)

	clamped, err := lb.GetEmbed(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, page1, clamped)

	main := lb.GetMainEmbed(ctx)
	first, err := lb.GetEmbed(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, first, main)

	gems, err := f.CreateLeaderboard(ctx, LeaderboardGem, nil)
	require.NoError(t, err)
	require.NotNil(t, gems.GetMainEmbed(ctx))
	require.Equal(t, []string{"user1", "user3", "user2", "user4"}, entryIDs(gems.Sorted()))
}

func Test_Leaderboard_Relations(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	f := newTestFactory(t)

	r1, err := f.NewRelation(ctx, entity.RelationFriendship, "user1", "user2")
	require.NoError(t, err)
	r2, err := f.NewRelation(ctx, entity.RelationMarriage, "user3", "user4")
	require.NoError(t, err)

	_, err = f.MutateRelation(ctx, r1.ID(), func(r *Relation) error {
		return r.AddPoints("user1", 10)
	})
	require.NoError(t, err)

	_, err = f.MutateRelation(ctx, r2.ID(), func(r *Relation) error {
		return r.AddPoints("user4", 20)
	})
	require.NoError(t, err)

	lb, err := f.CreateLeaderboard(ctx, LeaderboardRelation, nil)
	require.NoError(t, err)
	lb.Sort()
	require.Equal(t, []string{r2.ID(), r1.ID()}, entryIDs(lb.Sorted()))

	pos, err := lb.GetPosition("user2")
	require.NoError(t, err)
	require.Equal(t, 2, pos)
}
