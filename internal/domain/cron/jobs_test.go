package cron

import (
	"math/rand"
	"testing"
	"time"

	"github.com/questx-lab/clubbot/internal/domain"
	"github.com/questx-lab/clubbot/internal/presenter"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestFactory(t *testing.T, now time.Time, nodeID int64) *domain.Factory {
	f, err := domain.NewFactory(
		domain.NewRepositories(),
		presenter.NewDiscordRenderer(),
		domain.WithRandSource(rand.NewSource(1)),
		domain.WithClock(func() time.Time { return now }),
		domain.WithNodeID(nodeID),
	)
	require.NoError(t, err)
	return f
}

func TestDailyClubQuestJob(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner1")
	testutil.InsertClub(ctx, "club2", "Dogs", 0, testNow, "owner2")
	f := newTestFactory(t, testNow, 1)
	clubRepo := repository.NewClubRepository()

	job := NewDailyClubQuestJob(f, clubRepo)
	job.Do(ctx)

	club1, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Len(t, club1.Quests(), 3)
	require.True(t, club1.RefreshedToday())

	club2, err := f.CreateClub(ctx, "club2")
	require.NoError(t, err)
	require.Len(t, club2.Quests(), 3)

	// Running twice the same day keeps the quests.
	job.Do(ctx)
	again, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, club1.Quests(), again.Quests())

	tomorrow := newTestFactory(t, testNow.Add(24*time.Hour), 2)
	NewDailyClubQuestJob(tomorrow, clubRepo).Do(ctx)
	renewed, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.NotEqual(t, club1.Quests()[0].ID, renewed.Quests()[0].ID)

	require.True(t, job.RunNow())
	require.True(t, job.Next().After(time.Now()))
}

func TestPremiumExpiryJob(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner1")
	testutil.InsertClub(ctx, "club2", "Dogs", 0, testNow, "owner2")
	f := newTestFactory(t, testNow, 1)

	_, err := f.MutateClub(ctx, "club1", func(c *domain.Club) error {
		return c.ActivatePremium("owner1", time.Hour)
	})
	require.NoError(t, err)

	_, err = f.MutateClub(ctx, "club2", func(c *domain.Club) error {
		return c.ActivatePremium("owner2", 48*time.Hour)
	})
	require.NoError(t, err)

	later := newTestFactory(t, testNow.Add(2*time.Hour), 2)
	job := NewPremiumExpiryJob(later, repository.NewClubRepository(), 0)
	job.Do(ctx)

	club1, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.False(t, club1.Premium())

	club2, err := f.CreateClub(ctx, "club2")
	require.NoError(t, err)
	require.True(t, club2.Premium())

	require.WithinDuration(t, time.Now().Add(time.Hour), job.Next(), time.Minute)
}
