package domain

import (
	"math"
	"testing"
	"time"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Factory_FoundClub(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	publisher := testutil.NewRecordPublisher()
	f := newTestFactory(t, WithPublisher(publisher))

	tests := []struct {
		name    string
		id      string
		clubNm  string
		owner   string
		wantErr errorx.Code
	}{
		{name: "happy case", id: "club1", clubNm: "Cats", owner: "user1"},
		{name: "existing club", id: "club1", clubNm: "Dogs", owner: "user2", wantErr: errorx.AlreadyExists},
		{name: "owner in another club", id: "club2", clubNm: "Dogs", owner: "user1", wantErr: errorx.AlreadyExists},
		{name: "empty name", id: "club3", clubNm: "  ", owner: "user3", wantErr: errorx.Validation},
		{name: "empty owner", id: "club4", clubNm: "Birds", owner: "", wantErr: errorx.Validation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := f.FoundClub(ctx, tt.id, tt.clubNm, tt.owner)
			if tt.wantErr != 0 {
				require.True(t, errorx.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.clubNm, c.ClubName())
			require.Equal(t, tt.owner, c.OwnerID())
			require.Equal(t, 1, c.Level())
			require.True(t, c.IsMember(tt.owner))
		})
	}

	count, err := repository.NewClubLogRepository().Count(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.Len(t, publisher.Packs(TopicClubLog), 1)

	_, err = f.CreateClub(ctx, "club9")
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_Club_Members(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	testutil.InsertClub(ctx, "club2", "Dogs", 0, testNow, "owner2", "user2")
	f := newTestFactory(t)

	c, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddMember(ctx, "user1")
	})
	require.NoError(t, err)
	require.True(t, c.IsMember("user1"))

	clubID, err := repository.NewClubRepository().GetClubIDByMember(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "club1", clubID)

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddMember(ctx, "user2")
	})
	require.True(t, errorx.Is(err, errorx.AlreadyExists))

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddMember(ctx, "user1")
	})
	require.True(t, errorx.Is(err, errorx.AlreadyExists))

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.RemoveMember("owner", "owner")
	})
	require.True(t, errorx.Is(err, errorx.InvalidState))

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		if err := c.SetRole("user1", entity.ClubModerator); err != nil {
			return err
		}
		return c.RemoveMember("owner", "user1")
	})
	require.NoError(t, err)

	clubID, err = repository.NewClubRepository().GetClubIDByMember(ctx, "user1")
	require.NoError(t, err)
	require.Empty(t, clubID)

	logs, err := repository.NewClubLogRepository().GetList(ctx, "club1", 0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, entity.ClubActionMemberRemove, logs[0].Type)
	require.Equal(t, entity.ClubActionMemberAdd, logs[1].Type)
}

func Test_Club_MemberJoinedElsewhere(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	testutil.InsertClub(ctx, "club2", "Dogs", 0, testNow, "owner2")
	f := newTestFactory(t)

	// club1 accepts user1 while club2 is saving the same user.
	stale, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.NoError(t, stale.AddMember(ctx, "user1"))

	_, err = f.MutateClub(ctx, "club2", func(c *Club) error {
		return c.AddMember(ctx, "user1")
	})
	require.NoError(t, err)

	err = stale.Update(ctx)
	require.True(t, errorx.Is(err, errorx.AlreadyExists), "got %v", err)

	clubID, err := repository.NewClubRepository().GetClubIDByMember(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "club2", clubID)

	c, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.False(t, c.IsMember("user1"))
	require.True(t, c.IsMember("owner"))

	count, err := repository.NewClubLogRepository().Count(ctx, "club1")
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_Club_Capacity(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	members := []string{"owner"}
	for i := 1; i < baseClubCapacity; i++ {
		members = append(members, string(rune('a'+i)))
	}
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, members...)
	f := newTestFactory(t)

	_, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddMember(ctx, "late")
	})
	require.True(t, errorx.Is(err, errorx.InvalidState))
}

func Test_Club_PointAndFund(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	f := newTestFactory(t)

	c, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		if err := c.AddPoint("owner", 120); err != nil {
			return err
		}
		return c.AddFund("user1", 50)
	})
	require.NoError(t, err)
	require.Equal(t, 2, c.Level())
	require.Equal(t, "Lv. 2", c.LevelString())
	require.Equal(t, int64(50), c.Fund())

	next, ok := c.NextLevel()
	require.True(t, ok)
	require.Equal(t, int64(300), next)

	err = c.TakeFund("owner", 100, "party")
	require.True(t, errorx.Is(err, errorx.InsufficientFunds))
	require.Equal(t, int64(50), c.Fund())
	require.True(t, errorx.Is(c.AddFund("user1", 0), errorx.Validation))

	logs, err := repository.NewClubLogRepository().GetList(ctx, "club1", 0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	types := []entity.ClubActionType{logs[0].Type, logs[1].Type, logs[2].Type}
	require.ElementsMatch(t, []entity.ClubActionType{
		entity.ClubActionPointAdd, entity.ClubActionLevelUp, entity.ClubActionFundAdd,
	}, types)

	msg := c.GetFundEmbed()
	require.NotEmpty(t, msg.Embeds)

	logMsg, err := c.GetLogEmbed(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, logMsg.Embeds)
}

func Test_Club_PointAndFundOverflow(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", math.MaxInt64, testNow, "owner")
	f := newTestFactory(t)

	_, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddPoint("owner", 1)
	})
	require.True(t, errorx.Is(err, errorx.Validation), "got %v", err)

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddFund("user1", math.MaxInt64)
	})
	require.NoError(t, err)

	_, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.AddFund("user2", 1)
	})
	require.True(t, errorx.Is(err, errorx.Validation), "got %v", err)

	c, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), c.Point())
	require.Equal(t, int64(math.MaxInt64), c.Fund())
}

func Test_Club_Premium(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	f := newTestFactory(t)

	c, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		if err := c.SetRoom("room1"); err != nil {
			return err
		}
		return c.SetRoomProtect("owner")
	})
	require.True(t, errorx.Is(err, errorx.InvalidState))
	require.Nil(t, c)

	c, err = f.MutateClub(ctx, "club1", func(c *Club) error {
		if err := c.SetRoom("room1"); err != nil {
			return err
		}
		if err := c.ActivatePremium("owner", 24*time.Hour); err != nil {
			return err
		}
		return c.SetRoomProtect("owner")
	})
	require.NoError(t, err)
	require.True(t, c.Premium())
	require.False(t, c.PremiumExpired())
	require.Equal(t, 1*2+10, c.DonatorBonus())

	later := newTestFactory(t,
		WithClock(func() time.Time { return testNow.Add(25 * time.Hour) }),
		WithNodeID(2),
	)
	c, err = later.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.True(t, c.PremiumExpired())

	require.NoError(t, c.DeactivatePremium())
	require.NoError(t, c.Update(ctx))

	c, err = f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.False(t, c.Premium())
	require.True(t, errorx.Is(c.RemoveRoomProtect("owner"), errorx.InvalidState))
	require.True(t, errorx.Is(c.DeactivatePremium(), errorx.InvalidState))
}

func Test_Club_Projection(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 10, testNow, "owner")
	f := newTestFactory(t)

	c, err := f.CreateClub(ctx, "club1", repository.ClubFund, repository.ClubDonations)
	require.NoError(t, err)
	require.NoError(t, c.AddFund("", 30))
	require.True(t, errorx.Is(c.AddPoint("", 1), errorx.InvalidState))
	require.NoError(t, c.Update(ctx))

	c, err = f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, int64(30), c.Fund())
	require.Equal(t, int64(10), c.Point())
	require.Equal(t, "Cats", c.ClubName())
	require.True(t, c.IsMember("owner"))

	unloaded := &Club{f: f, id: "club1"}
	require.True(t, errorx.Is(unloaded.AddFund("", 1), errorx.InvalidState))
	require.Panics(t, func() { unloaded.ClubName() })
}

func Test_ClubQuest_UpProcess(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	publisher := testutil.NewRecordPublisher()
	f := newTestFactory(t, WithPublisher(publisher))

	c, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.RefreshDailyQuest(ctx)
	})
	require.NoError(t, err)
	require.Len(t, c.Quests(), 3)
	require.True(t, c.RefreshedToday())

	var questID string
	for _, q := range c.Quests() {
		if q.QuestID == testutil.QuestClubMessage.ID {
			questID = q.ID
		}
	}
	require.NotEmpty(t, questID)

	q, err := c.Quest(questID)
	require.NoError(t, err)

	_, target := q.Progress()
	require.Equal(t, testutil.QuestClubMessage.MinTarget, target)

	finished, err := q.UpProcess(ctx, target+50)
	require.NoError(t, err)
	require.True(t, finished)

	progress, _ := q.Progress()
	require.Equal(t, target, progress)

	for i := 0; i < 3; i++ {
		finished, err = q.Finish(ctx)
		require.NoError(t, err)
		require.False(t, finished)
	}

	c, err = f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, int64(40), c.Point())
	require.Equal(t, int64(100), c.Fund())
	require.Len(t, publisher.Packs(TopicQuestFinished), 1)
}

func Test_ClubQuest_UpdateStaleCopy(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	f := newTestFactory(t)

	c, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.RefreshDailyQuest(ctx)
	})
	require.NoError(t, err)

	var questID string
	for _, q := range c.Quests() {
		if q.QuestID == testutil.QuestClubDonate.ID {
			questID = q.ID
		}
	}
	require.NotEmpty(t, questID)

	q, err := c.Quest(questID)
	require.NoError(t, err)

	_, err = f.ProgressClubQuests(ctx, "club1", entity.QuestDonate, 200)
	require.NoError(t, err)

	require.NoError(t, q.Update(ctx))
	progress, _ := q.Progress()
	require.Equal(t, int64(200), progress)

	c, err = f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	stored, err := c.Quest(questID)
	require.NoError(t, err)
	progress, _ = stored.Progress()
	require.Equal(t, int64(200), progress)
	require.Zero(t, c.Point())
}

func Test_Factory_ProgressClubQuests(t *testing.T) {
	ctx := testutil.MockContextWithFixtures()
	testutil.InsertClub(ctx, "club1", "Cats", 0, testNow, "owner")
	f := newTestFactory(t)

	_, err := f.MutateClub(ctx, "club1", func(c *Club) error {
		return c.RefreshDailyQuest(ctx)
	})
	require.NoError(t, err)

	_, err = f.ProgressClubQuests(ctx, "club1", entity.QuestDonate, 499)
	require.NoError(t, err)

	c, err := f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Zero(t, c.Point())

	_, err = f.ProgressClubQuests(ctx, "club1", entity.QuestDonate, 1)
	require.NoError(t, err)

	c, err = f.CreateClub(ctx, "club1")
	require.NoError(t, err)
	require.Equal(t, int64(60), c.Point())
}

func Test_ClubLog_String(t *testing.T) {
	l := NewClubLog(entity.ClubLog{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 1, CreatedAt: testNow},
		ClubID:        "club1",
		UserID:        "user1",
		Type:          entity.ClubActionFundAdd,
		Amount:        1500,
	})

	require.Equal(t, testNow, l.Time())
	require.Contains(t, l.String(), "2023-05-10 12:00")
	require.Contains(t, l.Fund(), "1,500")

	system := NewClubLog(entity.ClubLog{Type: entity.ClubActionPremiumOff})
	require.Equal(t, "System", system.User())
}
