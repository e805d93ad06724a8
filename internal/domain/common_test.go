package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/presenter"
	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday, far from day and week boundaries.
var testNow = time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestFactory(t *testing.T, opts ...Option) *Factory {
	opts = append([]Option{
		WithRandSource(rand.NewSource(1)),
		WithClock(func() time.Time { return testNow }),
	}, opts...)

	f, err := NewFactory(NewRepositories(), presenter.NewDiscordRenderer(), opts...)
	require.NoError(t, err)
	return f
}

func findUserQuest(t *testing.T, u *UserData, category entity.QuestCategory, questID string) *UserQuest {
	for _, q := range u.Quests(category) {
		if q.QuestID == questID {
			quest, err := u.Quest(q.ID)
			require.NoError(t, err)
			return quest
		}
	}

	require.FailNow(t, "quest not found", questID)
	return nil
}
