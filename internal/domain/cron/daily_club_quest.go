package cron

import (
	"context"
	"time"

	"github.com/questx-lab/clubbot/internal/domain"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/dateutil"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

// DailyClubQuestJob gives every club new daily quests at the start of the day.
type DailyClubQuestJob struct {
	factory  *domain.Factory
	clubRepo repository.ClubRepository
}

func NewDailyClubQuestJob(factory *domain.Factory, clubRepo repository.ClubRepository) *DailyClubQuestJob {
	return &DailyClubQuestJob{factory: factory, clubRepo: clubRepo}
}

func (job *DailyClubQuestJob) Do(ctx context.Context) {
	clubs, err := job.clubRepo.GetList(ctx, repository.ClubDailyAt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get all clubs: %v", err)
		return
	}

	now := job.factory.Now()
	for _, c := range clubs {
		if c.DailyRefreshedAt.Valid && dateutil.SameDay(c.DailyRefreshedAt.Time, now) {
			continue
		}

		_, err := job.factory.MutateClub(ctx, c.ID, func(club *domain.Club) error {
			// Another process may have refreshed it since the list was read.
			if club.RefreshedToday() {
				return nil
			}

			return club.RefreshDailyQuest(ctx)
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot refresh daily quests of club %s: %v", c.ID, err)
			continue
		}
	}
}

func (job *DailyClubQuestJob) RunNow() bool {
	return true
}

func (job *DailyClubQuestJob) Next() time.Time {
	return dateutil.NextDay(time.Now())
}
