package cron

import (
	"context"
	"time"

	"github.com/questx-lab/clubbot/internal/domain"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

// PremiumExpiryJob turns off the premium of clubs whose premium has run out.
type PremiumExpiryJob struct {
	factory  *domain.Factory
	clubRepo repository.ClubRepository
	interval time.Duration
}

func NewPremiumExpiryJob(
	factory *domain.Factory,
	clubRepo repository.ClubRepository,
	interval time.Duration,
) *PremiumExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &PremiumExpiryJob{factory: factory, clubRepo: clubRepo, interval: interval}
}

func (job *PremiumExpiryJob) Do(ctx context.Context) {
	clubs, err := job.clubRepo.GetExpiredPremium(ctx, job.factory.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get expired premium clubs: %v", err)
		return
	}

	for _, c := range clubs {
		_, err := job.factory.MutateClub(ctx, c.ID, func(club *domain.Club) error {
			// The premium may have been extended since the list was read.
			if !club.PremiumExpired() {
				return nil
			}

			return club.DeactivatePremium()
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot deactivate premium of club %s: %v", c.ID, err)
			continue
		}

		xcontext.Logger(ctx).Infof("Premium of club %s expired", c.ID)
	}
}

func (job *PremiumExpiryJob) RunNow() bool {
	return true
}

func (job *PremiumExpiryJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
