package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/questx-lab/clubbot/internal/domain/cron"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cctx *cli.Context) error {
	if err := s.loadEconomy(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	clubRepo := repository.NewClubRepository()
	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewDailyClubQuestJob(s.factory, clubRepo))
	cronJobManager.Register(cron.NewPremiumExpiryJob(s.factory, clubRepo, cctx.Duration("premium-interval")))
	cronJobManager.Start(ctx)

	return nil
}
