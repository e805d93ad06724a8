package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/questx-lab/clubbot/config"
	"github.com/questx-lab/clubbot/internal/domain"
	"github.com/questx-lab/clubbot/internal/presenter"
	"github.com/questx-lab/clubbot/migration"
	"github.com/questx-lab/clubbot/pkg/discord"
	"github.com/questx-lab/clubbot/pkg/kafka"
	"github.com/questx-lab/clubbot/pkg/locker"
	"github.com/questx-lab/clubbot/pkg/logger"
	"github.com/questx-lab/clubbot/pkg/pubsub"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"github.com/questx-lab/clubbot/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	nodeID int64

	redisClient xredis.Client
	publisher   pubsub.Publisher
	messenger   discord.Messenger

	factory *domain.Factory

	closers []func() error
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	s.nodeID = cctx.Int64("node")
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	return nil
}

func (s *srv) close(*cli.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	s.closers = nil
	return errors.Join(errs...)
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Database
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	case "postgres":
		dialector = postgres.Open(cfg.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	s.closers = append(s.closers, sqlDB.Close)
	return db, nil
}

func (s *srv) loadDatabase() error {
	db, err := s.newDatabase()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

func (s *srv) migrateDB() error {
	return migration.AutoMigrate(s.ctx)
}

func (s *srv) loadRedisClient() error {
	cfg := xcontext.Configs(s.ctx).Redis
	if !cfg.Enable {
		return nil
	}

	client, err := xredis.NewClient(s.ctx, cfg.Addr)
	if err != nil {
		return err
	}

	s.redisClient = client
	s.closers = append(s.closers, client.Close)
	return nil
}

func (s *srv) loadPublisher() error {
	cfg := xcontext.Configs(s.ctx).Kafka
	if !cfg.Enable {
		s.publisher = pubsub.NewNoopPublisher()
		return nil
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, cfg.Addrs)
	if err != nil {
		return err
	}

	s.publisher = publisher
	s.closers = append(s.closers, func() error { return publisher.Stop(s.ctx) })
	return nil
}

func (s *srv) loadMessenger() error {
	token := xcontext.Configs(s.ctx).Discord.BotToken
	if token == "" {
		return errors.New("discord.bot_token is not set")
	}

	messenger, err := discord.NewMessenger(token)
	if err != nil {
		return err
	}

	s.messenger = messenger
	return nil
}

func (s *srv) loadFactory() error {
	cfg := xcontext.Configs(s.ctx).Economy
	opts := []domain.Option{
		domain.WithPublisher(s.publisher),
		domain.WithNodeID(s.nodeID),
	}

	if s.redisClient != nil {
		opts = append(opts, domain.WithRedisClient(s.redisClient))
	}

	switch cfg.LockBackend {
	case "", "local":
	case "redis":
		if s.redisClient == nil {
			return errors.New("redis lock backend needs redis.enable")
		}

		opts = append(opts, domain.WithLocker(locker.NewRedis(s.redisClient, cfg.LockTTL.Duration)))
	default:
		return fmt.Errorf("unsupported lock backend %q", cfg.LockBackend)
	}

	factory, err := domain.NewFactory(domain.NewRepositories(), presenter.NewDiscordRenderer(), opts...)
	if err != nil {
		return err
	}

	s.factory = factory
	return nil
}

// loadEconomy prepares everything the domain needs: the database, the cache,
// the event publisher and the factory.
func (s *srv) loadEconomy() error {
	loaders := []func() error{
		s.loadDatabase,
		s.migrateDB,
		s.loadRedisClient,
		s.loadPublisher,
		s.loadFactory,
	}

	for _, load := range loaders {
		if err := load(); err != nil {
			return err
		}
	}

	return nil
}
