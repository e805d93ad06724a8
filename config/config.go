package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Log      LogConfigs      `toml:"log"`
	Database DatabaseConfigs `toml:"database"`
	Redis    RedisConfigs    `toml:"redis"`
	Kafka    KafkaConfigs    `toml:"kafka"`
	Discord  DiscordConfigs  `toml:"discord"`
	Economy  EconomyConfigs  `toml:"economy"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}

type DatabaseConfigs struct {
	// Driver is one of mysql, postgres or sqlite.
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`

	// Path is only used by the sqlite driver.
	Path string `toml:"path"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)
	case "sqlite":
		return d.Path
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Enable bool   `toml:"enable"`
	Addr   string `toml:"addr"`
}

type KafkaConfigs struct {
	Enable   bool     `toml:"enable"`
	ClientID string   `toml:"client_id"`
	Addrs    []string `toml:"addrs"`
}

type DiscordConfigs struct {
	BotToken string `toml:"bot_token"`
}

type EconomyConfigs struct {
	StartingBalance int64 `toml:"starting_balance"`

	DailyQuests     int   `toml:"daily_quests"`
	WeeklyQuests    int   `toml:"weekly_quests"`
	ClubDailyQuests int   `toml:"club_daily_quests"`
	RerollFee       int64 `toml:"reroll_fee"`

	PageSize int `toml:"page_size"`

	// LockBackend is either local or redis. The redis backend serializes
	// mutations of the same entity across several bot processes.
	LockBackend string   `toml:"lock_backend"`
	LockTTL     Duration `toml:"lock_ttl"`
}

// Duration lets durations be written as strings ("5s") in the config file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{Level: "info"},
		Database: DatabaseConfigs{
			Driver: "sqlite",
			Path:   "clubbot.db",
		},
		Redis: RedisConfigs{Addr: "localhost:6379"},
		Kafka: KafkaConfigs{ClientID: "clubbot"},
		Economy: EconomyConfigs{
			StartingBalance: 100,
			DailyQuests:     3,
			WeeklyQuests:    2,
			ClubDailyQuests: 3,
			RerollFee:       20,
			PageSize:        10,
			LockBackend:     "local",
			LockTTL:         Duration{10 * time.Second},
		},
	}
}

// Load reads the TOML file at path on top of the default configs.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	if cfg.Economy.PageSize <= 0 {
		return Configs{}, fmt.Errorf("economy.page_size must be positive, got %d", cfg.Economy.PageSize)
	}

	return cfg, nil
}
