package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "clubbot"
	s.app.Usage = "Economy, club and relation backend of the bot"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path of the TOML config file, defaults are used if empty",
			EnvVars: []string{"CLUBBOT_CONFIG"},
		},
		&cli.Int64Flag{
			Name:  "node",
			Value: 1,
			Usage: "Snowflake node of this process, must be unique among running processes",
		},
	}
	s.app.Before = s.loadConfig
	s.app.After = s.close
	s.app.Commands = []*cli.Command{
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the database",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Value: "auto",
					Usage: "Version of the migrator to run",
				},
				&cli.StringFlag{
					Name:  "catalog",
					Usage: "Path of a TOML catalog file whose items, quests and shops are seeded",
				},
			},
			Description: `Brings the tables to the current schema, then seeds the catalog if one is given.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Category:    "Worker",
			Description: `Refreshes the daily club quests and turns off expired premiums until interrupted.`,
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:  "premium-interval",
					Usage: "Interval between two checks of expired premiums",
				},
			},
		},
		{
			Action:   s.startLeaderboard,
			Name:     "leaderboard",
			Usage:    "Render a leaderboard page",
			Category: "Tool",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "category",
					Value: "balance",
					Usage: "Category of the user leaderboard: balance, gem or relation",
				},
				&cli.StringFlag{
					Name:  "club",
					Usage: "Category of the club leaderboard: point, fund or level, overrides --category",
				},
				&cli.IntFlag{
					Name:  "page",
					Usage: "Zero-based page to render",
				},
				&cli.StringFlag{
					Name:  "channel",
					Usage: "Post the page to this channel instead of printing it",
				},
			},
		},
		{
			Name:     "sticky",
			Usage:    "Manage the sticky message of a channel",
			Category: "Tool",
			Subcommands: []*cli.Command{
				{
					Action: s.setSticky,
					Name:   "set",
					Usage:  "Create or edit the sticky message and post it",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "channel", Required: true},
						&cli.StringFlag{Name: "content"},
						&cli.StringFlag{Name: "title"},
						&cli.StringFlag{Name: "description"},
						&cli.IntFlag{Name: "color"},
						&cli.StringSliceFlag{
							Name:  "button",
							Usage: "Button as label|https://link, repeatable",
						},
					},
				},
				{
					Action: s.sendSticky,
					Name:   "send",
					Usage:  "Post the sticky message again at the bottom of the channel",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "channel", Required: true},
					},
				},
				{
					Action: s.deleteSticky,
					Name:   "delete",
					Usage:  "Remove the sticky message of the channel",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "channel", Required: true},
					},
				},
			},
		},
	}
}
