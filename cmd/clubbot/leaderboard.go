package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/domain"
	"github.com/questx-lab/clubbot/pkg/enum"
	"github.com/urfave/cli/v2"
)

type board interface {
	Sort()
	GetEmbed(ctx context.Context, page int) (*discordgo.MessageSend, error)
}

func (s *srv) startLeaderboard(cctx *cli.Context) error {
	if err := s.loadEconomy(); err != nil {
		return err
	}

	lb, err := s.newBoard(cctx)
	if err != nil {
		return err
	}

	lb.Sort()
	msg, err := lb.GetEmbed(s.ctx, cctx.Int("page"))
	if err != nil {
		return err
	}

	channelID := cctx.String("channel")
	if channelID == "" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(msg)
	}

	if err := s.loadMessenger(); err != nil {
		return err
	}

	_, err = s.messenger.SendMessage(s.ctx, channelID, msg)
	return err
}

func (s *srv) newBoard(cctx *cli.Context) (board, error) {
	if name := cctx.String("club"); name != "" {
		category, err := enum.ToEnum[domain.ClubLeaderboardCategory](name)
		if err != nil {
			return nil, err
		}

		lb, err := s.factory.CreateClubLeaderboard(s.ctx, category, "")
		if err != nil {
			return nil, err
		}

		return lb, nil
	}

	category, err := enum.ToEnum[domain.LeaderboardCategory](cctx.String("category"))
	if err != nil {
		return nil, err
	}

	lb, err := s.factory.CreateLeaderboard(s.ctx, category, nil)
	if err != nil {
		return nil, err
	}

	return lb, nil
}
