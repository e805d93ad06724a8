package main

import (
	"fmt"
	"strings"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) loadSticky() error {
	if err := s.loadEconomy(); err != nil {
		return err
	}

	return s.loadMessenger()
}

func (s *srv) setSticky(cctx *cli.Context) error {
	if err := s.loadSticky(); err != nil {
		return err
	}

	buttons, err := parseButtons(cctx.StringSlice("button"))
	if err != nil {
		return err
	}

	channelID := cctx.String("channel")
	sticky, err := s.factory.GetSticky(s.ctx, channelID)
	switch {
	case errorx.Is(err, errorx.NotFound):
		sticky, err = s.factory.CreateSticky(s.ctx, entity.Sticky{
			ChannelID:   channelID,
			Content:     cctx.String("content"),
			Title:       cctx.String("title"),
			Description: cctx.String("description"),
			Color:       cctx.Int("color"),
			Buttons:     buttons,
		})
		if err != nil {
			return err
		}

	case err != nil:
		return err

	default:
		err := sticky.Edit(
			cctx.String("content"),
			cctx.String("title"),
			cctx.String("description"),
			cctx.Int("color"),
			buttons,
		)
		if err != nil {
			return err
		}

		if err := sticky.Update(s.ctx); err != nil {
			return err
		}
	}

	return sticky.Send(s.ctx, s.messenger)
}

func (s *srv) sendSticky(cctx *cli.Context) error {
	if err := s.loadSticky(); err != nil {
		return err
	}

	sticky, err := s.factory.GetSticky(s.ctx, cctx.String("channel"))
	if err != nil {
		return err
	}

	return sticky.Send(s.ctx, s.messenger)
}

func (s *srv) deleteSticky(cctx *cli.Context) error {
	if err := s.loadSticky(); err != nil {
		return err
	}

	channelID := cctx.String("channel")
	sticky, err := s.factory.GetSticky(s.ctx, channelID)
	if err != nil {
		return err
	}

	if err := s.factory.DeleteSticky(s.ctx, channelID); err != nil {
		return err
	}

	if last := sticky.Data().LastMessageID; last != "" {
		if err := s.messenger.DeleteMessage(s.ctx, channelID, last); err != nil {
			xcontext.Logger(s.ctx).Warnf("Cannot delete the last sticky message %s: %v", last, err)
		}
	}

	return nil
}

// parseButtons reads buttons written as label|url.
func parseButtons(values []string) ([]entity.StickyButton, error) {
	var buttons []entity.StickyButton
	for _, v := range values {
		label, url, ok := strings.Cut(v, "|")
		if !ok {
			return nil, fmt.Errorf("invalid button %q, expected label|url", v)
		}

		buttons = append(buttons, entity.StickyButton{
			Label: strings.TrimSpace(label),
			URL:   strings.TrimSpace(url),
		})
	}

	return buttons, nil
}
