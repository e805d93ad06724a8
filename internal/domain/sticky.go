package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/pkg/discord"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"github.com/questx-lab/clubbot/pkg/xredis"
)

const (
	stickyCacheTTL   = time.Hour
	maxStickyButtons = 5
)

// Sticky is a message kept at the bottom of a channel: every Send removes the
// previous post and posts it again.
type Sticky struct {
	f    *Factory
	data *entity.Sticky
}

// GetSticky reads the sticky of a channel, through the cache if there is one.
func (f *Factory) GetSticky(ctx context.Context, channelID string) (*Sticky, error) {
	if f.redisClient != nil {
		var cached entity.Sticky
		err := f.redisClient.GetObj(ctx, common.RedisKeySticky(channelID), &cached)
		if err == nil {
			return &Sticky{f: f, data: &cached}, nil
		}

		if !errors.Is(err, xredis.ErrNil) {
			xcontext.Logger(ctx).Warnf("Cannot get sticky %s from cache: %v", channelID, err)
		}
	}

	data, err := f.repos.Sticky.Get(ctx, channelID)
	if err != nil {
		return nil, storeError(ctx, err, "Not found sticky message in this channel")
	}

	if f.redisClient != nil {
		err := f.redisClient.SetObj(ctx, common.RedisKeySticky(channelID), data, stickyCacheTTL)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache sticky %s: %v", channelID, err)
		}
	}

	return &Sticky{f: f, data: data}, nil
}

func (f *Factory) CreateSticky(ctx context.Context, data entity.Sticky) (*Sticky, error) {
	if data.ChannelID == "" {
		return nil, errorx.New(errorx.Validation, "Channel must not be empty")
	}

	if err := validateSticky(&data); err != nil {
		return nil, err
	}

	data.LastMessageID = ""
	if _, err := f.repos.Sticky.Get(ctx, data.ChannelID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This channel already has a sticky message")
	} else if err = storeError(ctx, err, "Not found sticky"); !errorx.Is(err, errorx.NotFound) {
		return nil, err
	}

	if err := f.repos.Sticky.Create(ctx, &data); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create sticky %s: %v", data.ChannelID, err)
		return nil, fmt.Errorf("cannot create sticky %s: %w", data.ChannelID, err)
	}

	f.invalidateSticky(ctx, data.ChannelID)
	return &Sticky{f: f, data: &data}, nil
}

func (f *Factory) DeleteSticky(ctx context.Context, channelID string) error {
	deleted, err := f.repos.Sticky.Delete(ctx, channelID)
	if err != nil {
		return storeError(ctx, err, "Cannot delete sticky %s", channelID)
	}

	if deleted == 0 {
		return errorx.New(errorx.NotFound, "Not found sticky message in this channel")
	}

	f.invalidateSticky(ctx, channelID)
	return nil
}

func (f *Factory) invalidateSticky(ctx context.Context, channelID string) {
	if f.redisClient == nil {
		return
	}

	if err := f.redisClient.Del(ctx, common.RedisKeySticky(channelID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate sticky %s: %v", channelID, err)
	}
}

func validateSticky(data *entity.Sticky) error {
	if data.Content == "" && data.Title == "" && data.Description == "" {
		return errorx.New(errorx.Validation, "A sticky message needs a content, a title or a description")
	}

	if len(data.Buttons) > maxStickyButtons {
		return errorx.New(errorx.Validation, "A sticky message has at most %d buttons", maxStickyButtons)
	}

	for _, b := range data.Buttons {
		if b.Label == "" || (b.URL == "") == (b.CustomID == "") {
			return errorx.New(errorx.Validation, "A button needs a label and either a link or an action")
		}
	}

	return nil
}

func (s *Sticky) ChannelID() string {
	return s.data.ChannelID
}

func (s *Sticky) Data() entity.Sticky {
	return *s.data
}

// Edit changes the message, Update or Send stores it.
func (s *Sticky) Edit(content, title, description string, color int, buttons []entity.StickyButton) error {
	edited := *s.data
	edited.Content = content
	edited.Title = title
	edited.Description = description
	edited.Color = color
	edited.Buttons = buttons
	if err := validateSticky(&edited); err != nil {
		return err
	}

	*s.data = edited
	return nil
}

// Update stores the edited message. The id of the last post stays the one in
// the store, only Send moves it.
func (s *Sticky) Update(ctx context.Context) error {
	unlock, err := s.f.lock(ctx, common.LockKeySticky(s.data.ChannelID))
	if err != nil {
		return err
	}
	defer unlock()

	stored, err := s.f.repos.Sticky.Get(ctx, s.data.ChannelID)
	if err != nil {
		return storeError(ctx, err, "Not found sticky message in this channel")
	}
	s.data.LastMessageID = stored.LastMessageID

	return s.save(ctx)
}

func (s *Sticky) save(ctx context.Context) error {
	if err := s.f.repos.Sticky.Save(ctx, s.data); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save sticky %s: %v", s.data.ChannelID, err)
		return fmt.Errorf("cannot save sticky %s: %w", s.data.ChannelID, err)
	}

	s.f.invalidateSticky(ctx, s.data.ChannelID)
	return nil
}

func (s *Sticky) Message() *discordgo.MessageSend {
	view := model.Sticky{
		ChannelID:   s.data.ChannelID,
		Content:     s.data.Content,
		Title:       s.data.Title,
		Description: s.data.Description,
		Color:       s.data.Color,
	}

	for _, b := range s.data.Buttons {
		view.Buttons = append(view.Buttons, model.Button{Label: b.Label, URL: b.URL, CustomID: b.CustomID})
	}

	return s.f.renderer.Sticky(view)
}

// Send removes the previous post of the sticky, posts it again and stores the
// id of the new post.
func (s *Sticky) Send(ctx context.Context, messenger discord.Messenger) error {
	unlock, err := s.f.lock(ctx, common.LockKeySticky(s.data.ChannelID))
	if err != nil {
		return err
	}
	defer unlock()

	// The cached copy may hold an old message id.
	stored, err := s.f.repos.Sticky.Get(ctx, s.data.ChannelID)
	if err != nil {
		return storeError(ctx, err, "Not found sticky message in this channel")
	}
	s.data.LastMessageID = stored.LastMessageID

	if s.data.LastMessageID != "" {
		err := messenger.DeleteMessage(ctx, s.data.ChannelID, s.data.LastMessageID)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot delete previous sticky message %s: %v", s.data.LastMessageID, err)
		}
	}

	messageID, err := messenger.SendMessage(ctx, s.data.ChannelID, s.Message())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send sticky message to %s: %v", s.data.ChannelID, err)
		return errorx.New(errorx.Unavailable, "Cannot send the sticky message")
	}

	s.data.LastMessageID = messageID
	return s.save(ctx)
}
