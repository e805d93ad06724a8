package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Messenger posts and removes channel messages. It is the only part of the
// chat platform the economy talks to directly, everything else goes through
// the command router.
type Messenger interface {
	SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) (string, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

type sessionMessenger struct {
	session *discordgo.Session
}

func NewMessenger(botToken string) (*sessionMessenger, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &sessionMessenger{session: session}, nil
}

func (m *sessionMessenger) SendMessage(
	ctx context.Context, channelID string, msg *discordgo.MessageSend,
) (string, error) {
	sent, err := m.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	return sent.ID, nil
}

func (m *sessionMessenger) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return m.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}
