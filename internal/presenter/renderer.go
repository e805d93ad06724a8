package presenter

import (
	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/model"
)

// Renderer builds chat payloads from view models. Implementations must be
// pure, the same view always gives the same payload.
type Renderer interface {
	Inventory(model.Inventory) *discordgo.MessageSend
	Profile(model.Profile) *discordgo.MessageSend
	QuestList(model.QuestList) *discordgo.MessageSend
	RelationList(model.RelationList) *discordgo.MessageSend
	GiftList(model.GiftList) *discordgo.MessageSend

	Club(model.Club) *discordgo.MessageSend
	ClubPremium(model.ClubPremium) *discordgo.MessageSend
	ClubMemberList(model.ClubMemberList) *discordgo.MessageSend
	ClubRoom(model.ClubRoom) *discordgo.MessageSend
	ClubRoomProtect(model.ClubRoom) *discordgo.MessageSend
	ClubFund(model.ClubFund) *discordgo.MessageSend
	ClubLogList(model.ClubLogList) *discordgo.MessageSend

	Leaderboard(model.Leaderboard) *discordgo.MessageSend
	Shop(model.Shop) *discordgo.MessageSend
	Item(model.Item) *discordgo.MessageSend
	Relation(model.Relation) *discordgo.MessageSend
	Ring(model.Ring) *discordgo.MessageSend
	Sticky(model.Sticky) *discordgo.MessageSend
}
