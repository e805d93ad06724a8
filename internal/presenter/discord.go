package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/model"
)

const (
	colorDefault = 0x5865f2
	colorClub    = 0x2ecc71
	colorPremium = 0xf1c40f
	colorRank    = 0xe67e22
	colorLove    = 0xe91e63
)

type discordRenderer struct{}

func NewDiscordRenderer() *discordRenderer {
	return &discordRenderer{}
}

func (r *discordRenderer) Inventory(v model.Inventory) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: "Inventory",
		Color: colorDefault,
	}

	if len(v.Entries) == 0 {
		embed.Description = "Your inventory is empty."
	}

	for _, e := range v.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   strings.TrimSpace(e.Emoji + " " + e.Name),
			Value:  fmt.Sprintf("x%s", e.Amount),
			Inline: true,
		})
	}

	embed.Footer = pageFooter(v.Pager)
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: pagerRows(v.Pager),
	}
}

func (r *discordRenderer) Profile(v model.Profile) *discordgo.MessageSend {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: v.Balance, Inline: true},
		{Name: "Gems", Value: v.Gems, Inline: true},
		{Name: "Relations", Value: strconv.Itoa(v.Relations), Inline: true},
		{Name: "Friends", Value: strconv.Itoa(v.Friends), Inline: true},
	}

	if v.ClubName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Club", Value: v.ClubName, Inline: true})
	}

	if len(v.Appellations) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Appellations",
			Value: strings.Join(v.Appellations, ", "),
		})
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Profile",
			Description: mention(v.UserID),
			Color:       colorDefault,
			Fields:      fields,
		}},
	}
}

func (r *discordRenderer) QuestList(v model.QuestList) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s quests", capitalize(v.Category)),
		Color: colorDefault,
	}

	if len(v.Quests) == 0 {
		embed.Description = "No quest available."
	}

	for _, q := range v.Quests {
		status := fmt.Sprintf("%d/%d", q.Progress, q.Target)
		if q.Finished {
			status = "done"
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  q.Label,
			Value: fmt.Sprintf("%s | reward: %s", status, q.Reward),
		})
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if v.RerollFee != "" {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("Reroll (%s gems)", v.RerollFee),
					Style:    discordgo.SecondaryButton,
					CustomID: ActionID(v.Scope, "reroll"),
				},
			}},
		}
	}

	return msg
}

func (r *discordRenderer) RelationList(v model.RelationList) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       "Relations",
		Description: mention(v.UserID),
		Color:       colorLove,
	}

	if len(v.Relations) == 0 {
		embed.Description += "\nNo relation yet."
	}

	var options []discordgo.SelectMenuOption
	for _, rel := range v.Relations {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s with %s", capitalize(rel.Kind), rel.Partner),
			Value: fmt.Sprintf("%s | %s points", rel.Level, rel.Points),
		})

		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("%s with %s", capitalize(rel.Kind), rel.Partner),
			Value: rel.ID,
		})
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if len(options) > 0 {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    ActionID("relation", "view"),
					Placeholder: "Select a relation",
					Options:     options,
				},
			}},
		}
	}

	return msg
}

func (r *discordRenderer) GiftList(v model.GiftList) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       "Received gifts",
		Description: mention(v.UserID),
		Color:       colorLove,
	}

	for _, g := range v.Gifts {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   strings.TrimSpace(g.Emoji + " " + g.Name),
			Value:  "x" + g.Amount,
			Inline: true,
		})
	}

	return &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
}

func (r *discordRenderer) Club(v model.Club) *discordgo.MessageSend {
	color := colorClub
	if v.Premium {
		color = colorPremium
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:     v.Name,
			Color:     color,
			Thumbnail: thumbnail(v.Icon),
			Image:     image(v.Thumbnail),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Owner", Value: mention(v.OwnerID), Inline: true},
				{Name: "Level", Value: v.Level, Inline: true},
				{Name: "Members", Value: strconv.Itoa(v.Members), Inline: true},
				{Name: "Point", Value: fmt.Sprintf("%s/%s", v.Point, v.NextLevel), Inline: true},
				{Name: "Fund", Value: v.Fund, Inline: true},
			},
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Members", Style: discordgo.SecondaryButton, CustomID: ActionID("club", "members", v.ID)},
				discordgo.Button{Label: "Quests", Style: discordgo.SecondaryButton, CustomID: ActionID("club", "quests", v.ID)},
				discordgo.Button{Label: "Fund", Style: discordgo.SecondaryButton, CustomID: ActionID("club", "fund", v.ID)},
				discordgo.Button{Label: "Logs", Style: discordgo.SecondaryButton, CustomID: ActionID("club", "logs", v.ID)},
			}},
		},
	}
}

func (r *discordRenderer) ClubPremium(v model.ClubPremium) *discordgo.MessageSend {
	status := "Inactive"
	if v.Premium {
		status = "Active until " + v.ExpiresAt
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: v.Name + " premium",
			Color: colorPremium,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Status", Value: status},
				{Name: "Donator bonus", Value: fmt.Sprintf("%d%%", v.DonatorBonus)},
			},
		}},
	}
}

func (r *discordRenderer) ClubMemberList(v model.ClubMemberList) *discordgo.MessageSend {
	lines := make([]string, 0, len(v.Members))
	for i, m := range v.Members {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", v.Offset+i+1, mention(m.UserID), m.Role))
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       v.Name + " members",
			Description: strings.Join(lines, "\n"),
			Color:       colorClub,
			Footer:      pageFooter(v.Pager),
		}},
		Components: pagerRows(v.Pager),
	}
}

func (r *discordRenderer) ClubRoom(v model.ClubRoom) *discordgo.MessageSend {
	room := "No room"
	if v.ChannelID != "" {
		room = channel(v.ChannelID)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       v.Name + " room",
			Description: room,
			Color:       colorClub,
		}},
	}
}

func (r *discordRenderer) ClubRoomProtect(v model.ClubRoom) *discordgo.MessageSend {
	status, label, action := "Off", "Protect", "protect"
	if v.Protect {
		status, label, action = "On", "Unprotect", "unprotect"
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       v.Name + " room protection",
			Description: "Protection: " + status,
			Color:       colorClub,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    discordgo.PrimaryButton,
					CustomID: ActionID("club", "room", action, v.ClubID),
					Disabled: !v.Premium || v.ChannelID == "",
				},
			}},
		},
	}
}

func (r *discordRenderer) ClubFund(v model.ClubFund) *discordgo.MessageSend {
	lines := make([]string, 0, len(v.Donators))
	for i, d := range v.Donators {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, mention(d.UserID), d.Amount))
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       v.Name + " fund",
			Description: strings.Join(lines, "\n"),
			Color:       colorClub,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Fund", Value: v.Fund},
			},
		}},
	}
}

func (r *discordRenderer) ClubLogList(v model.ClubLogList) *discordgo.MessageSend {
	description := strings.Join(v.Lines, "\n")
	if description == "" {
		description = "Nothing happened yet."
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       v.Name + " logs",
			Description: description,
			Color:       colorClub,
			Footer:      pageFooter(v.Pager),
		}},
		Components: pagerRows(v.Pager),
	}
}

func (r *discordRenderer) Leaderboard(v model.Leaderboard) *discordgo.MessageSend {
	lines := make([]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		lines = append(lines, fmt.Sprintf("#%d %s: %s", row.Rank, row.Label, row.Value))
	}

	embed := &discordgo.MessageEmbed{
		Title:       v.Title,
		Description: strings.Join(lines, "\n"),
		Color:       colorRank,
		Footer:      pageFooter(v.Pager),
	}

	if v.ViewerRank > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Your rank", Value: fmt.Sprintf("#%d", v.ViewerRank)},
		}
	}

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: pagerRows(v.Pager),
	}
}

func (r *discordRenderer) Shop(v model.Shop) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       v.Name,
		Description: v.Description,
		Color:       colorDefault,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: v.Balance, Inline: true},
			{Name: "Gems", Value: v.Gems, Inline: true},
		},
		Footer: pageFooter(v.Pager),
	}

	if v.PageTitle != "" {
		embed.Title = v.Name + " | " + v.PageTitle
	}

	options := make([]discordgo.SelectMenuOption, 0, len(v.Entries))
	for _, e := range v.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  strings.TrimSpace(e.Emoji + " " + e.Name),
			Value: e.Price,
		})

		options = append(options, discordgo.SelectMenuOption{
			Label:       e.Name,
			Value:       e.ItemID,
			Description: e.Price,
		})
	}

	components := pagerRows(v.Pager)
	if len(options) > 0 {
		components = append([]discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    ActionID("shop", "item", v.ShopID, strconv.Itoa(v.Pager.Index)),
					Placeholder: "Select an item",
					Options:     options,
				},
			}},
		}, components...)
	}

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

func (r *discordRenderer) Item(v model.Item) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       strings.TrimSpace(v.Emoji + " " + v.Name),
		Description: v.Description,
		Color:       colorDefault,
	}

	if v.Amount != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Owned", Value: v.Amount, Inline: true})
	}

	if v.Cost != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Cost", Value: v.Cost, Inline: true})
	}

	var buttons []discordgo.MessageComponent
	if v.Usable {
		buttons = append(buttons, discordgo.Button{
			Label:    "Use",
			Style:    discordgo.SuccessButton,
			CustomID: ActionID("item", "use", v.ID),
		})
	}

	if v.ShopID != "" {
		buttons = append(buttons, discordgo.Button{
			Label:    "Buy",
			Style:    discordgo.PrimaryButton,
			CustomID: ActionID("shop", "buy", v.ShopID, v.ID),
		})
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if len(buttons) > 0 {
		msg.Components = []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	}

	return msg
}

func (r *discordRenderer) Relation(v model.Relation) *discordgo.MessageSend {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Level", Value: fmt.Sprintf("%d. %s", v.Level, v.LevelName), Inline: true},
		{Name: "Points", Value: v.Points, Inline: true},
	}

	if v.NextPoints != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Next level", Value: v.NextPoints, Inline: true})
	}

	fields = append(fields,
		&discordgo.MessageEmbedField{Name: "Gifts of " + v.M1, Value: giftLine(v.M1Gifts)},
		&discordgo.MessageEmbedField{Name: "Gifts of " + v.M2, Value: giftLine(v.M2Gifts)},
	)

	if v.Ring != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Ring", Value: v.Ring})
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       capitalize(v.Kind),
			Description: fmt.Sprintf("%s & %s", mention(v.M1), mention(v.M2)),
			Color:       colorLove,
			Fields:      fields,
		}},
	}
}

func (r *discordRenderer) Ring(v model.Ring) *discordgo.MessageSend {
	title := "No ring"
	if v.Name != "" {
		title = strings.TrimSpace(v.Emoji + " " + v.Name)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       title,
			Description: v.Description,
			Color:       colorLove,
		}},
	}
}

func (r *discordRenderer) Sticky(v model.Sticky) *discordgo.MessageSend {
	msg := &discordgo.MessageSend{Content: v.Content}
	if v.Title != "" || v.Description != "" {
		msg.Embeds = []*discordgo.MessageEmbed{{
			Title:       v.Title,
			Description: v.Description,
			Color:       v.Color,
		}}
	}

	var buttons []discordgo.MessageComponent
	for _, b := range v.Buttons {
		button := discordgo.Button{Label: b.Label, Style: discordgo.PrimaryButton, CustomID: b.CustomID}
		if b.URL != "" {
			button = discordgo.Button{Label: b.Label, Style: discordgo.LinkButton, URL: b.URL}
		}

		buttons = append(buttons, button)
	}

	if len(buttons) > 0 {
		msg.Components = []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	}

	return msg
}

func pagerRows(p model.Pager) []discordgo.MessageComponent {
	if p.Total <= 1 {
		return nil
	}

	page := func(index int) string {
		return ActionID(p.Scope, "page", append(append([]string{}, p.Args...), strconv.Itoa(index))...)
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Previous",
				Style:    discordgo.SecondaryButton,
				CustomID: page(p.Index - 1),
				Disabled: p.Index <= 0,
			},
			discordgo.Button{
				Label:    "Next",
				Style:    discordgo.SecondaryButton,
				CustomID: page(p.Index + 1),
				Disabled: p.Index >= p.Total-1,
			},
		}},
	}
}

func pageFooter(p model.Pager) *discordgo.MessageEmbedFooter {
	if p.Total <= 1 {
		return nil
	}

	return &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page %d/%d", p.Index+1, p.Total)}
}

func giftLine(gifts []model.Gift) string {
	if len(gifts) == 0 {
		return "None"
	}

	parts := make([]string, 0, len(gifts))
	for _, g := range gifts {
		parts = append(parts, fmt.Sprintf("%s x%s", strings.TrimSpace(g.Emoji+" "+g.Name), g.Amount))
	}

	return strings.Join(parts, ", ")
}

func thumbnail(url string) *discordgo.MessageEmbedThumbnail {
	if url == "" {
		return nil
	}

	return &discordgo.MessageEmbedThumbnail{URL: url}
}

func image(url string) *discordgo.MessageEmbedImage {
	if url == "" {
		return nil
	}

	return &discordgo.MessageEmbedImage{URL: url}
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func channel(channelID string) string {
	return "<#" + channelID + ">"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
