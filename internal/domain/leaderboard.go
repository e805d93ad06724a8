package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/internal/repository"
	"github.com/questx-lab/clubbot/pkg/enum"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type LeaderboardCategory string

var (
	LeaderboardBalance  = enum.New(LeaderboardCategory("balance"))
	LeaderboardGem      = enum.New(LeaderboardCategory("gem"))
	LeaderboardRelation = enum.New(LeaderboardCategory("relation"))
)

type ClubLeaderboardCategory string

var (
	ClubLeaderboardPoint = enum.New(ClubLeaderboardCategory("point"))
	ClubLeaderboardFund  = enum.New(ClubLeaderboardCategory("fund"))
	ClubLeaderboardLevel = enum.New(ClubLeaderboardCategory("level"))
)

type LeaderboardEntry struct {
	ID    string
	Value int64
	Label string

	// Owners are the users an entry belongs to. A relation entry has two.
	Owners []string
}

// ranking is the part shared by both leaderboards. entries keeps the order of
// the source list, sorted is nil until Sort is called.
type ranking struct {
	f        *Factory
	title    string
	scope    string
	args     []string
	viewerID string
	format   func(int64) string

	entries []LeaderboardEntry
	sorted  []LeaderboardEntry
}

// Sort orders the entries by value, highest first. Equal values keep the
// order of the source list.
func (r *ranking) Sort() {
	sorted := slices.Clone(r.entries)
	slices.SortStableFunc(sorted, func(a, b LeaderboardEntry) bool {
		return a.Value > b.Value
	})

	if sorted == nil {
		sorted = []LeaderboardEntry{}
	}

	r.sorted = sorted
}

func (r *ranking) Sorted() []LeaderboardEntry {
	return r.sorted
}

// GetPosition returns the 1-based rank of the entry with id, or of the first
// entry owned by id.
func (r *ranking) GetPosition(id string) (int, error) {
	if r.sorted == nil {
		return 0, errorx.New(errorx.InvalidState, "The leaderboard is not sorted")
	}

	for i, e := range r.sorted {
		if e.ID == id || slices.Contains(e.Owners, id) {
			return i + 1, nil
		}
	}

	return 0, errorx.New(errorx.NotFound, "Not found %s in the leaderboard", id)
}

// GetMainEmbed is the first page of the leaderboard, sorting it if needed.
func (r *ranking) GetMainEmbed(ctx context.Context) *discordgo.MessageSend {
	if r.sorted == nil {
		r.Sort()
	}

	msg, _ := r.GetEmbed(ctx, 0)
	return msg
}

func (r *ranking) GetEmbed(ctx context.Context, page int) (*discordgo.MessageSend, error) {
	if r.sorted == nil {
		return nil, errorx.New(errorx.InvalidState, "The leaderboard is not sorted")
	}

	p := common.Paginate(r.sorted, page, xcontext.Configs(ctx).Economy.PageSize)
	view := model.Leaderboard{
		Title: r.title,
		Pager: model.Pager{Scope: r.scope, Args: r.args, Index: p.Index, Total: p.Total},
	}

	for i, e := range p.Items {
		view.Rows = append(view.Rows, model.LeaderboardRow{
			Rank:  p.Offset + i + 1,
			Label: e.Label,
			Value: r.format(e.Value),
		})
	}

	if r.viewerID != "" {
		if rank, err := r.GetPosition(r.viewerID); err == nil {
			view.ViewerRank = rank
		}
	}

	return r.f.renderer.Leaderboard(view), nil
}

type Leaderboard struct {
	ranking
	category LeaderboardCategory
}

// CreateLeaderboard reads the users (or relations) ranked by category. viewer
// may be nil, the viewer rank is then not shown.
func (f *Factory) CreateLeaderboard(
	ctx context.Context, category LeaderboardCategory, viewer *UserData,
) (*Leaderboard, error) {
	lb := &Leaderboard{
		category: category,
		ranking: ranking{
			f:      f,
			scope:  "leaderboard",
			args:   []string{string(category)},
			format: common.FormatNumber,
		},
	}

	if viewer != nil {
		lb.viewerID = viewer.ID()
	}

	switch category {
	case LeaderboardBalance, LeaderboardGem:
		field := repository.UserBalance
		lb.title = "Richest users"
		if category == LeaderboardGem {
			field = repository.UserGems
			lb.title = "Gem leaderboard"
		}

		users, err := f.repos.User.GetList(ctx, field)
		if err != nil {
			return nil, storeError(ctx, err, "Cannot get users")
		}

		for _, u := range users {
			value := u.Balance
			if category == LeaderboardGem {
				value = u.Gems
			}

			lb.entries = append(lb.entries, LeaderboardEntry{
				ID:     u.ID,
				Value:  value,
				Label:  fmt.Sprintf("<@%s>", u.ID),
				Owners: []string{u.ID},
			})
		}

	case LeaderboardRelation:
		lb.title = "Closest couples"
		relations, err := f.repos.Relation.GetList(ctx)
		if err != nil {
			return nil, storeError(ctx, err, "Cannot get relations")
		}

		for _, r := range relations {
			lb.entries = append(lb.entries, LeaderboardEntry{
				ID:     r.ID,
				Value:  r.M1Points + r.M2Points,
				Label:  fmt.Sprintf("<@%s> & <@%s>", r.M1, r.M2),
				Owners: []string{r.M1, r.M2},
			})
		}

	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid leaderboard %s", category)
	}

	return lb, nil
}

func (lb *Leaderboard) Category() LeaderboardCategory {
	return lb.category
}

type ClubLeaderboard struct {
	ranking
	category ClubLeaderboardCategory
}

// CreateClubLeaderboard reads the clubs ranked by category. The club clubID,
// if any, is shown as the viewer.
func (f *Factory) CreateClubLeaderboard(
	ctx context.Context, category ClubLeaderboardCategory, clubID string,
) (*ClubLeaderboard, error) {
	lb := &ClubLeaderboard{
		category: category,
		ranking: ranking{
			f:        f,
			scope:    "club_leaderboard",
			args:     []string{string(category)},
			viewerID: clubID,
			format:   common.FormatNumber,
		},
	}

	var field string
	switch category {
	case ClubLeaderboardPoint, ClubLeaderboardLevel:
		field = repository.ClubPoint
	case ClubLeaderboardFund:
		field = repository.ClubFund
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid club leaderboard %s", category)
	}

	lb.title = fmt.Sprintf("Club %s leaderboard", strings.ToLower(string(category)))
	if category == ClubLeaderboardLevel {
		lb.format = func(level int64) string { return fmt.Sprintf("Lv. %d", level) }
	}

	clubs, err := f.repos.Club.GetList(ctx, repository.ClubName, field)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get clubs")
	}

	for _, c := range clubs {
		var value int64
		switch category {
		case ClubLeaderboardPoint:
			value = c.Point
		case ClubLeaderboardFund:
			value = c.Fund
		case ClubLeaderboardLevel:
			value = int64(clubLevel(c.Point))
		}

		lb.entries = append(lb.entries, LeaderboardEntry{
			ID:    c.ID,
			Value: value,
			Label: c.Name,
		})
	}

	return lb, nil
}

func (lb *ClubLeaderboard) Category() ClubLeaderboardCategory {
	return lb.category
}
