package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
	"golang.org/x/exp/slices"
)

const (
	ClubName      = "name"
	ClubIcon      = "icon"
	ClubThumbnail = "thumbnail"
	ClubOwner     = "owner_id"
	ClubLevel     = "level"
	ClubPoint     = "point"
	ClubFund      = "fund"
	ClubMembers   = "members"
	ClubDonations = "donations"
	ClubQuests    = "quests"
	ClubPremium   = "premium"
	ClubPremiumAt = "premium_expires_at"
	ClubRoomID    = "room_channel_id"
	ClubRoomGuard = "room_protect"
	ClubDailyAt   = "daily_refreshed_at"
)

// ErrMemberOfAnotherClub is returned by Save when a member of the club is
// already indexed in another club.
var ErrMemberOfAnotherClub = errors.New("member of another club")

type ClubRepository interface {
	Get(ctx context.Context, id string, fields ...string) (*entity.Club, error)
	Save(ctx context.Context, data *entity.Club, fields ...string) error
	GetList(ctx context.Context, fields ...string) ([]entity.Club, error)
	GetExpiredPremium(ctx context.Context, now time.Time) ([]entity.Club, error)
	GetClubIDByMember(ctx context.Context, userID string) (string, error)
}

type clubRepository struct{}

func NewClubRepository() *clubRepository {
	return &clubRepository{}
}

func (r *clubRepository) Get(ctx context.Context, id string, fields ...string) (*entity.Club, error) {
	var record entity.Club
	err := withFields(xcontext.DB(ctx), "id", fields).Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Save writes the club and, when the member list is part of the saved
// columns, rebuilds the membership index. Callers should run it inside a
// transaction.
func (r *clubRepository) Save(ctx context.Context, data *entity.Club, fields ...string) error {
	if err := save(xcontext.DB(ctx), data, fields); err != nil {
		return err
	}

	if len(fields) > 0 && !slices.Contains(fields, ClubMembers) {
		return nil
	}

	err := xcontext.DB(ctx).
		Where("club_id=?", data.ID).
		Delete(&entity.ClubMembership{}).Error
	if err != nil {
		return err
	}

	if len(data.Members) == 0 {
		return nil
	}

	userIDs := make([]string, 0, len(data.Members))
	memberships := make([]entity.ClubMembership, 0, len(data.Members))
	for _, m := range data.Members {
		userIDs = append(userIDs, m.UserID)
		memberships = append(memberships, entity.ClubMembership{UserID: m.UserID, ClubID: data.ID})
	}

	var taken []entity.ClubMembership
	err = xcontext.DB(ctx).
		Where("user_id IN ? AND club_id<>?", userIDs, data.ID).
		Limit(1).
		Find(&taken).Error
	if err != nil {
		return err
	}

	if len(taken) > 0 {
		return fmt.Errorf("%w: user %s is in club %s", ErrMemberOfAnotherClub, taken[0].UserID, taken[0].ClubID)
	}

	// A user joining two clubs at the same time is stopped by the primary key
	// of the membership row.
	return xcontext.DB(ctx).Create(&memberships).Error
}

func (r *clubRepository) GetList(ctx context.Context, fields ...string) ([]entity.Club, error) {
	var result []entity.Club
	err := withFields(xcontext.DB(ctx), "id", fields).
		Order("created_at ASC, id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) GetExpiredPremium(ctx context.Context, now time.Time) ([]entity.Club, error) {
	var result []entity.Club
	err := xcontext.DB(ctx).
		Select("id").
		Where("premium=? AND premium_expires_at<?", true, now).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetClubIDByMember returns an empty string if the user is not in any club.
func (r *clubRepository) GetClubIDByMember(ctx context.Context, userID string) (string, error) {
	var result []entity.ClubMembership
	err := xcontext.DB(ctx).Where("user_id=?", userID).Limit(1).Find(&result).Error
	if err != nil {
		return "", err
	}

	if len(result) == 0 {
		return "", nil
	}

	return result[0].ClubID, nil
}
