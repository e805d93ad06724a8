package repository

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

const (
	UserBalance   = "balance"
	UserGems      = "gems"
	UserInventory = "inventory"
	UserQuests    = "quests"
	UserFriends   = "friends"
	UserDailyAt   = "daily_refreshed_at"
	UserWeeklyAt  = "weekly_refreshed_at"
)

type UserRepository interface {
	Get(ctx context.Context, id string, fields ...string) (*entity.User, error)
	Save(ctx context.Context, data *entity.User, fields ...string) error
	GetList(ctx context.Context, fields ...string) ([]entity.User, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Get(ctx context.Context, id string, fields ...string) (*entity.User, error) {
	var record entity.User
	err := withFields(xcontext.DB(ctx), "id", fields).Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) Save(ctx context.Context, data *entity.User, fields ...string) error {
	return save(xcontext.DB(ctx), data, fields)
}

// GetList returns all users in insertion order.
func (r *userRepository) GetList(ctx context.Context, fields ...string) ([]entity.User, error) {
	var result []entity.User
	err := withFields(xcontext.DB(ctx), "id", fields).
		Order("created_at ASC, id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
