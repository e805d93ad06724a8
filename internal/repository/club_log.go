package repository

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

type ClubLogRepository interface {
	Create(ctx context.Context, logs ...entity.ClubLog) error
	GetList(ctx context.Context, clubID string, offset, limit int) ([]entity.ClubLog, error)
	Count(ctx context.Context, clubID string) (int64, error)
}

type clubLogRepository struct{}

func NewClubLogRepository() *clubLogRepository {
	return &clubLogRepository{}
}

func (r *clubLogRepository) Create(ctx context.Context, logs ...entity.ClubLog) error {
	if len(logs) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(&logs).Error
}

// GetList returns logs of the club, newest first.
func (r *clubLogRepository) GetList(
	ctx context.Context, clubID string, offset, limit int,
) ([]entity.ClubLog, error) {
	var result []entity.ClubLog
	err := xcontext.DB(ctx).
		Where("club_id=?", clubID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubLogRepository) Count(ctx context.Context, clubID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.ClubLog{}).Where("club_id=?", clubID).Count(&result).Error
	return result, err
}
