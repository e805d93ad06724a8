package repository

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

type StickyRepository interface {
	Get(ctx context.Context, channelID string) (*entity.Sticky, error)
	Create(ctx context.Context, data *entity.Sticky) error
	Save(ctx context.Context, data *entity.Sticky) error
	Delete(ctx context.Context, channelID string) (int64, error)
}

type stickyRepository struct{}

func NewStickyRepository() *stickyRepository {
	return &stickyRepository{}
}

func (r *stickyRepository) Get(ctx context.Context, channelID string) (*entity.Sticky, error) {
	var record entity.Sticky
	if err := xcontext.DB(ctx).Where("channel_id=?", channelID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *stickyRepository) Create(ctx context.Context, data *entity.Sticky) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *stickyRepository) Save(ctx context.Context, data *entity.Sticky) error {
	return xcontext.DB(ctx).Save(data).Error
}

func (r *stickyRepository) Delete(ctx context.Context, channelID string) (int64, error) {
	tx := xcontext.DB(ctx).Where("channel_id=?", channelID).Delete(&entity.Sticky{})
	return tx.RowsAffected, tx.Error
}
