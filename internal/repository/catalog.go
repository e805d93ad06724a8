package repository

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

type QuestRepository interface {
	Create(ctx context.Context, data *entity.Quest) error
	GetByCategory(ctx context.Context, category entity.QuestCategory) ([]entity.Quest, error)
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, data *entity.Quest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questRepository) GetByCategory(
	ctx context.Context, category entity.QuestCategory,
) ([]entity.Quest, error) {
	var result []entity.Quest
	err := xcontext.DB(ctx).Where("category=?", category).Order("id").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var record entity.Quest
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

type ItemRepository interface {
	Create(ctx context.Context, data *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Item, error)
}

type itemRepository struct{}

func NewItemRepository() *itemRepository {
	return &itemRepository{}
}

func (r *itemRepository) Create(ctx context.Context, data *entity.Item) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var record entity.Item
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []entity.Item
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

type ShopRepository interface {
	Create(ctx context.Context, data *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
}

type shopRepository struct{}

func NewShopRepository() *shopRepository {
	return &shopRepository{}
}

func (r *shopRepository) Create(ctx context.Context, data *entity.Shop) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	var record entity.Shop
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
