package repository

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

const (
	RelationKind     = "kind"
	RelationM1       = "m1"
	RelationM2       = "m2"
	RelationM1Points = "m1_points"
	RelationM2Points = "m2_points"
)

type RelationRepository interface {
	Get(ctx context.Context, id string, fields ...string) (*entity.Relation, error)
	Save(ctx context.Context, data *entity.Relation, fields ...string) error
	GetByMember(ctx context.Context, userID string) ([]entity.Relation, error)
	GetByPair(ctx context.Context, kind entity.RelationKind, m1, m2 string) (*entity.Relation, error)
	GetList(ctx context.Context) ([]entity.Relation, error)
}

type relationRepository struct{}

func NewRelationRepository() *relationRepository {
	return &relationRepository{}
}

func (r *relationRepository) Get(ctx context.Context, id string, fields ...string) (*entity.Relation, error) {
	var record entity.Relation
	err := withFields(xcontext.DB(ctx), "id", fields).Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *relationRepository) Save(ctx context.Context, data *entity.Relation, fields ...string) error {
	return save(xcontext.DB(ctx), data, fields)
}

func (r *relationRepository) GetByMember(ctx context.Context, userID string) ([]entity.Relation, error) {
	var result []entity.Relation
	err := xcontext.DB(ctx).
		Where("m1=? OR m2=?", userID, userID).
		Order("created_at ASC, id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetByPair finds the relation of the given kind between two users, in either
// direction.
func (r *relationRepository) GetByPair(
	ctx context.Context, kind entity.RelationKind, m1, m2 string,
) (*entity.Relation, error) {
	var record entity.Relation
	err := xcontext.DB(ctx).
		Where("kind=? AND ((m1=? AND m2=?) OR (m1=? AND m2=?))", kind, m1, m2, m2, m1).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *relationRepository) GetList(ctx context.Context) ([]entity.Relation, error) {
	var result []entity.Relation
	err := xcontext.DB(ctx).
		Select("id", RelationKind, RelationM1, RelationM2, RelationM1Points, RelationM2Points).
		Order("created_at ASC, id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
