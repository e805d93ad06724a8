package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/errorx"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

// Quest is a template of the quest pool.
type Quest struct {
	f    *Factory
	data entity.Quest
}

func (f *Factory) NewQuest(ctx context.Context, questID string) (*Quest, error) {
	data, err := f.repos.Quest.GetByID(ctx, questID)
	if err != nil {
		return nil, storeError(ctx, err, "Not found quest %s", questID)
	}

	return &Quest{f: f, data: *data}, nil
}

func (q *Quest) ID() string {
	return q.data.ID
}

func (q *Quest) Category() entity.QuestCategory {
	return q.data.Category
}

func (q *Quest) Reward() (entity.QuestReward, error) {
	var reward entity.QuestReward
	if err := mapstructure.Decode(q.data.Reward, &reward); err != nil {
		return entity.QuestReward{}, err
	}

	return reward, nil
}

// Generate creates a new user quest from the template with a random target.
func (q *Quest) Generate(ctx context.Context) (entity.UserQuest, error) {
	progress, err := q.generate(ctx, 1, 1)
	if err != nil {
		return entity.UserQuest{}, err
	}

	return entity.UserQuest{QuestProgress: progress, Category: q.data.Category}, nil
}

// generate picks a target in [MinTarget, MaxTarget] and multiplies it by
// num/den.
func (q *Quest) generate(ctx context.Context, num, den int64) (entity.QuestProgress, error) {
	reward, err := q.Reward()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode reward of quest %s: %v", q.data.ID, err)
		return entity.QuestProgress{}, errorx.Unknown
	}

	target := q.f.randRange(q.data.MinTarget, q.data.MaxTarget) * num / den
	if target < 1 {
		target = 1
	}

	return entity.QuestProgress{
		ID:        uuid.NewString(),
		QuestID:   q.data.ID,
		Type:      q.data.Type,
		Label:     questLabel(q.data.Label, target),
		Target:    target,
		Reward:    reward,
		CreatedAt: q.f.now(),
	}, nil
}

// QuestGenerator creates the daily quests of a club. Targets grow with the
// club level.
type QuestGenerator struct {
	f    *Factory
	club *Club
}

func (f *Factory) NewQuestGenerator(club *Club) *QuestGenerator {
	return &QuestGenerator{f: f, club: club}
}

func (g *QuestGenerator) Generate(ctx context.Context) (entity.ClubQuestData, error) {
	quests, err := g.GenerateN(ctx, 1)
	if err != nil {
		return entity.ClubQuestData{}, err
	}

	return quests[0], nil
}

// GenerateN creates n quests from distinct templates, or fewer if the pool is
// smaller.
func (g *QuestGenerator) GenerateN(ctx context.Context, n int) ([]entity.ClubQuestData, error) {
	if g.club == nil || g.club.data == nil {
		return nil, errorx.New(errorx.InvalidState, "Cannot generate quests of an unloaded club")
	}

	templates, err := g.f.pickQuests(ctx, entity.QuestClub, n)
	if err != nil {
		return nil, err
	}

	// A level 1 club gets the template target, each level adds a quarter.
	num := int64(3 + g.club.data.Level)
	result := make([]entity.ClubQuestData, 0, len(templates))
	for _, t := range templates {
		progress, err := t.generate(ctx, num, 4)
		if err != nil {
			return nil, err
		}

		result = append(result, entity.ClubQuestData{QuestProgress: progress})
	}

	return result, nil
}

// pickQuests draws n distinct templates of the category, weighted by their
// weight.
func (f *Factory) pickQuests(ctx context.Context, category entity.QuestCategory, n int) ([]*Quest, error) {
	pool, err := f.repos.Quest.GetByCategory(ctx, category)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get %s quests", category)
	}

	if len(pool) == 0 && n > 0 {
		return nil, errorx.New(errorx.NotFound, "No %s quest available", category)
	}

	var result []*Quest
	for len(result) < n && len(pool) > 0 {
		total := 0
		for _, q := range pool {
			total += questWeight(q)
		}

		pick := f.randIntn(total)
		for i, q := range pool {
			pick -= questWeight(q)
			if pick < 0 {
				result = append(result, &Quest{f: f, data: q})
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}

	return result, nil
}

func (f *Factory) generateUserQuests(
	ctx context.Context, category entity.QuestCategory, n int,
) ([]entity.UserQuest, error) {
	templates, err := f.pickQuests(ctx, category, n)
	if err != nil {
		return nil, err
	}

	result := make([]entity.UserQuest, 0, len(templates))
	for _, t := range templates {
		q, err := t.Generate(ctx)
		if err != nil {
			return nil, err
		}

		result = append(result, q)
	}

	return result, nil
}

func questWeight(q entity.Quest) int {
	if q.Weight <= 0 {
		return 1
	}

	return q.Weight
}
