package domain

import (
	"context"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/errorx"
)

// UserQuest is an active quest of a user. Its methods lock and re-read the
// user, they must not run inside MutateUser of the same user.
type UserQuest struct {
	f      *Factory
	userID string
	data   entity.UserQuest
}

func (q *UserQuest) Data() entity.UserQuest {
	return q.data
}

func (q *UserQuest) Label() string {
	return q.data.Label
}

func (q *UserQuest) Finished() bool {
	return q.data.Finished
}

// Progress returns the current progress and the target.
func (q *UserQuest) Progress() (int64, int64) {
	return q.data.Progress, q.data.Target
}

// UpProcess adds value to the progress. It returns true if the quest has just
// been finished, the reward is granted at that moment.
func (q *UserQuest) UpProcess(ctx context.Context, value int64) (bool, error) {
	if err := validateProgress(value); err != nil {
		return false, err
	}

	return q.modify(ctx, func(p *entity.QuestProgress) bool { return advance(p, value) })
}

// Finish finishes the quest and grants its reward. It does nothing on a
// finished quest.
func (q *UserQuest) Finish(ctx context.Context) (bool, error) {
	return q.modify(ctx, complete)
}

// Update writes the progress of this copy back into the user. Progress never
// goes back: the stored quest keeps whichever progress is further, and a
// finished quest stays finished.
func (q *UserQuest) Update(ctx context.Context) error {
	payload := q.data.QuestProgress
	_, err := q.modify(ctx, func(p *entity.QuestProgress) bool { return merge(p, payload) })
	return err
}

func (q *UserQuest) modify(ctx context.Context, fn func(*entity.QuestProgress) bool) (bool, error) {
	finished := false
	_, err := q.f.MutateUser(ctx, q.userID, func(u *UserData) error {
		i := u.questIndex(q.data.ID)
		if i < 0 {
			return errorx.New(errorx.NotFound, "The quest has been replaced")
		}

		stored := &u.data.Quests[i]
		finished = fn(&stored.QuestProgress)
		if finished {
			if err := u.grant(stored.Reward); err != nil {
				return err
			}
		}

		q.data = *stored
		return nil
	})
	if err != nil {
		return false, err
	}

	if finished {
		q.f.publishQuestFinished(ctx, q.userID, string(q.data.Category), q.data.QuestProgress)
	}

	return finished, nil
}

// ClubQuest is an active quest of a club. Its methods lock and re-read the
// club, they must not run inside MutateClub of the same club.
type ClubQuest struct {
	f      *Factory
	clubID string
	data   entity.ClubQuestData
}

func (q *ClubQuest) Data() entity.ClubQuestData {
	return q.data
}

func (q *ClubQuest) Label() string {
	return q.data.Label
}

func (q *ClubQuest) Finished() bool {
	return q.data.Finished
}

func (q *ClubQuest) Progress() (int64, int64) {
	return q.data.Progress, q.data.Target
}

func (q *ClubQuest) UpProcess(ctx context.Context, value int64) (bool, error) {
	if err := validateProgress(value); err != nil {
		return false, err
	}

	return q.modify(ctx, func(p *entity.QuestProgress) bool { return advance(p, value) })
}

func (q *ClubQuest) Finish(ctx context.Context) (bool, error) {
	return q.modify(ctx, complete)
}

func (q *ClubQuest) Update(ctx context.Context) error {
	payload := q.data.QuestProgress
	_, err := q.modify(ctx, func(p *entity.QuestProgress) bool { return merge(p, payload) })
	return err
}

func (q *ClubQuest) modify(ctx context.Context, fn func(*entity.QuestProgress) bool) (bool, error) {
	finished := false
	_, err := q.f.MutateClub(ctx, q.clubID, func(c *Club) error {
		i := c.questIndex(q.data.ID)
		if i < 0 {
			return errorx.New(errorx.NotFound, "The quest has been replaced")
		}

		stored := &c.data.Quests[i]
		finished = fn(&stored.QuestProgress)
		q.data = *stored
		if finished {
			return c.grant(q.data)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	if finished {
		q.f.publishQuestFinished(ctx, q.clubID, string(entity.QuestClub), q.data.QuestProgress)
	}

	return finished, nil
}
