package domain

import (
	"fmt"
	"strings"

	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/internal/model"
	"github.com/questx-lab/clubbot/pkg/errorx"
)

// advance adds value to the progress of an active quest, clamped at the
// target. It returns true if the quest has just been finished.
func advance(p *entity.QuestProgress, value int64) bool {
	if p.Finished {
		return false
	}

	if value < p.Target-p.Progress {
		p.Progress += value
		return false
	}

	p.Progress = p.Target
	p.Finished = true
	return true
}

// merge brings the stored progress p up to the progress of payload, a copy
// read earlier. It returns true if the quest has just been finished.
func merge(p *entity.QuestProgress, payload entity.QuestProgress) bool {
	if payload.Finished {
		return complete(p)
	}

	if payload.Progress <= p.Progress {
		return false
	}

	return advance(p, payload.Progress-p.Progress)
}

// complete finishes the quest. It returns false if it was already finished.
func complete(p *entity.QuestProgress) bool {
	if p.Finished {
		return false
	}

	p.Progress = p.Target
	p.Finished = true
	return true
}

func validateProgress(value int64) error {
	if value < 0 {
		return errorx.New(errorx.Validation, "Progress must not be negative")
	}

	return nil
}

func rewardString(r entity.QuestReward) string {
	var parts []string
	if r.Balance > 0 {
		parts = append(parts, common.FormatNumber(r.Balance)+" coins")
	}

	if r.Gems > 0 {
		parts = append(parts, common.FormatNumber(r.Gems)+" gems")
	}

	if r.Point > 0 {
		parts = append(parts, common.FormatNumber(r.Point)+" points")
	}

	if r.Fund > 0 {
		parts = append(parts, common.FormatNumber(r.Fund)+" fund")
	}

	if len(parts) == 0 {
		return "nothing"
	}

	return strings.Join(parts, ", ")
}

func questView(p entity.QuestProgress) model.Quest {
	return model.Quest{
		ID:       p.ID,
		Label:    p.Label,
		Progress: p.Progress,
		Target:   p.Target,
		Finished: p.Finished,
		Reward:   rewardString(p.Reward),
	}
}

func questLabel(format string, target int64) string {
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, target)
	}

	return format
}
