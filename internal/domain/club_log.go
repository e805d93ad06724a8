package domain

import (
	"fmt"
	"time"

	"github.com/questx-lab/clubbot/internal/common"
	"github.com/questx-lab/clubbot/internal/entity"
)

var clubActionLabels = map[entity.ClubActionType]string{
	entity.ClubActionMemberAdd:    "Member joined",
	entity.ClubActionMemberRemove: "Member left",
	entity.ClubActionFundAdd:      "Fund added",
	entity.ClubActionFundTake:     "Fund taken",
	entity.ClubActionPointAdd:     "Point added",
	entity.ClubActionLevelUp:      "Level up",
	entity.ClubActionQuestAdd:     "New quest",
	entity.ClubActionQuestFinish:  "Quest finished",
	entity.ClubActionPremiumOn:    "Premium activated",
	entity.ClubActionPremiumOff:   "Premium ended",
	entity.ClubActionRoomProtect:  "Room protection",
}

// ClubLog is a read-only view of one line of the club history.
type ClubLog struct {
	data entity.ClubLog
}

func NewClubLog(data entity.ClubLog) ClubLog {
	return ClubLog{data: data}
}

func (l ClubLog) Time() time.Time {
	return l.data.CreatedAt
}

// User is the member who did the action, empty for the system.
func (l ClubLog) User() string {
	if l.data.UserID == "" {
		return "System"
	}

	return "<@" + l.data.UserID + ">"
}

func (l ClubLog) Label() string {
	if label, ok := clubActionLabels[l.data.Type]; ok {
		return label
	}

	return string(l.data.Type)
}

func (l ClubLog) Member() string {
	target := "<@" + l.data.Target + ">"
	switch l.data.Type {
	case entity.ClubActionMemberAdd:
		if l.data.UserID == l.data.Target {
			return target + " joined the club"
		}
		return fmt.Sprintf("%s added %s", l.User(), target)
	case entity.ClubActionMemberRemove:
		if l.data.UserID == l.data.Target {
			return target + " left the club"
		}
		return fmt.Sprintf("%s removed %s", l.User(), target)
	}

	return ""
}

func (l ClubLog) Fund() string {
	amount := common.FormatNumber(l.data.Amount)
	switch l.data.Type {
	case entity.ClubActionFundAdd:
		return fmt.Sprintf("%s donated %s", l.User(), amount)
	case entity.ClubActionFundTake:
		if l.data.Reason != "" {
			return fmt.Sprintf("%s took %s for %s", l.User(), amount, l.data.Reason)
		}
		return fmt.Sprintf("%s took %s", l.User(), amount)
	}

	return ""
}

func (l ClubLog) Level() string {
	switch l.data.Type {
	case entity.ClubActionPointAdd:
		return fmt.Sprintf("%s earned %s points", l.User(), common.FormatNumber(l.data.Amount))
	case entity.ClubActionLevelUp:
		return fmt.Sprintf("The club reached level %d", l.data.Amount)
	}

	return ""
}

func (l ClubLog) Quest() string {
	switch l.data.Type {
	case entity.ClubActionQuestAdd:
		return "New quest: " + l.data.Target
	case entity.ClubActionQuestFinish:
		return "Quest finished: " + l.data.Target
	}

	return ""
}

func (l ClubLog) String() string {
	var text string
	switch l.data.Type {
	case entity.ClubActionMemberAdd, entity.ClubActionMemberRemove:
		text = l.Member()
	case entity.ClubActionFundAdd, entity.ClubActionFundTake:
		text = l.Fund()
	case entity.ClubActionPointAdd, entity.ClubActionLevelUp:
		text = l.Level()
	case entity.ClubActionQuestAdd, entity.ClubActionQuestFinish:
		text = l.Quest()
	case entity.ClubActionRoomProtect:
		state := "off"
		if l.data.Amount > 0 {
			state = "on"
		}
		text = fmt.Sprintf("%s turned room protection %s", l.User(), state)
	default:
		text = l.Label()
	}

	return fmt.Sprintf("`%s` %s", l.Time().UTC().Format("2006-01-02 15:04"), text)
}
