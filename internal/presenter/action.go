package presenter

import (
	"strings"

	"github.com/questx-lab/clubbot/pkg/errorx"
)

const actionSeparator = ":"

// Action is the decoded custom id of an interactive control, written as
// <scope>:<action>[:<arg>...].
type Action struct {
	Scope string
	Name  string
	Args  []string
}

func ActionID(scope, name string, args ...string) string {
	return strings.Join(append([]string{scope, name}, args...), actionSeparator)
}

func ParseActionID(id string) (Action, error) {
	parts := strings.Split(id, actionSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Action{}, errorx.New(errorx.BadRequest, "Invalid action id %q", id)
	}

	return Action{Scope: parts[0], Name: parts[1], Args: parts[2:]}, nil
}

func (a Action) String() string {
	return ActionID(a.Scope, a.Name, a.Args...)
}
