package domain

import (
	"testing"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_merge(t *testing.T) {
	tests := []struct {
		name         string
		stored       entity.QuestProgress
		payload      entity.QuestProgress
		want         entity.QuestProgress
		wantFinished bool
	}{
		{
			name:    "stale payload",
			stored:  entity.QuestProgress{Target: 30, Progress: 10},
			payload: entity.QuestProgress{Target: 30},
			want:    entity.QuestProgress{Target: 30, Progress: 10},
		},
		{
			name:    "payload ahead",
			stored:  entity.QuestProgress{Target: 30, Progress: 10},
			payload: entity.QuestProgress{Target: 30, Progress: 25},
			want:    entity.QuestProgress{Target: 30, Progress: 25},
		},
		{
			name:         "payload reaches the target",
			stored:       entity.QuestProgress{Target: 30, Progress: 10},
			payload:      entity.QuestProgress{Target: 30, Progress: 30},
			want:         entity.QuestProgress{Target: 30, Progress: 30, Finished: true},
			wantFinished: true,
		},
		{
			name:         "finished payload",
			stored:       entity.QuestProgress{Target: 30, Progress: 10},
			payload:      entity.QuestProgress{Target: 30, Progress: 30, Finished: true},
			want:         entity.QuestProgress{Target: 30, Progress: 30, Finished: true},
			wantFinished: true,
		},
		{
			name:    "already finished",
			stored:  entity.QuestProgress{Target: 30, Progress: 30, Finished: true},
			payload: entity.QuestProgress{Target: 30, Progress: 5},
			want:    entity.QuestProgress{Target: 30, Progress: 30, Finished: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.stored
			require.Equal(t, tt.wantFinished, merge(&p, tt.payload))
			require.Equal(t, tt.want, p)
		})
	}
}
