package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentWeek(t *testing.T) {
	// 2023-05-10 is a wednesday.
	wed := time.Date(2023, 5, 10, 15, 4, 5, 0, time.UTC)
	require.Equal(t, time.Date(2023, 5, 8, 0, 0, 0, 0, time.UTC), CurrentWeek(wed))
	require.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), NextWeek(wed))

	// Sunday belongs to the week which started on the previous monday.
	sun := time.Date(2023, 5, 14, 23, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, 5, 8, 0, 0, 0, 0, time.UTC), CurrentWeek(sun))
	require.True(t, SameWeek(wed, sun))
	require.False(t, SameWeek(wed, NextWeek(wed)))
}

func TestNextDay(t *testing.T) {
	now := time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NextDay(now))
	require.True(t, SameDay(now, BeginningOfDay(now)))
	require.False(t, SameDay(now, NextDay(now)))
}
