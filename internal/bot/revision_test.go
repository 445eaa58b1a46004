package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

func TestDueToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	day := func(daysAgo int) time.Time {
		return now.AddDate(0, 0, -daysAgo)
	}

	revisions := []storedb.Revision{
		{Topic: "Studied today", Date: day(0)},
		{Topic: "One day ago", Date: day(1)},
		{Topic: "Two days ago", Date: day(2)},
		{Topic: "Three days ago", Date: day(3)},
		{Topic: "A week ago", Date: day(7)},
		{Topic: "Three weeks ago", Date: day(21)},
		{Topic: "Long done", Date: day(30)},
	}

	topics := dueToday(revisions, now)
	assert.Equal(t, []string{"One day ago", "Three days ago", "A week ago", "Three weeks ago"}, topics)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a    time.Time
		b    time.Time
		days int
	}{
		// time of day does not matter, only the calendar day
		{
			time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
			0,
		},
		{
			time.Date(2026, 8, 9, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
			21,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.days, daysBetween(test.a, test.b))
	}
}
