package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestFillStatus(t *testing.T) {
	cases := []struct {
		name    string
		max     *int
		current int
		want    string
	}{
		{"no maximum", nil, 10, ""},
		{"zero maximum", intPtr(0), 10, ""},
		{"empty", intPtr(20), 0, "Spots Available"},
		{"under threshold", intPtr(20), 13, "Spots Available"},
		{"filling up", intPtr(20), 14, "Filling Up"},
		{"nearly full", intPtr(20), 18, "Nearly Full"},
		{"full", intPtr(20), 20, "Nearly Full"},
		{"exact seventy percent", intPtr(10), 7, "Filling Up"},
		{"exact ninety percent", intPtr(10), 9, "Nearly Full"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := &Event{MaxVolunteers: tc.max, CurrentVolunteers: tc.current}
			assert.Equal(t, tc.want, event.FillStatus())
		})
	}
}

func TestPartitionEventsByStart(t *testing.T) {
	now := time.Date(2024, time.December, 12, 12, 0, 0, 0, time.UTC)

	events := []*EventWithCreator{
		{Event: Event{ID: "past", StartDate: now.Add(-48 * time.Hour)}},
		{Event: Event{ID: "exactly-now", StartDate: now}},
		{Event: Event{ID: "future", StartDate: now.Add(72 * time.Hour)}},
	}

	upcoming, past := PartitionEventsByStart(events, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "exactly-now", upcoming[0].ID)
	assert.Equal(t, "future", upcoming[1].ID)

	require.Len(t, past, 1)
	assert.Equal(t, "past", past[0].ID)
}

func TestPartitionEventsByStartEmpty(t *testing.T) {
	upcoming, past := PartitionEventsByStart(nil, time.Now())
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}
