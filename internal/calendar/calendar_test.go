package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehfoto/backoffice/internal/calendar"
)

func TestDate_UsesLocation(t *testing.T) {
	loc := time.FixedZone("MYT", 8*60*60)

	// 20:00 UTC on the 14th is already the 15th in UTC+8.
	instant := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), calendar.Date(instant, loc))
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), calendar.Date(instant, nil))
}

func TestNow_ReportsLocation(t *testing.T) {
	loc := time.FixedZone("MYT", 8*60*60)

	now := calendar.Now(loc)()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestFixed(t *testing.T) {
	today := calendar.Fixed(time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), today())
}

func TestParse(t *testing.T) {
	d, err := calendar.Parse("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = calendar.Parse("05/03/2024")
	assert.Error(t, err)
}
