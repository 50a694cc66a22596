package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Always stored as UTC regardless of input zone
	local := time.Date(2024, 5, 1, 8, 30, 0, 0, loc)
	assert.Equal(t, "2024-05-01T12:30:00Z", FormatTimeForDB(local))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2024-05-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), parsed.UTC())

	_, err = ParseTimeFromDB("not a time")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}
