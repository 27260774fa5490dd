package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)
	assert.Equal(t, 9*60+5, ts.Minutes())

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Between(t *testing.T) {
	assert.True(t, TimeString("19:30").Between("19:00", "20:30"))
	assert.True(t, TimeString("20:30").Between("19:00", "20:30"))
	assert.False(t, TimeString("18:30").Between("19:00", "20:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("21:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}
