package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeString
	}{
		{"24h", "14:00", "14:00"},
		{"24h single digit hour", "9:05", "09:05"},
		{"24h midnight", "00:00", "00:00"},
		{"12h pm", "2:00 pm", "14:00"},
		{"12h pm no space", "2:00pm", "14:00"},
		{"12h pm uppercase", "2:00 PM", "14:00"},
		{"12h am", "9:30 am", "09:30"},
		{"12am is midnight", "12:00 am", "00:00"},
		{"12pm is noon", "12:00 pm", "12:00"},
		{"12h with surrounding spaces", "  7:15 pm  ", "19:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	inputs := []string{
		"", "25:00", "14:60", "13:00 pm", "0:00 am", "abc", "14", "14:0", "14:000",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := NewTimeStringFromString(input)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 8, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("08:07"), NewTimeString(moment))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(9 * 60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	got, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_MinuteOfDay(t *testing.T) {
	minute, err := TimeString("14:00").MinuteOfDay()
	require.NoError(t, err)
	assert.Equal(t, 840, minute)

	minute, err = TimeString("00:00").MinuteOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, minute)

	_, err = TimeString("bad").MinuteOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// Слоты не пересекают полночь
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(12345))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())

	// Ненормализованное значение невалидно, даже если парсится
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeFormat)
	assert.ErrorIs(t, TimeString("2:00 pm").Validate(), ErrInvalidTimeFormat)
}
