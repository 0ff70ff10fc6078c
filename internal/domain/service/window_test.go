package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	type args struct {
		now          time.Time
		dayStartHour int
	}
	tests := []struct {
		name      string
		args      args
		wantStart time.Time
		wantLabel string
		wantDate  string
	}{
		{
			name: "Should start today when past the day start hour",
			args: args{
				now:          time.Date(2025, 1, 13, 19, 30, 0, 0, loc),
				dayStartHour: 5,
			},
			wantStart: time.Date(2025, 1, 13, 5, 0, 0, 0, loc),
			wantLabel: "13 Jan",
			wantDate:  "2025-01-13",
		},
		{
			name: "Should belong to the previous day before the day start hour",
			args: args{
				now:          time.Date(2025, 1, 14, 3, 0, 0, 0, loc),
				dayStartHour: 5,
			},
			wantStart: time.Date(2025, 1, 13, 5, 0, 0, 0, loc),
			wantLabel: "13 Jan",
			wantDate:  "2025-01-13",
		},
		{
			name: "Should start exactly at the day start hour",
			args: args{
				now:          time.Date(2025, 1, 14, 5, 0, 0, 0, loc),
				dayStartHour: 5,
			},
			wantStart: time.Date(2025, 1, 14, 5, 0, 0, 0, loc),
			wantLabel: "14 Jan",
			wantDate:  "2025-01-14",
		},
		{
			name: "Should use midnight when the day start hour is zero",
			args: args{
				now:          time.Date(2025, 3, 1, 0, 10, 0, 0, loc),
				dayStartHour: 0,
			},
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
			wantLabel: "1 Mar",
			wantDate:  "2025-03-01",
		},
		{
			name: "Should cross a month and year boundary",
			args: args{
				now:          time.Date(2025, 1, 1, 2, 0, 0, 0, loc),
				dayStartHour: 5,
			},
			wantStart: time.Date(2024, 12, 31, 5, 0, 0, 0, loc),
			wantLabel: "31 Dec",
			wantDate:  "2024-12-31",
		},
		{
			name: "Should convert an instant given in another zone",
			args: args{
				// 22:00 UTC is 03:30 IST of the next calendar day
				now:          time.Date(2025, 1, 13, 22, 0, 0, 0, time.UTC),
				dayStartHour: 5,
			},
			wantStart: time.Date(2025, 1, 13, 5, 0, 0, 0, loc),
			wantLabel: "13 Jan",
			wantDate:  "2025-01-13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWindow(tt.args.now, loc, tt.args.dayStartHour)

			assert.True(t, tt.wantStart.Equal(got.Start), "start: want %v, got %v", tt.wantStart, got.Start)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, loc, got.Now.Location())
			assert.False(t, got.Start.After(got.Now))
		})
	}
}

func TestEffectiveDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	lateNight := time.Date(2025, 1, 14, 1, 45, 0, 0, loc).Unix()
	label, date := EffectiveDay(lateNight, loc, 5)
	assert.Equal(t, "13 Jan", label)
	assert.Equal(t, "2025-01-13", date)

	morning := time.Date(2025, 1, 14, 9, 0, 0, 0, loc).Unix()
	label, date = EffectiveDay(morning, loc, 5)
	assert.Equal(t, "14 Jan", label)
	assert.Equal(t, "2025-01-14", date)
}
