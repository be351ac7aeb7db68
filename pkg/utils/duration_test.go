package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/pkg/utils"
)

func TestParseCooldown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "minutes",
			input: "5m",
			want:  5 * time.Minute,
		},
		{
			name:  "hours",
			input: "1h",
			want:  time.Hour,
		},
		{
			name:  "seconds",
			input: "300s",
			want:  300 * time.Second,
		},
		{
			name:  "days",
			input: "2j",
			want:  48 * time.Hour,
		},
		{
			name:    "missing unit",
			input:   "300",
			wantErr: true,
		},
		{
			name:    "unknown unit",
			input:   "5d",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative value",
			input:   "-5m",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := utils.ParseCooldown(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCooldownMilliseconds(t *testing.T) {
	t.Parallel()

	// The persisted settings format stores cooldowns as integer milliseconds.
	tests := map[string]int64{
		"5m":   300000,
		"1h":   3600000,
		"300s": 300000,
		"2j":   172800000,
	}

	for input, wantMS := range tests {
		got, err := utils.ParseCooldown(input)
		require.NoError(t, err)
		assert.Equal(t, wantMS, got.Milliseconds(), "input %q", input)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{
			name:  "seconds only",
			input: 45 * time.Second,
			want:  "45s",
		},
		{
			name:  "minutes and seconds",
			input: 4*time.Minute + 30*time.Second,
			want:  "4m 30s",
		},
		{
			name:  "hours and minutes",
			input: time.Hour + 5*time.Minute,
			want:  "1h 5m",
		},
		{
			name:  "days and hours",
			input: 51 * time.Hour,
			want:  "2j 3h",
		},
		{
			name:  "sub-second",
			input: 300 * time.Millisecond,
			want:  "0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utils.FormatDuration(tt.input))
		})
	}
}
