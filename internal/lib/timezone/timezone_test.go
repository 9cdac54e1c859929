package timezone_test

import (
	"testing"
	"time"

	"fitnessBooker/internal/lib/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		zone     string
		wantName string
		wantErr  bool
	}{
		{
			name:     "empty resolves to default",
			zone:     "",
			wantName: "Asia/Kolkata",
		},
		{
			name:     "utc",
			zone:     "UTC",
			wantName: "UTC",
		},
		{
			name:     "valid iana zone",
			zone:     "America/New_York",
			wantName: "America/New_York",
		},
		{
			name:    "unknown zone",
			zone:    "Mars/Olympus_Mons",
			wantErr: true,
		},
		{
			name:    "local is rejected",
			zone:    "Local",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := timezone.Resolve(tc.zone)

			if tc.wantErr {
				require.ErrorIs(t, err, timezone.ErrInvalidTimezone)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, loc.String())
		})
	}
}

func TestResolveConversionKeepsInstant(t *testing.T) {
	loc, err := timezone.Resolve("Asia/Kolkata")
	require.NoError(t, err)

	utc := time.Date(2026, 9, 1, 1, 30, 0, 0, time.UTC)
	local := utc.In(loc)

	assert.True(t, utc.Equal(local))
	assert.Equal(t, 7, local.Hour())
	assert.Equal(t, 0, local.Minute())
}
