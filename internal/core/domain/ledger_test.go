package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitAndAdvance(t *testing.T) {
	const today = "2026-08-31"

	tests := []struct {
		name   string
		target Target
		want   *QuotaLedger
	}{
		{
			name:   "no ledger admits with fresh day",
			target: Target{MaxAcceptsPerDay: 10},
			want:   &QuotaLedger{Date: today, Value: 1},
		},
		{
			name: "past day resets instead of carrying over",
			target: Target{
				MaxAcceptsPerDay: 10,
				Count:            &QuotaLedger{Date: "2026-08-30", Value: 10},
			},
			want: &QuotaLedger{Date: today, Value: 1},
		},
		{
			name: "same day under cap increments",
			target: Target{
				MaxAcceptsPerDay: 10,
				Count:            &QuotaLedger{Date: today, Value: 3},
			},
			want: &QuotaLedger{Date: today, Value: 4},
		},
		{
			name: "same day at cap denies",
			target: Target{
				MaxAcceptsPerDay: 10,
				Count:            &QuotaLedger{Date: today, Value: 10},
			},
			want: nil,
		},
		{
			name: "same day over cap denies",
			target: Target{
				MaxAcceptsPerDay: 10,
				Count:            &QuotaLedger{Date: today, Value: 11},
			},
			want: nil,
		},
		{
			name: "future-dated ledger denies",
			target: Target{
				MaxAcceptsPerDay: 10,
				Count:            &QuotaLedger{Date: "2026-09-01", Value: 1},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.target.AdmitAndAdvance(today)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestAdmitAndAdvanceNeverMutates(t *testing.T) {
	target := Target{
		MaxAcceptsPerDay: 2,
		Count:            &QuotaLedger{Date: "2026-08-31", Value: 1},
	}
	got := target.AdmitAndAdvance("2026-08-31")
	require.NotNil(t, got)
	assert.Equal(t, QuotaLedger{Date: "2026-08-31", Value: 1}, *target.Count)
	assert.NotSame(t, target.Count, got)
}
