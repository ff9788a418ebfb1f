package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactForAmount(t *testing.T) {
	cases := []struct {
		name        string
		amountCents int64
		wantCents   int64
	}{
		{"below lowest tier", 1000, 0},
		{"exact lowest tier", 2500, 2500},
		{"between tiers", 7500, 5000},
		{"exact highest tier", 25000, 25000},
		{"above highest tier", 100000, 25000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := impactForAmount(tc.amountCents)
			if tc.wantCents == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.wantCents, got.AmountCents)
			assert.NotEmpty(t, got.Description)
		})
	}
}
