package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestCalculateTrend(t *testing.T) {
	tests := []struct {
		name              string
		currentPosition   int
		baseline          *int
		expectedDirection TrendDirection
		expectedDiff      *int
		expectedSymbol    string
		expectedColor     string
	}{
		{
			name:              "sem baseline não há tendência",
			currentPosition:   5,
			baseline:          nil,
			expectedDirection: TrendNoData,
			expectedSymbol:    "—",
			expectedColor:     "gray",
		},
		{
			name:              "baseline zero equivale a sem dados",
			currentPosition:   5,
			baseline:          intPtr(0),
			expectedDirection: TrendNoData,
			expectedSymbol:    "—",
			expectedColor:     "gray",
		},
		{
			name:              "posição 10 para 3 é melhora de +7",
			currentPosition:   3,
			baseline:          intPtr(10),
			expectedDirection: TrendImproved,
			expectedDiff:      intPtr(7),
			expectedSymbol:    "▲",
			expectedColor:     "green",
		},
		{
			name:              "posição 3 para 10 é piora de -7",
			currentPosition:   10,
			baseline:          intPtr(3),
			expectedDirection: TrendWorsened,
			expectedDiff:      intPtr(-7),
			expectedSymbol:    "▼",
			expectedColor:     "red",
		},
		{
			name:              "posição estável",
			currentPosition:   4,
			baseline:          intPtr(4),
			expectedDirection: TrendUnchanged,
			expectedDiff:      intPtr(0),
			expectedSymbol:    "●",
			expectedColor:     "yellow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := CalculateTrend(tt.currentPosition, tt.baseline)

			assert.Equal(t, tt.expectedDirection, trend.Direction)
			assert.Equal(t, tt.expectedSymbol, trend.Symbol)
			assert.Equal(t, tt.expectedColor, trend.Color)

			if tt.expectedDiff != nil {
				assert.NotNil(t, trend.Diff)
				assert.Equal(t, *tt.expectedDiff, *trend.Diff)
			} else {
				assert.Nil(t, trend.Diff)
			}
		})
	}
}
