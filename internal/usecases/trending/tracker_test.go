package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestNextBaselinesFirstSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 1, 5, 0, 0, 0, time.UTC)

	baselines := NextBaselines(nil, now)

	// Primeiro snapshot abre as três janelas sem baseline
	assert.Nil(t, baselines.Baseline24h)
	assert.Nil(t, baselines.Baseline7d)
	assert.Nil(t, baselines.Baseline30d)
	assert.Equal(t, now, *baselines.Baseline24hAt)
	assert.Equal(t, now, *baselines.Baseline7dAt)
	assert.Equal(t, now, *baselines.Baseline30dAt)
}

func TestNextBaselinesRollsOnlyElapsedWindows(t *testing.T) {
	now := time.Date(2026, 8, 8, 5, 0, 0, 0, time.UTC)

	prev := &domain.RankSnapshot{
		Position: 6,
		Trends: domain.TrendBaselines{
			Baseline24h:   intPtr(9),
			Baseline7d:    intPtr(12),
			Baseline30d:   intPtr(15),
			Baseline24hAt: timePtr(now.Add(-25 * time.Hour)),
			Baseline7dAt:  timePtr(now.Add(-3 * 24 * time.Hour)),
			Baseline30dAt: timePtr(now.Add(-10 * 24 * time.Hour)),
		},
	}

	baselines := NextBaselines(prev, now)

	// 24h decorrida: rola para a posição anterior
	assert.Equal(t, 6, *baselines.Baseline24h)
	assert.Equal(t, now, *baselines.Baseline24hAt)

	// 7d e 30d ainda abertas: intactas
	assert.Equal(t, 12, *baselines.Baseline7d)
	assert.Equal(t, prev.Trends.Baseline7dAt, baselines.Baseline7dAt)
	assert.Equal(t, 15, *baselines.Baseline30d)
	assert.Equal(t, prev.Trends.Baseline30dAt, baselines.Baseline30dAt)
}

func TestNextBaselinesWindowBoundary(t *testing.T) {
	now := time.Date(2026, 8, 8, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		anchor     time.Time
		shouldRoll bool
	}{
		{
			name:       "exatamente 7 dias rola",
			anchor:     now.Add(-Window7d),
			shouldRoll: true,
		},
		{
			name:       "7 dias e 1 segundo rola",
			anchor:     now.Add(-Window7d - time.Second),
			shouldRoll: true,
		},
		{
			name:       "1 segundo antes de 7 dias não rola",
			anchor:     now.Add(-Window7d + time.Second),
			shouldRoll: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := &domain.RankSnapshot{
				Position: 4,
				Trends: domain.TrendBaselines{
					Baseline7d:   intPtr(11),
					Baseline7dAt: timePtr(tt.anchor),
				},
			}

			baselines := NextBaselines(prev, now)

			if tt.shouldRoll {
				assert.Equal(t, 4, *baselines.Baseline7d)
				assert.Equal(t, now, *baselines.Baseline7dAt)
			} else {
				assert.Equal(t, 11, *baselines.Baseline7d)
				assert.Equal(t, tt.anchor, *baselines.Baseline7dAt)
			}
		})
	}
}

func TestNextBaselinesMissingAnchorRolls(t *testing.T) {
	now := time.Date(2026, 8, 8, 5, 0, 0, 0, time.UTC)

	prev := &domain.RankSnapshot{
		Position: 2,
		Trends:   domain.TrendBaselines{},
	}

	baselines := NextBaselines(prev, now)

	assert.Equal(t, 2, *baselines.Baseline24h)
	assert.Equal(t, 2, *baselines.Baseline7d)
	assert.Equal(t, 2, *baselines.Baseline30d)
	assert.Equal(t, now, *baselines.Baseline24hAt)
}

func TestNextBaselinesInvalidPreviousPositionNeverRolls(t *testing.T) {
	now := time.Date(2026, 8, 8, 5, 0, 0, 0, time.UTC)
	anchor := now.Add(-40 * 24 * time.Hour)

	prev := &domain.RankSnapshot{
		Position: 0,
		Trends: domain.TrendBaselines{
			Baseline30d:   intPtr(8),
			Baseline30dAt: timePtr(anchor),
		},
	}

	baselines := NextBaselines(prev, now)

	// Posição anterior inválida mantém baseline e âncora mesmo com a
	// janela decorrida
	assert.Equal(t, 8, *baselines.Baseline30d)
	assert.Equal(t, anchor, *baselines.Baseline30dAt)
}

func TestRollerUsesFixedInstant(t *testing.T) {
	now := time.Date(2026, 8, 8, 5, 0, 0, 0, time.UTC)
	roll := Roller(now)

	baselines := roll(nil)

	assert.Equal(t, now, *baselines.Baseline24hAt)
	assert.Equal(t, now, *baselines.Baseline7dAt)
	assert.Equal(t, now, *baselines.Baseline30dAt)
}
