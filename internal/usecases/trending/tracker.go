// Package trending mantém as baselines de tendência pré-computadas de cada
// snapshot de posição
package trending

import (
	"time"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

// Durações das janelas de tendência
const (
	Window24h = 24 * time.Hour
	Window7d  = 7 * 24 * time.Hour
	Window30d = 30 * 24 * time.Hour
)

// NextBaselines decide as baselines do snapshot que será gravado, comparando
// o snapshot anterior com o instante atual. Cada janela é avaliada de forma
// independente:
//
//   - sem snapshot anterior: baseline nula e âncora no instante atual, o que
//     abre uma janela nova;
//   - janela decorrida (âncora ausente ou mais velha que a duração): a
//     baseline rola para a posição anterior e a âncora reinicia;
//   - janela ainda aberta: baseline e âncora seguem intactas.
//
// A baseline só rola quando a posição anterior é válida (> 0).
func NextBaselines(prev *domain.RankSnapshot, now time.Time) domain.TrendBaselines {
	if prev == nil {
		anchor := now
		return domain.TrendBaselines{
			Baseline24hAt: &anchor,
			Baseline7dAt:  &anchor,
			Baseline30dAt: &anchor,
		}
	}

	next := domain.TrendBaselines{}

	next.Baseline24h, next.Baseline24hAt = rollWindow(prev, prev.Trends.Baseline24h, prev.Trends.Baseline24hAt, Window24h, now)
	next.Baseline7d, next.Baseline7dAt = rollWindow(prev, prev.Trends.Baseline7d, prev.Trends.Baseline7dAt, Window7d, now)
	next.Baseline30d, next.Baseline30dAt = rollWindow(prev, prev.Trends.Baseline30d, prev.Trends.Baseline30dAt, Window30d, now)

	return next
}

func rollWindow(
	prev *domain.RankSnapshot,
	baseline *int,
	anchor *time.Time,
	window time.Duration,
	now time.Time,
) (*int, *time.Time) {
	elapsed := anchor == nil || now.Sub(*anchor) >= window
	if !elapsed || prev.Position <= 0 {
		return baseline, anchor
	}

	rolled := prev.Position
	return &rolled, &now
}

// Roller fixa o instante de referência e devolve a função executada dentro
// da transação de upsert do snapshot
func Roller(now time.Time) domain.BaselineRoller {
	return func(prev *domain.RankSnapshot) domain.TrendBaselines {
		return NextBaselines(prev, now)
	}
}
