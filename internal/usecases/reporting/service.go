// Package reporting monta as visões de painel a partir dos snapshots
// vigentes de ranking
package reporting

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

// topDomainsLimit limita o destaque de domínios com maior melhora em 24h
const topDomainsLimit = 5

type Reporter interface {
	GetStats(ctx context.Context, userID int, domainFilter, keywordFilter string) (*domain.StatsResponse, error)
	GetDetailedStats(ctx context.Context, userID int, domainFilter, keywordFilter string) ([]domain.StatRow, error)
	GetHistoryOptions(ctx context.Context, userID int) (*domain.HistoryOptions, error)
	DeleteSnapshot(ctx context.Context, userID int, snapshotID string) error
}

type Service struct {
	snapshotRepository repository.SnapshotRepository
}

func NewService(snapshotRepo repository.SnapshotRepository) Reporter {
	return &Service{
		snapshotRepository: snapshotRepo,
	}
}

// GetStats agrega os snapshots vigentes do usuário em contadores, linhas
// detalhadas e o destaque de domínios com maior melhora em 24h
func (s *Service) GetStats(ctx context.Context, userID int, domainFilter, keywordFilter string) (*domain.StatsResponse, error) {
	rows, err := s.GetDetailedStats(ctx, userID, domainFilter, keywordFilter)
	if err != nil {
		return nil, err
	}

	response := &domain.StatsResponse{
		Detailed:   rows,
		TopDomains: make([]domain.DomainImprovement, 0),
	}

	domains := make(map[string]bool)
	keywords := make(map[string]bool)
	gains := make(map[string]*domain.DomainImprovement)
	positionSum := 0

	for _, row := range rows {
		domains[row.Domain] = true
		keywords[row.Keyword] = true
		positionSum += row.Position

		if row.ObservedAt.After(response.LastUpdate) {
			response.LastUpdate = row.ObservedAt
		}

		switch row.Trend24h.Direction {
		case domain.TrendImproved:
			response.Improved24h++
		case domain.TrendWorsened:
			response.Worsened24h++
		}

		if row.Trend24h.Diff == nil || *row.Trend24h.Diff <= 0 {
			continue
		}

		gain, ok := gains[row.Domain]
		if !ok {
			gain = &domain.DomainImprovement{Domain: row.Domain}
			gains[row.Domain] = gain
		}
		gain.AbsoluteGain += *row.Trend24h.Diff
		gain.TrackedKeywords++
	}

	response.TotalDomains = len(domains)
	response.TotalKeywords = len(keywords)

	if len(rows) > 0 {
		response.AveragePosition = utils.RoundWithTwoDecimalPlace(float64(positionSum) / float64(len(rows)))
	}

	for _, gain := range gains {
		response.TopDomains = append(response.TopDomains, *gain)
	}

	sort.Slice(response.TopDomains, func(i, j int) bool {
		if response.TopDomains[i].AbsoluteGain != response.TopDomains[j].AbsoluteGain {
			return response.TopDomains[i].AbsoluteGain > response.TopDomains[j].AbsoluteGain
		}
		return response.TopDomains[i].Domain < response.TopDomains[j].Domain
	})

	if len(response.TopDomains) > topDomainsLimit {
		response.TopDomains = response.TopDomains[:topDomainsLimit]
	}

	return response, nil
}

// GetDetailedStats retorna uma linha por snapshot vigente, com as tendências
// de exibição derivadas das baselines armazenadas
func (s *Service) GetDetailedStats(ctx context.Context, userID int, domainFilter, keywordFilter string) ([]domain.StatRow, error) {
	snapshots, err := s.snapshotRepository.ListByUser(ctx, userID, domainFilter, keywordFilter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots do usuário")
	}

	rows := make([]domain.StatRow, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, domain.StatRow{
			SnapshotID:   snapshot.ID,
			Keyword:      snapshot.Keyword,
			Domain:       snapshot.FilteredDomain,
			Position:     snapshot.Position,
			SearchEngine: snapshot.SearchEngine,
			Device:       snapshot.Device,
			Location:     snapshot.Location,
			Rating:       snapshot.Rating,
			Reviews:      snapshot.Reviews,
			Trend24h:     domain.CalculateTrend(snapshot.Position, snapshot.Trends.Baseline24h),
			Trend7d:      domain.CalculateTrend(snapshot.Position, snapshot.Trends.Baseline7d),
			Trend30d:     domain.CalculateTrend(snapshot.Position, snapshot.Trends.Baseline30d),
			ObservedAt:   snapshot.ObservedAt,
		})
	}

	return rows, nil
}

// GetHistoryOptions lista os valores distintos para os filtros do painel
func (s *Service) GetHistoryOptions(ctx context.Context, userID int) (*domain.HistoryOptions, error) {
	options, err := s.snapshotRepository.ListFilterOptions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar opções de filtro")
	}

	return options, nil
}

// DeleteSnapshot remove um snapshot do histórico do usuário
func (s *Service) DeleteSnapshot(ctx context.Context, userID int, snapshotID string) error {
	return s.snapshotRepository.DeleteByID(ctx, userID, snapshotID)
}
