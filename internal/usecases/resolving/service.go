// Package resolving localiza a posição de um domínio nas páginas de
// resultados do buscador
package resolving

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi"
	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/matching"
)

// maxDepth é o teto de resultados varridos por consulta (5 páginas orgânicas
// ou 5 páginas locais)
const maxDepth = 100

type Resolver interface {
	ResolveRank(ctx context.Context, query domain.RankQuery) (*domain.RankResolution, error)
}

type Service struct {
	provider serpapi.SearchIntegrator
}

func NewService(provider serpapi.SearchIntegrator) Resolver {
	return &Service{
		provider: provider,
	}
}

// ResolveRank varre as páginas de resultado em ordem e retorna a primeira
// posição em que o domínio alvo aparece. As páginas já vêm ordenadas por
// posição, então a primeira ocorrência é a melhor: ao encontrá-la a
// paginação para imediatamente para não gastar chamadas pagas.
func (s *Service) ResolveRank(ctx context.Context, query domain.RankQuery) (*domain.RankResolution, error) {
	if query.Device == domain.DeviceGoogleLocal {
		return s.resolveLocal(ctx, query)
	}
	return s.resolveOrganic(ctx, query)
}

func (s *Service) resolveOrganic(ctx context.Context, query domain.RankQuery) (*domain.RankResolution, error) {
	for start := 0; start < maxDepth; start += serpapi.OrganicPageSize {
		page, err := s.provider.FetchOrganicPage(ctx, query, start)
		if err != nil {
			if resolution, handled := s.handlePageError(err, query, start); handled {
				return resolution, nil
			}
			return nil, err
		}

		if len(page.Results) == 0 {
			break
		}

		for i, result := range page.Results {
			if result.Link == "" {
				continue
			}

			resultDomain, ok := matching.MatchOrganicLink(result.Link, query.FilteredDomain)
			if !ok {
				continue
			}

			position := result.Position
			if position == 0 {
				// O provedor nem sempre informa position; a ordem do array vale
				position = i + 1
			}

			return &domain.RankResolution{
				Position:      start + position,
				MatchedDomain: resultDomain,
			}, nil
		}
	}

	return &domain.RankResolution{}, nil
}

func (s *Service) resolveLocal(ctx context.Context, query domain.RankQuery) (*domain.RankResolution, error) {
	for start := 0; start < maxDepth; start += serpapi.LocalPageSize {
		page, err := s.provider.FetchLocalPage(ctx, query, start)
		if err != nil {
			if resolution, handled := s.handlePageError(err, query, start); handled {
				return resolution, nil
			}
			return nil, err
		}

		if len(page.Results) == 0 {
			break
		}

		for _, result := range page.Results {
			// Listagens sem position não têm rank atribuível
			if result.Position == 0 {
				continue
			}

			resultDomain, ok := matching.MatchLocalCandidate(result, query.FilteredDomain)
			if !ok {
				continue
			}

			return &domain.RankResolution{
				Position:      start + result.Position,
				MatchedDomain: resultDomain,
				Rating:        result.Rating,
				Reviews:       result.Reviews,
			}, nil
		}
	}

	return &domain.RankResolution{}, nil
}

// handlePageError trata os erros de página que encerram a consulta sem
// abortar o lote: localização inválida e timeout viram "não encontrado".
func (s *Service) handlePageError(err error, query domain.RankQuery, start int) (*domain.RankResolution, bool) {
	if serpapidomain.IsInvalidLocation(err) {
		logrus.WithFields(logrus.Fields{
			"keyword":  query.Keyword,
			"domain":   query.FilteredDomain,
			"location": query.Location,
		}).Warn("Localização inválida reportada pelo provedor, consulta encerrada")
		return &domain.RankResolution{}, true
	}

	if serpapidomain.IsTimeout(err) {
		logrus.WithFields(logrus.Fields{
			"keyword": query.Keyword,
			"domain":  query.FilteredDomain,
			"start":   start,
		}).Warn("Timeout na página do provedor, consulta encerrada")
		return &domain.RankResolution{}, true
	}

	return nil, false
}
