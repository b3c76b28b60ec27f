// Package tracking orquestra a resolução de rankings e a gravação dos
// snapshots com as baselines de tendência
package tracking

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/matching"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/resolving"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/trending"
)

var (
	// ErrInvalidDomain indica que o domínio informado na busca não pôde ser
	// normalizado
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrNoKeywords indica que a busca não trouxe nenhuma palavra-chave válida
	ErrNoKeywords = errors.New("no keywords provided")

	keywordSeparatorRegex = regexp.MustCompile(`[\n,]+`)
)

type Tracker interface {
	ResolveAndStore(ctx context.Context, query domain.RankQuery) (*domain.RankSnapshot, error)
	StoreResolution(ctx context.Context, query domain.RankQuery, resolution *domain.RankResolution) (*domain.RankSnapshot, error)
	PerformSearch(ctx context.Context, userID int, request domain.SearchRequest) (*domain.SearchResponse, error)
	PerformAISearch(ctx context.Context, userID int, request domain.AISearchRequest) (*domain.AISearchResult, error)
}

type Service struct {
	resolver           resolving.Resolver
	provider           serpapi.SearchIntegrator
	snapshotRepository repository.SnapshotRepository
	userRepository     repository.UserRepository
}

func NewService(
	resolver resolving.Resolver,
	provider serpapi.SearchIntegrator,
	snapshotRepo repository.SnapshotRepository,
	userRepo repository.UserRepository,
) Tracker {
	return &Service{
		resolver:           resolver,
		provider:           provider,
		snapshotRepository: snapshotRepo,
		userRepository:     userRepo,
	}
}

// ResolveAndStore resolve a posição atual da identidade e, quando o domínio
// é encontrado, grava o snapshot com as baselines roladas. Posição zero (não
// encontrado) não gera snapshot.
func (s *Service) ResolveAndStore(ctx context.Context, query domain.RankQuery) (*domain.RankSnapshot, error) {
	resolution, err := s.resolver.ResolveRank(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver ranking")
	}

	if !resolution.Found() {
		logrus.WithFields(logrus.Fields{
			"keyword": query.Keyword,
			"domain":  query.FilteredDomain,
			"device":  query.Device,
		}).Info("Domínio não encontrado nos resultados da busca")
		return nil, nil
	}

	return s.StoreResolution(ctx, query, resolution)
}

// PerformSearch executa a busca interativa: resolve cada combinação de
// palavra-chave e dispositivo, persiste os resultados encontrados e debita a
// cota de palavras-chave do usuário
func (s *Service) PerformSearch(ctx context.Context, userID int, request domain.SearchRequest) (*domain.SearchResponse, error) {
	keywords := SplitKeywords(request.Keywords)
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	filteredDomain, ok := matching.NormalizeDomain(request.Domain)
	if !ok {
		return nil, ErrInvalidDomain
	}

	devices := request.Devices
	if len(devices) == 0 {
		devices = []domain.Device{domain.DeviceDesktop}
	}

	if _, err := s.userRepository.ConsumeKeywordQuota(ctx, userID, len(keywords)); err != nil {
		return nil, err
	}

	location := domain.NormalizeLocation(request.Location)
	results := make([]domain.SearchResultEntry, 0, len(keywords)*len(devices))

	for _, keyword := range keywords {
		for _, device := range devices {
			query := domain.RankQuery{
				UserID:         userID,
				Keyword:        keyword,
				FilteredDomain: filteredDomain,
				Device:         device,
				SearchEngine:   searchEngineFor(device, request.SearchEngine),
				Location:       location,
			}

			snapshot, err := s.ResolveAndStore(ctx, query)
			if err != nil {
				return nil, err
			}

			entry := domain.SearchResultEntry{
				Keyword:  keyword,
				Domain:   filteredDomain,
				Device:   device,
				Location: location,
			}

			if snapshot != nil {
				entry.Position = snapshot.Position
				entry.Rating = snapshot.Rating
				entry.Reviews = snapshot.Reviews
			}

			results = append(results, entry)
		}
	}

	return &domain.SearchResponse{
		Results:      results,
		KeywordsUsed: len(keywords),
	}, nil
}

// PerformAISearch consulta o modo IA do Google e deriva a posição do domínio
// na lista de domínios citados pela resposta. Quando o domínio não aparece
// mas o nome do negócio é mencionado no texto, a posição final é 1.
func (s *Service) PerformAISearch(ctx context.Context, userID int, request domain.AISearchRequest) (*domain.AISearchResult, error) {
	keywords := strings.TrimSpace(request.Keywords)
	if keywords == "" {
		return nil, ErrNoKeywords
	}

	filteredDomain, ok := matching.NormalizeDomain(request.Domain)
	if !ok {
		return nil, ErrInvalidDomain
	}

	if _, err := s.userRepository.ConsumeKeywordQuota(ctx, userID, 1); err != nil {
		return nil, err
	}

	page, err := s.provider.FetchAIPage(ctx, keywords)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o modo IA")
	}

	result := &domain.AISearchResult{
		Keywords: keywords,
		Domain:   filteredDomain,
		Business: request.Business,
	}

	mentionedDomains := matching.ExtractDomainsInOrder(page.TextBlocks)
	for i, mentioned := range mentionedDomains {
		if mentioned == filteredDomain {
			position := i + 1
			result.DomainPosition = &position
			break
		}
	}

	normalizedBusiness := strings.ToLower(strings.TrimSpace(request.Business))
	if matching.MentionsBusiness(page.TextBlocks, normalizedBusiness) {
		position := 1
		result.BusinessPosition = &position
	}

	// A citação do domínio prevalece sobre a menção ao nome do negócio
	switch {
	case result.DomainPosition != nil:
		result.FinalPosition = result.DomainPosition
	case result.BusinessPosition != nil:
		result.FinalPosition = result.BusinessPosition
	}

	if result.FinalPosition != nil {
		query := domain.RankQuery{
			UserID:         userID,
			Keyword:        keywords,
			FilteredDomain: filteredDomain,
			Device:         domain.DeviceMobile,
			SearchEngine:   domain.SearchEngineGoogleAI,
		}

		resolution := &domain.RankResolution{
			Position:      *result.FinalPosition,
			MatchedDomain: filteredDomain,
		}

		if _, err := s.StoreResolution(ctx, query, resolution); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// StoreResolution grava o snapshot de uma resolução já obtida, rolando as
// baselines dentro da transação de upsert. É o caminho de escrita do lote
// agendado, que resolve uma identidade uma única vez e replica o resultado
// para cada usuário.
func (s *Service) StoreResolution(ctx context.Context, query domain.RankQuery, resolution *domain.RankResolution) (*domain.RankSnapshot, error) {
	snapshot, err := s.snapshotRepository.UpsertResolved(ctx, query, resolution, trending.Roller(time.Now()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar snapshot de ranking")
	}

	logrus.WithFields(logrus.Fields{
		"keyword":  query.Keyword,
		"domain":   query.FilteredDomain,
		"device":   query.Device,
		"position": resolution.Position,
	}).Info("Snapshot de ranking atualizado")

	return snapshot, nil
}

// SplitKeywords separa o campo de palavras-chave por vírgula ou quebra de
// linha, descartando entradas vazias
func SplitKeywords(raw string) []string {
	parts := keywordSeparatorRegex.Split(raw, -1)
	keywords := make([]string, 0, len(parts))

	for _, part := range parts {
		keyword := strings.TrimSpace(part)
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}

func searchEngineFor(device domain.Device, requested string) string {
	if device == domain.DeviceGoogleLocal {
		return domain.SearchEngineGoogleLocal
	}

	if requested != "" {
		return requested
	}

	return domain.SearchEngineGoogle
}
