// Package serpapi integra o serviço com a API de resultados de busca
package serpapi

import (
	"context"

	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/serpclient"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

const (
	// OrganicPageSize é o tamanho de página dos resultados orgânicos
	OrganicPageSize = 10
	// LocalPageSize é o tamanho de página dos resultados locais
	LocalPageSize = 20
)

type SearchIntegrator interface {
	FetchOrganicPage(ctx context.Context, query domain.RankQuery, start int) (*serpapidomain.OrganicPage, error)
	FetchLocalPage(ctx context.Context, query domain.RankQuery, start int) (*serpapidomain.LocalPage, error)
	FetchAIPage(ctx context.Context, query string) (*serpapidomain.AIPage, error)
}

type Service struct {
	cfg    *config.Config
	client serpclient.Client
}

func New(cfg *config.Config, client serpclient.Client) SearchIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// FetchOrganicPage busca uma página de resultados orgânicos para a identidade
func (s *Service) FetchOrganicPage(ctx context.Context, query domain.RankQuery, start int) (*serpapidomain.OrganicPage, error) {
	engine := query.SearchEngine
	if engine == "" {
		engine = domain.SearchEngineGoogle
	}

	return s.client.GetOrganicPage(ctx, serpclient.PageParams{
		Query:    query.EffectiveKeyword(),
		Engine:   engine,
		Location: query.Location,
		Device:   string(query.Device),
		Num:      OrganicPageSize,
		Start:    start,
	})
}

// FetchLocalPage busca uma página de resultados locais. O engine local exige
// device mobile independentemente do dispositivo da identidade.
func (s *Service) FetchLocalPage(ctx context.Context, query domain.RankQuery, start int) (*serpapidomain.LocalPage, error) {
	return s.client.GetLocalPage(ctx, serpclient.PageParams{
		Query:    query.EffectiveKeyword(),
		Engine:   domain.SearchEngineGoogleLocal,
		Location: query.Location,
		Device:   string(domain.DeviceMobile),
		Num:      LocalPageSize,
		Start:    start,
	})
}

// FetchAIPage busca a resposta do modo IA do Google
func (s *Service) FetchAIPage(ctx context.Context, query string) (*serpapidomain.AIPage, error) {
	return s.client.GetAIPage(ctx, query)
}
