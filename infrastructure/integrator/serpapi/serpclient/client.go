package serpclient

import (
	"context"
	"net/http"
	"time"

	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	"github.com/vfg2006/rank-tracker-api/internal/config"
)

// PageParams são os parâmetros de uma página de busca no SerpAPI
type PageParams struct {
	Query    string
	Engine   string
	Location string
	Device   string
	Num      int
	Start    int
}

type Client interface {
	GetOrganicPage(ctx context.Context, params PageParams) (*serpapidomain.OrganicPage, error)
	GetLocalPage(ctx context.Context, params PageParams) (*serpapidomain.LocalPage, error)
	GetAIPage(ctx context.Context, query string) (*serpapidomain.AIPage, error)
}

type SerpClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SerpAPI.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SerpClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}
